package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/giftidea/gift-catalog-api/internal/core/ports"
)

// WishlistHandler handles HTTP requests for the caller's wishlist.
type WishlistHandler struct {
	service ports.WishlistService
}

func NewWishlistHandler(service ports.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

type addWishlistItemRequest struct {
	GiftID string `json:"gift_id" validate:"required"`
}

// List returns the caller's wishlist.
//
// @Summary      List wishlist items
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.WishlistItem
// @Failure      401  {object}  map[string]string
// @Router       /v1/wishlist [get]
func (h *WishlistHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	items, err := h.service.ListItems(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Add wishes for a gift. Adding a gift twice returns the existing entry.
//
// @Summary      Add a gift to the wishlist
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addWishlistItemRequest  true  "Gift to wish for"
// @Success      201   {object}  domain.WishlistItem
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/wishlist [post]
func (h *WishlistHandler) Add(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addWishlistItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	item, err := h.service.AddItem(c.Request().Context(), identity.ID, req.GiftID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Remove deletes one of the caller's wishlist entries.
//
// @Summary      Remove a wishlist item
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Wishlist item id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/wishlist/{id} [delete]
func (h *WishlistHandler) Remove(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.RemoveItem(c.Request().Context(), identity.ID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
