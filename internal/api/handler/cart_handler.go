package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/giftidea/gift-catalog-api/internal/api/metrics"
	"github.com/giftidea/gift-catalog-api/internal/core/ports"
)

// CartHandler handles HTTP requests for the caller's cart. Every operation
// is scoped to the authenticated identity; nobody can address another
// user's cart through this surface.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addCartItemRequest struct {
	GiftID   string `json:"gift_id" validate:"required"`
	Quantity int    `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// List returns the caller's cart items.
//
// @Summary      List cart items
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.CartItem
// @Failure      401  {object}  map[string]string
// @Router       /v1/cart [get]
func (h *CartHandler) List(c echo.Context) error {
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

// Add puts a gift in the caller's cart, merging quantity on duplicates.
//
// @Summary      Add a gift to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCartItemRequest  true  "Gift and quantity"
// @Success      201   {object}  domain.CartItem
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	item, err := h.service.AddItem(c.Request().Context(), identity.ID, req.GiftID, req.Quantity)
	if err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusCreated, item)
}

// Update sets the quantity of one of the caller's cart items.
//
// @Summary      Update cart item quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Cart item id"
// @Param        body  body      updateCartItemRequest  true  "New quantity"
// @Success      200   {object}  domain.CartItem
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/cart/{id} [put]
func (h *CartHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	item, err := h.service.UpdateQuantity(c.Request().Context(), identity.ID, c.Param("id"), req.Quantity)
	if err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, item)
}

// Remove deletes one of the caller's cart items.
//
// @Summary      Remove a cart item
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Cart item id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/cart/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.RemoveItem(c.Request().Context(), identity.ID, c.Param("id")); err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("remove").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Clear empties the caller's cart.
//
// @Summary      Clear the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /v1/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.ClearCart(c.Request().Context(), identity.ID); err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("clear").Inc()
	return c.NoContent(http.StatusNoContent)
}
