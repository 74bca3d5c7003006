package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/giftidea/gift-catalog-api/internal/api/metrics"
	"github.com/giftidea/gift-catalog-api/internal/core/ports"
)

// GiftHandler handles HTTP requests for catalog operations.
type GiftHandler struct {
	service ports.GiftService
}

func NewGiftHandler(service ports.GiftService) *GiftHandler {
	return &GiftHandler{service: service}
}

type giftRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0"`
	ImageURL    string  `json:"image_url"`
	Favorite    bool    `json:"favorite"`
}

// List returns the whole catalog, optionally filtered by query parameters.
//
// @Summary      List gifts
// @Tags         gifts
// @Produce      json
// @Param        category   query     string  false  "Filter by category"
// @Param        keyword    query     string  false  "Search by name"
// @Param        max_price  query     number  false  "Maximum price"
// @Success      200        {array}   domain.Gift
// @Failure      400        {object}  map[string]string
// @Router       /v1/gifts [get]
func (h *GiftHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if category := c.QueryParam("category"); category != "" {
		gifts, err := h.service.ListByCategory(ctx, category)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, gifts)
	}

	if keyword := c.QueryParam("keyword"); keyword != "" {
		gifts, err := h.service.SearchGifts(ctx, keyword)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, gifts)
	}

	if raw := c.QueryParam("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "max_price must be a number"})
		}
		gifts, err := h.service.ListByMaxPrice(ctx, maxPrice)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, gifts)
	}

	gifts, err := h.service.ListGifts(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gifts)
}

// Favorites returns the gifts flagged as favorites.
//
// @Summary      List favorite gifts
// @Tags         gifts
// @Produce      json
// @Success      200  {array}  domain.Gift
// @Router       /v1/gifts/favorites [get]
func (h *GiftHandler) Favorites(c echo.Context) error {
	gifts, err := h.service.ListFavorites(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gifts)
}

// Get returns one gift by id.
//
// @Summary      Get a gift
// @Tags         gifts
// @Produce      json
// @Param        id   path      string  true  "Gift id"
// @Success      200  {object}  domain.Gift
// @Failure      404  {object}  map[string]string
// @Router       /v1/gifts/{id} [get]
func (h *GiftHandler) Get(c echo.Context) error {
	gift, err := h.service.GetGift(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gift)
}

// Create adds a gift to the catalog. Admin only.
//
// @Summary      Create a gift
// @Tags         gifts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      giftRequest  true  "Gift details"
// @Success      201   {object}  domain.Gift
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/gifts [post]
func (h *GiftHandler) Create(c echo.Context) error {
	var req giftRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	gift, err := h.service.CreateGift(c.Request().Context(), giftInput(req))
	if err != nil {
		return err
	}

	metrics.GiftsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, gift)
}

// Update replaces a gift's writable fields. Admin only.
//
// @Summary      Update a gift
// @Tags         gifts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Gift id"
// @Param        body  body      giftRequest  true  "Gift details"
// @Success      200   {object}  domain.Gift
// @Failure      404   {object}  map[string]string
// @Router       /v1/gifts/{id} [put]
func (h *GiftHandler) Update(c echo.Context) error {
	var req giftRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	gift, err := h.service.UpdateGift(c.Request().Context(), c.Param("id"), giftInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gift)
}

// Delete removes a gift from the catalog. Admin only.
//
// @Summary      Delete a gift
// @Tags         gifts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Gift id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/gifts/{id} [delete]
func (h *GiftHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteGift(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleFavorite flips the favorite flag on a gift. Admin only.
//
// @Summary      Toggle favorite flag
// @Tags         gifts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Gift id"
// @Success      200  {object}  domain.Gift
// @Failure      404  {object}  map[string]string
// @Router       /v1/gifts/{id}/favorite [put]
func (h *GiftHandler) ToggleFavorite(c echo.Context) error {
	gift, err := h.service.ToggleFavorite(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gift)
}

func giftInput(req giftRequest) ports.GiftInput {
	return ports.GiftInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Favorite:    req.Favorite,
	}
}
