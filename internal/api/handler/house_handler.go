package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentaldesk/rental-api/internal/api/metrics"
	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

// HouseHandler serves /houses.
type HouseHandler struct {
	service ports.HouseService
}

func NewHouseHandler(service ports.HouseService) *HouseHandler {
	return &HouseHandler{service: service}
}

// Create handles POST /houses.
//
// @Summary      Create a house
// @Tags         houses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      houseRequest  true  "House details"
// @Success      201   {object}  houseResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /houses [post]
func (h *HouseHandler) Create(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	var req houseRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	house, err := h.service.Create(c.Request().Context(), oid, ports.HouseInput{
		Name:        req.Name,
		FloorCount:  req.FloorCount,
		Ward:        req.Ward,
		District:    req.District,
		AddressLine: req.AddressLine,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toHouseResponse(house))
}

// List handles GET /houses.
//
// @Summary      List houses
// @Tags         houses
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Offset"
// @Param        limit  query     int  false  "Page size (max 500)"
// @Success      200    {array}   houseResponse
// @Router       /houses [get]
func (h *HouseHandler) List(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	houses, err := h.service.List(c.Request().Context(), oid, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHouseResponses(houses))
}

// Get handles GET /houses/:id.
//
// @Summary      Get a house
// @Tags         houses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "House id"
// @Success      200  {object}  houseResponse
// @Failure      404  {object}  errorResponse
// @Router       /houses/{id} [get]
func (h *HouseHandler) Get(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	house, err := h.service.Get(c.Request().Context(), oid, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHouseResponse(house))
}

// Update handles PUT /houses/:id.
//
// @Summary      Update a house
// @Tags         houses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "House id"
// @Param        body  body      houseUpdateRequest  true  "Fields to change"
// @Success      200   {object}  houseResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /houses/{id} [put]
func (h *HouseHandler) Update(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req houseUpdateRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	house, err := h.service.Update(c.Request().Context(), oid, id, ports.HousePatch{
		Name:        req.Name,
		FloorCount:  req.FloorCount,
		Ward:        req.Ward,
		District:    req.District,
		AddressLine: req.AddressLine,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHouseResponse(house))
}

// Delete handles DELETE /houses/:id.
//
// @Summary      Delete a house
// @Description  Rejected with 409 while any room is occupied or under an active contract.
// @Tags         houses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "House id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /houses/{id} [delete]
func (h *HouseHandler) Delete(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), oid, id); err != nil {
		if errors.Is(err, domain.ErrHouseOccupied) {
			metrics.DeletesBlockedTotal.WithLabelValues("house").Inc()
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "house deleted successfully"})
}
