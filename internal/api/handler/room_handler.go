package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentaldesk/rental-api/internal/api/metrics"
	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

// RoomHandler serves /rooms.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// Create handles POST /rooms. New rooms start available.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roomRequest  true  "Room details"
// @Success      201   {object}  roomResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	var req roomRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	room, err := h.service.Create(c.Request().Context(), oid, ports.RoomInput{
		HouseID:     req.HouseID,
		Name:        req.Name,
		Capacity:    req.Capacity,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRoomResponse(room))
}

// List handles GET /rooms.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Offset"
// @Param        limit  query     int  false  "Page size (max 500)"
// @Success      200    {array}   roomResponse
// @Router       /rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	return h.list(c, nil, false)
}

// ListByHouse handles GET /rooms/house/:house_id.
//
// @Summary      List rooms of a house
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        house_id  path      int  true  "House id"
// @Success      200       {array}   roomResponse
// @Failure      404       {object}  errorResponse
// @Router       /rooms/house/{house_id} [get]
func (h *RoomHandler) ListByHouse(c echo.Context) error {
	houseID, err := pathID(c, "house_id")
	if err != nil {
		return err
	}
	return h.list(c, &houseID, false)
}

// ListAvailable handles GET /rooms/available.
//
// @Summary      List available rooms
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        house_id  query     int  false  "Restrict to one house"
// @Success      200       {array}   roomResponse
// @Failure      404       {object}  errorResponse
// @Router       /rooms/available [get]
func (h *RoomHandler) ListAvailable(c echo.Context) error {
	houseID, err := queryUint(c, "house_id")
	if err != nil {
		return err
	}
	return h.list(c, houseID, true)
}

func (h *RoomHandler) list(c echo.Context, houseID *uint, availableOnly bool) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	rooms, err := h.service.List(c.Request().Context(), domain.RoomFilter{
		OwnerID:       oid,
		HouseID:       houseID,
		AvailableOnly: availableOnly,
		Page:          page,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomResponses(rooms))
}

// Get handles GET /rooms/:id.
//
// @Summary      Get a room
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Room id"
// @Success      200  {object}  roomResponse
// @Failure      404  {object}  errorResponse
// @Router       /rooms/{id} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	room, err := h.service.Get(c.Request().Context(), oid, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomResponse(room))
}

// Details handles GET /rooms/:id/details.
//
// @Summary      Get a room with its house, assets and contracts
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Room id"
// @Success      200  {object}  roomWithDetailsResponse
// @Failure      404  {object}  errorResponse
// @Router       /rooms/{id}/details [get]
func (h *RoomHandler) Details(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	room, err := h.service.Details(c.Request().Context(), oid, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomWithDetails(room))
}

// Update handles PUT /rooms/:id. is_available in the body is ignored.
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Room id"
// @Param        body  body      roomUpdateRequest  true  "Fields to change"
// @Success      200   {object}  roomResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /rooms/{id} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req roomUpdateRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	room, err := h.service.Update(c.Request().Context(), oid, id, ports.RoomPatch{
		Name:        req.Name,
		Capacity:    req.Capacity,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomResponse(room))
}

// Delete handles DELETE /rooms/:id.
//
// @Summary      Delete a room
// @Description  Rejected with 409 while the room is occupied or under an active contract.
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Room id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /rooms/{id} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), oid, id); err != nil {
		if errors.Is(err, domain.ErrRoomOccupied) {
			metrics.DeletesBlockedTotal.WithLabelValues("room").Inc()
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "room deleted successfully"})
}
