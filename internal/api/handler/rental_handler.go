package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentaldesk/rental-api/internal/api/metrics"
	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

// IdempotencyHeader lets clients retry create requests safely.
const IdempotencyHeader = "Idempotency-Key"

// RentalHandler serves /rented-rooms.
type RentalHandler struct {
	service ports.TenancyService
}

func NewRentalHandler(service ports.TenancyService) *RentalHandler {
	return &RentalHandler{service: service}
}

// Create handles POST /rented-rooms.
//
// @Summary      Open a contract on a room
// @Description  The room must be available and fit the tenants. Monthly rent is copied from the room price.
// @Tags         rented-rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             false  "Replay-safe request key"
// @Param        body             body      rentedRoomRequest  true   "Contract details"
// @Success      201              {object}  rentedRoomWithDetailsResponse
// @Success      200              {object}  rentedRoomWithDetailsResponse  "Replayed request"
// @Failure      404              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /rented-rooms [post]
func (h *RentalHandler) Create(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	var req rentedRoomRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.service.CreateContract(c.Request().Context(), oid, req.toInput(c.Request().Header.Get(IdempotencyHeader)))
	if err != nil {
		return err
	}
	if res.AlreadyExisted {
		return c.JSON(http.StatusOK, toRentedRoomWithDetails(res.Contract))
	}
	metrics.ContractsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toRentedRoomWithDetails(res.Contract))
}

// List handles GET /rented-rooms. Only active contracts are returned.
//
// @Summary      List active contracts
// @Tags         rented-rooms
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Offset"
// @Param        limit  query     int  false  "Page size (max 500)"
// @Success      200    {array}   rentedRoomWithDetailsResponse
// @Router       /rented-rooms [get]
func (h *RentalHandler) List(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	contracts, err := h.service.ListContracts(c.Request().Context(), domain.RentalFilter{
		OwnerID:    oid,
		ActiveOnly: true,
		Page:       page,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRentedRoomDetailsList(contracts))
}

// ListByRoom handles GET /rented-rooms/room/:room_id, terminated contracts included.
//
// @Summary      List contracts of a room
// @Tags         rented-rooms
// @Produce      json
// @Security     BearerAuth
// @Param        room_id  path      int  true  "Room id"
// @Success      200      {array}   rentedRoomResponse
// @Failure      404      {object}  errorResponse
// @Router       /rented-rooms/room/{room_id} [get]
func (h *RentalHandler) ListByRoom(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	roomID, err := pathID(c, "room_id")
	if err != nil {
		return err
	}
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	contracts, err := h.service.ListContracts(c.Request().Context(), domain.RentalFilter{
		OwnerID: oid,
		RoomID:  &roomID,
		Page:    page,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRentedRoomResponses(contracts))
}

// Get handles GET /rented-rooms/:id.
//
// @Summary      Get a contract with its room and invoices
// @Tags         rented-rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Contract id"
// @Success      200  {object}  rentedRoomWithDetailsResponse
// @Failure      404  {object}  errorResponse
// @Router       /rented-rooms/{id} [get]
func (h *RentalHandler) Get(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	rr, err := h.service.GetContract(c.Request().Context(), oid, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRentedRoomWithDetails(rr))
}

// Update handles PUT /rented-rooms/:id. monthly_rent is ignored.
//
// @Summary      Update a contract
// @Tags         rented-rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                      true  "Contract id"
// @Param        body  body      rentedRoomUpdateRequest  true  "Fields to change"
// @Success      200   {object}  rentedRoomResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /rented-rooms/{id} [put]
func (h *RentalHandler) Update(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req rentedRoomUpdateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	rr, err := h.service.UpdateContract(c.Request().Context(), oid, id, req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRentedRoomResponse(rr))
}

// Terminate handles POST /rented-rooms/:id/terminate.
//
// @Summary      Terminate a contract and free its room
// @Tags         rented-rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Contract id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /rented-rooms/{id}/terminate [post]
func (h *RentalHandler) Terminate(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.service.TerminateContract(c.Request().Context(), oid, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "contract terminated successfully"})
}

// Delete handles DELETE /rented-rooms/:id.
//
// @Summary      Delete a contract and its invoices
// @Tags         rented-rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Contract id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /rented-rooms/{id} [delete]
func (h *RentalHandler) Delete(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteContract(c.Request().Context(), oid, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "rented room deleted successfully"})
}

// History handles GET /rented-rooms/:id/history.
//
// @Summary      Audit trail of a contract and its invoices
// @Tags         rented-rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Contract id"
// @Success      200  {array}   auditEventResponse
// @Failure      404  {object}  errorResponse
// @Router       /rented-rooms/{id}/history [get]
func (h *RentalHandler) History(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	events, err := h.service.History(c.Request().Context(), oid, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuditEventResponses(events))
}

func toRentedRoomDetailsList(rrs []domain.RentedRoom) []rentedRoomWithDetailsResponse {
	out := make([]rentedRoomWithDetailsResponse, 0, len(rrs))
	for i := range rrs {
		out = append(out, toRentedRoomWithDetails(&rrs[i]))
	}
	return out
}
