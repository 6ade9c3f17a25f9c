package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentaldesk/rental-api/internal/api/metrics"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

// InvoiceHandler serves /invoices.
type InvoiceHandler struct {
	service ports.BillingService
}

func NewInvoiceHandler(service ports.BillingService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// Create handles POST /invoices.
//
// @Summary      Bill a contract
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string          false  "Replay-safe request key"
// @Param        body             body      invoiceRequest  true   "Invoice details"
// @Success      201              {object}  invoiceWithDetailsResponse
// @Success      200              {object}  invoiceWithDetailsResponse  "Replayed request"
// @Failure      404              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	var req invoiceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.service.CreateInvoice(c.Request().Context(), oid, req.toInput(c.Request().Header.Get(IdempotencyHeader)))
	if err != nil {
		return err
	}
	if res.AlreadyExisted {
		return c.JSON(http.StatusOK, toInvoiceWithDetails(res.Invoice))
	}
	metrics.InvoicesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toInvoiceWithDetails(res.Invoice))
}

// List handles GET /invoices. Newest due date first.
//
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        skip      query     int     false  "Offset"
// @Param        limit     query     int     false  "Page size (max 500)"
// @Param        month     query     string  false  "Due month as YYYY-MM or YYYY-M; ignored when malformed"
// @Param        house_id  query     int     false  "House filter"
// @Param        room_id   query     int     false  "Room filter"
// @Param        is_paid   query     bool    false  "Payment status filter"
// @Success      200       {array}   invoiceWithDetailsResponse
// @Failure      400       {object}  errorResponse
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	houseID, err := queryUint(c, "house_id")
	if err != nil {
		return err
	}
	roomID, err := queryUint(c, "room_id")
	if err != nil {
		return err
	}
	isPaid, err := queryBool(c, "is_paid")
	if err != nil {
		return err
	}

	invoices, err := h.service.ListInvoices(c.Request().Context(), oid, ports.InvoiceQuery{
		Month:   c.QueryParam("month"),
		HouseID: houseID,
		RoomID:  roomID,
		IsPaid:  isPaid,
		Page:    page,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvoiceDetailsList(invoices))
}

// Pending handles GET /invoices/pending.
//
// @Summary      List unpaid invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Offset"
// @Param        limit  query     int  false  "Page size (max 500)"
// @Success      200    {array}   invoiceWithDetailsResponse
// @Router       /invoices/pending [get]
func (h *InvoiceHandler) Pending(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	invoices, err := h.service.ListPending(c.Request().Context(), oid, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvoiceDetailsList(invoices))
}

// ListByContract handles GET /invoices/rented-room/:rr_id.
//
// @Summary      List invoices of a contract
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        rr_id  path      int  true  "Contract id"
// @Success      200    {array}   invoiceResponse
// @Failure      404    {object}  errorResponse
// @Router       /invoices/rented-room/{rr_id} [get]
func (h *InvoiceHandler) ListByContract(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	rrID, err := pathID(c, "rr_id")
	if err != nil {
		return err
	}
	invoices, err := h.service.ListByContract(c.Request().Context(), oid, rrID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvoiceResponses(invoices))
}

// Get handles GET /invoices/:id.
//
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Invoice id"
// @Success      200  {object}  invoiceWithDetailsResponse
// @Failure      404  {object}  errorResponse
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) Get(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	inv, err := h.service.GetInvoice(c.Request().Context(), oid, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvoiceWithDetails(inv))
}

// Update handles PUT /invoices/:id.
//
// @Summary      Update an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Invoice id"
// @Param        body  body      invoiceUpdateRequest  true  "Fields to change"
// @Success      200   {object}  invoiceWithDetailsResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) Update(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req invoiceUpdateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	inv, err := h.service.UpdateInvoice(c.Request().Context(), oid, id, req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvoiceWithDetails(inv))
}

// Pay handles POST /invoices/:id/pay. Paying twice keeps the first payment date.
//
// @Summary      Mark an invoice paid
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Invoice id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /invoices/{id}/pay [post]
func (h *InvoiceHandler) Pay(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.service.MarkPaid(c.Request().Context(), oid, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "invoice marked as paid"})
}

// Delete handles DELETE /invoices/:id.
//
// @Summary      Delete an invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Invoice id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteInvoice(c.Request().Context(), oid, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "invoice deleted successfully"})
}
