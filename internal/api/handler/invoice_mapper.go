package handler

import (
	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

func (r invoiceRequest) toInput(idempotencyKey string) ports.CreateInvoiceInput {
	return ports.CreateInvoiceInput{
		RentedRoomID:     r.RentedRoomID,
		Price:            r.Price,
		WaterPrice:       r.WaterPrice,
		InternetPrice:    r.InternetPrice,
		GeneralPrice:     r.GeneralPrice,
		ElectricityPrice: r.ElectricityPrice,
		ElectricityNum:   r.ElectricityNum,
		WaterNum:         r.WaterNum,
		DueDate:          r.DueDate.Time,
		PaymentDate:      r.PaymentDate.ptr(),
		IdempotencyKey:   idempotencyKey,
	}
}

func (r invoiceUpdateRequest) toPatch() ports.InvoicePatch {
	return ports.InvoicePatch{
		Price:            r.Price,
		WaterPrice:       r.WaterPrice,
		InternetPrice:    r.InternetPrice,
		GeneralPrice:     r.GeneralPrice,
		ElectricityPrice: r.ElectricityPrice,
		ElectricityNum:   r.ElectricityNum,
		WaterNum:         r.WaterNum,
		DueDate:          r.DueDate.ptr(),
		PaymentDate:      r.PaymentDate.ptr(),
		IsPaid:           r.IsPaid,
	}
}

func toInvoiceResponse(inv *domain.Invoice) invoiceResponse {
	return invoiceResponse{
		InvoiceID:        inv.ID,
		Price:            inv.Price,
		WaterPrice:       inv.WaterPrice,
		InternetPrice:    inv.InternetPrice,
		GeneralPrice:     inv.GeneralPrice,
		ElectricityPrice: inv.ElectricityPrice,
		ElectricityNum:   inv.ElectricityNum,
		WaterNum:         inv.WaterNum,
		Total:            inv.Total().InexactFloat64(),
		DueDate:          inv.DueDate,
		PaymentDate:      inv.PaymentDate,
		IsPaid:           inv.IsPaid,
		RentedRoomID:     inv.RentedRoomID,
		CreatedAt:        inv.CreatedAt,
	}
}

func toInvoiceResponses(invs []domain.Invoice) []invoiceResponse {
	out := make([]invoiceResponse, 0, len(invs))
	for i := range invs {
		out = append(out, toInvoiceResponse(&invs[i]))
	}
	return out
}

func toInvoiceWithDetails(inv *domain.Invoice) invoiceWithDetailsResponse {
	resp := invoiceWithDetailsResponse{invoiceResponse: toInvoiceResponse(inv)}
	if rr := inv.RentedRoom; rr != nil {
		contract := toRentedRoomResponse(rr)
		resp.RentedRoom = &contract
		if rr.Room != nil {
			room := toRoomResponse(rr.Room)
			resp.Room = &room
		}
	}
	return resp
}

func toInvoiceDetailsList(invs []domain.Invoice) []invoiceWithDetailsResponse {
	out := make([]invoiceWithDetailsResponse, 0, len(invs))
	for i := range invs {
		out = append(out, toInvoiceWithDetails(&invs[i]))
	}
	return out
}
