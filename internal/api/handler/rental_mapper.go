package handler

import (
	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

func (r rentedRoomRequest) toInput(idempotencyKey string) ports.CreateContractInput {
	return ports.CreateContractInput{
		RoomID:                r.RoomID,
		TenantName:            r.TenantName,
		TenantPhone:           r.TenantPhone,
		NumberOfTenants:       r.NumberOfTenants,
		ContractURL:           r.ContractURL,
		StartDate:             r.StartDate.Time,
		EndDate:               r.EndDate.Time,
		Deposit:               r.Deposit,
		InitialElectricityNum: r.InitialElectricityNum,
		ElectricityUnitPrice:  r.ElectricityUnitPrice,
		WaterPrice:            r.WaterPrice,
		InternetPrice:         r.InternetPrice,
		GeneralPrice:          r.GeneralPrice,
		IdempotencyKey:        idempotencyKey,
	}
}

func (r rentedRoomUpdateRequest) toPatch() ports.ContractPatch {
	return ports.ContractPatch{
		TenantName:            r.TenantName,
		TenantPhone:           r.TenantPhone,
		NumberOfTenants:       r.NumberOfTenants,
		ContractURL:           r.ContractURL,
		StartDate:             r.StartDate.ptr(),
		EndDate:               r.EndDate.ptr(),
		Deposit:               r.Deposit,
		MonthlyRent:           r.MonthlyRent,
		InitialElectricityNum: r.InitialElectricityNum,
		ElectricityUnitPrice:  r.ElectricityUnitPrice,
		WaterPrice:            r.WaterPrice,
		InternetPrice:         r.InternetPrice,
		GeneralPrice:          r.GeneralPrice,
		IsActive:              r.IsActive,
	}
}

func toRentedRoomResponse(rr *domain.RentedRoom) rentedRoomResponse {
	return rentedRoomResponse{
		RentedRoomID:          rr.ID,
		TenantName:            rr.TenantName,
		TenantPhone:           rr.TenantPhone,
		NumberOfTenants:       rr.NumberOfTenants,
		ContractURL:           rr.ContractURL,
		StartDate:             rr.StartDate,
		EndDate:               rr.EndDate,
		Deposit:               rr.Deposit,
		MonthlyRent:           rr.MonthlyRent,
		InitialElectricityNum: rr.InitialElectricityNum,
		ElectricityUnitPrice:  rr.ElectricityUnitPrice,
		WaterPrice:            rr.WaterPrice,
		InternetPrice:         rr.InternetPrice,
		GeneralPrice:          rr.GeneralPrice,
		RoomID:                rr.RoomID,
		IsActive:              rr.IsActive,
		CreatedAt:             rr.CreatedAt,
	}
}

func toRentedRoomResponses(rrs []domain.RentedRoom) []rentedRoomResponse {
	out := make([]rentedRoomResponse, 0, len(rrs))
	for i := range rrs {
		out = append(out, toRentedRoomResponse(&rrs[i]))
	}
	return out
}

func toRentedRoomWithDetails(rr *domain.RentedRoom) rentedRoomWithDetailsResponse {
	resp := rentedRoomWithDetailsResponse{
		rentedRoomResponse: toRentedRoomResponse(rr),
		Invoices:           toInvoiceResponses(rr.Invoices),
	}
	if rr.Room != nil {
		room := toRoomResponse(rr.Room)
		resp.Room = &room
	}
	return resp
}

func toAuditEventResponses(events []domain.AuditEvent) []auditEventResponse {
	out := make([]auditEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, auditEventResponse{
			ID:         e.ID,
			EntityKind: e.EntityKind,
			EntityID:   e.EntityID,
			Action:     string(e.Action),
			OccurredAt: e.OccurredAt,
			Details:    e.Details,
		})
	}
	return out
}
