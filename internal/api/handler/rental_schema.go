package handler

import (
	"time"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

// rentedRoomRequest opens a contract. monthly_rent is not accepted: the
// contract takes the room's current price.
type rentedRoomRequest struct {
	RoomID                uint        `json:"room_id"                 validate:"required"`
	TenantName            string      `json:"tenant_name"             validate:"required,max=100"`
	TenantPhone           string      `json:"tenant_phone"            validate:"required,digits,min=9,max=10"`
	NumberOfTenants       int         `json:"number_of_tenants"       validate:"gte=1"`
	ContractURL           *string     `json:"contract_url"            validate:"omitempty,url"`
	StartDate             requestDate `json:"start_date"              validate:"required" swaggertype:"string" example:"2025-01-01"`
	EndDate               requestDate `json:"end_date"                validate:"required" swaggertype:"string" example:"2025-12-31"`
	Deposit               float64     `json:"deposit"                 validate:"gte=0"`
	InitialElectricityNum float64     `json:"initial_electricity_num" validate:"gte=0"`
	ElectricityUnitPrice  *float64    `json:"electricity_unit_price"  validate:"omitempty,gte=0"`
	WaterPrice            *float64    `json:"water_price"             validate:"omitempty,gte=0"`
	InternetPrice         *float64    `json:"internet_price"          validate:"omitempty,gte=0"`
	GeneralPrice          *float64    `json:"general_price"           validate:"omitempty,gte=0"`
}

// rentedRoomUpdateRequest accepts monthly_rent for compatibility and drops it.
type rentedRoomUpdateRequest struct {
	TenantName            *string      `json:"tenant_name"             validate:"omitempty,max=100"`
	TenantPhone           *string      `json:"tenant_phone"            validate:"omitempty,digits,min=9,max=10"`
	NumberOfTenants       *int         `json:"number_of_tenants"       validate:"omitempty,gte=1"`
	ContractURL           *string      `json:"contract_url"            validate:"omitempty,url"`
	StartDate             *requestDate `json:"start_date" swaggertype:"string" example:"2025-01-01"`
	EndDate               *requestDate `json:"end_date"   swaggertype:"string" example:"2025-12-31"`
	Deposit               *float64     `json:"deposit"                 validate:"omitempty,gte=0"`
	MonthlyRent           *float64     `json:"monthly_rent"`
	InitialElectricityNum *float64     `json:"initial_electricity_num" validate:"omitempty,gte=0"`
	ElectricityUnitPrice  *float64     `json:"electricity_unit_price"  validate:"omitempty,gte=0"`
	WaterPrice            *float64     `json:"water_price"             validate:"omitempty,gte=0"`
	InternetPrice         *float64     `json:"internet_price"          validate:"omitempty,gte=0"`
	GeneralPrice          *float64     `json:"general_price"           validate:"omitempty,gte=0"`
	IsActive              *bool        `json:"is_active"`
}

type rentedRoomResponse struct {
	RentedRoomID          uint      `json:"rr_id"`
	TenantName            string    `json:"tenant_name"`
	TenantPhone           string    `json:"tenant_phone"`
	NumberOfTenants       int       `json:"number_of_tenants"`
	ContractURL           *string   `json:"contract_url"`
	StartDate             time.Time `json:"start_date"`
	EndDate               time.Time `json:"end_date"`
	Deposit               float64   `json:"deposit"`
	MonthlyRent           float64   `json:"monthly_rent"`
	InitialElectricityNum float64   `json:"initial_electricity_num"`
	ElectricityUnitPrice  float64   `json:"electricity_unit_price"`
	WaterPrice            float64   `json:"water_price"`
	InternetPrice         float64   `json:"internet_price"`
	GeneralPrice          float64   `json:"general_price"`
	RoomID                uint      `json:"room_id"`
	IsActive              bool      `json:"is_active"`
	CreatedAt             time.Time `json:"created_at"`
}

type rentedRoomWithDetailsResponse struct {
	rentedRoomResponse
	Room     *roomResponse     `json:"room,omitempty"`
	Invoices []invoiceResponse `json:"invoices"`
}

type auditEventResponse struct {
	ID         string            `json:"id"`
	EntityKind domain.EntityKind `json:"entity_kind"`
	EntityID   uint              `json:"entity_id"`
	Action     string            `json:"action"`
	OccurredAt time.Time         `json:"occurred_at"`
	Details    map[string]any    `json:"details,omitempty"`
}
