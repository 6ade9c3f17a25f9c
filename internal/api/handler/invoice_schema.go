package handler

import "time"

type invoiceRequest struct {
	RentedRoomID     uint         `json:"rr_id"             validate:"required"`
	Price            float64      `json:"price"             validate:"gte=0"`
	WaterPrice       float64      `json:"water_price"       validate:"gte=0"`
	InternetPrice    float64      `json:"internet_price"    validate:"gte=0"`
	GeneralPrice     float64      `json:"general_price"     validate:"gte=0"`
	ElectricityPrice float64      `json:"electricity_price" validate:"gte=0"`
	ElectricityNum   float64      `json:"electricity_num"   validate:"gte=0"`
	WaterNum         float64      `json:"water_num"         validate:"gte=0"`
	DueDate          requestDate  `json:"due_date"          validate:"required" swaggertype:"string" example:"2025-02-05"`
	PaymentDate      *requestDate `json:"payment_date"      swaggertype:"string" example:"2025-02-03"`
}

type invoiceUpdateRequest struct {
	Price            *float64     `json:"price"             validate:"omitempty,gte=0"`
	WaterPrice       *float64     `json:"water_price"       validate:"omitempty,gte=0"`
	InternetPrice    *float64     `json:"internet_price"    validate:"omitempty,gte=0"`
	GeneralPrice     *float64     `json:"general_price"     validate:"omitempty,gte=0"`
	ElectricityPrice *float64     `json:"electricity_price" validate:"omitempty,gte=0"`
	ElectricityNum   *float64     `json:"electricity_num"   validate:"omitempty,gte=0"`
	WaterNum         *float64     `json:"water_num"         validate:"omitempty,gte=0"`
	DueDate          *requestDate `json:"due_date"     swaggertype:"string" example:"2025-02-05"`
	PaymentDate      *requestDate `json:"payment_date" swaggertype:"string" example:"2025-02-03"`
	IsPaid           *bool        `json:"is_paid"`
}

type invoiceResponse struct {
	InvoiceID        uint       `json:"invoice_id"`
	Price            float64    `json:"price"`
	WaterPrice       float64    `json:"water_price"`
	InternetPrice    float64    `json:"internet_price"`
	GeneralPrice     float64    `json:"general_price"`
	ElectricityPrice float64    `json:"electricity_price"`
	ElectricityNum   float64    `json:"electricity_num"`
	WaterNum         float64    `json:"water_num"`
	Total            float64    `json:"total"`
	DueDate          time.Time  `json:"due_date"`
	PaymentDate      *time.Time `json:"payment_date"`
	IsPaid           bool       `json:"is_paid"`
	RentedRoomID     uint       `json:"rr_id"`
	CreatedAt        time.Time  `json:"created_at"`
}

// invoiceWithDetailsResponse adds the billed contract and its room.
type invoiceWithDetailsResponse struct {
	invoiceResponse
	RentedRoom *rentedRoomResponse `json:"rented_room,omitempty"`
	Room       *roomResponse       `json:"room,omitempty"`
}
