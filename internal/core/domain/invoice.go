package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice bills one contract for one period.
type Invoice struct {
	ID               uint       `json:"invoice_id" gorm:"column:invoice_id;primaryKey"`
	Price            float64    `json:"price" gorm:"not null"`
	WaterPrice       float64    `json:"water_price" gorm:"not null"`
	InternetPrice    float64    `json:"internet_price" gorm:"not null"`
	GeneralPrice     float64    `json:"general_price" gorm:"not null"`
	ElectricityPrice float64    `json:"electricity_price" gorm:"not null"`
	ElectricityNum   float64    `json:"electricity_num" gorm:"not null"`
	WaterNum         float64    `json:"water_num" gorm:"not null"`
	DueDate          time.Time  `json:"due_date" gorm:"index;not null"`
	PaymentDate      *time.Time `json:"payment_date" gorm:"index"`
	IsPaid           bool       `json:"is_paid" gorm:"not null"`
	RentedRoomID     uint       `json:"rr_id" gorm:"column:rr_id;index;not null"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	RentedRoom *RentedRoom `json:"-" gorm:"foreignKey:RentedRoomID"`
}

// Total is the sum of the five charge components.
func (i *Invoice) Total() decimal.Decimal {
	return decimal.NewFromFloat(i.Price).
		Add(decimal.NewFromFloat(i.WaterPrice)).
		Add(decimal.NewFromFloat(i.InternetPrice)).
		Add(decimal.NewFromFloat(i.GeneralPrice)).
		Add(decimal.NewFromFloat(i.ElectricityPrice))
}

// MarkPaid flags the invoice paid. A missing payment date is backfilled
// from CreatedAt; an existing one is kept.
func (i *Invoice) MarkPaid() {
	i.IsPaid = true
	if i.PaymentDate == nil {
		paid := i.CreatedAt
		i.PaymentDate = &paid
	}
}

// InvoiceFilter narrows invoice listings. All set fields are combined with AND.
type InvoiceFilter struct {
	OwnerID      uint
	RentedRoomID *uint
	HouseID      *uint
	RoomID       *uint
	IsPaid       *bool
	DueFrom      *time.Time
	DueBefore    *time.Time
	Page         Page
}

// ParseMonth turns "YYYY-MM" or "YYYY-M" into the month's first instant and
// the next month's first instant, in UTC. ok is false for malformed input.
func ParseMonth(s string) (start, next time.Time, ok bool) {
	t, err := time.Parse("2006-1", s)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), true
}
