package domain

import (
	"time"
	"unicode"
)

// Default utility rates applied when a contract does not specify them.
const (
	DefaultElectricityUnitPrice = 3500
	DefaultWaterPrice           = 80000
	DefaultInternetPrice        = 100000
	DefaultGeneralPrice         = 100000
)

// RentedRoom is a tenancy contract on a Room. MonthlyRent is a snapshot of
// Room.Price taken at creation and never changes afterwards.
type RentedRoom struct {
	ID                    uint      `json:"rr_id" gorm:"column:rr_id;primaryKey"`
	TenantName            string    `json:"tenant_name" gorm:"size:100;not null"`
	TenantPhone           string    `json:"tenant_phone" gorm:"size:10;not null"`
	NumberOfTenants       int       `json:"number_of_tenants" gorm:"not null"`
	ContractURL           *string   `json:"contract_url" gorm:"column:contract_url"`
	StartDate             time.Time `json:"start_date" gorm:"not null"`
	EndDate               time.Time `json:"end_date" gorm:"not null"`
	Deposit               float64   `json:"deposit" gorm:"not null"`
	MonthlyRent           float64   `json:"monthly_rent" gorm:"not null"`
	InitialElectricityNum float64   `json:"initial_electricity_num" gorm:"not null"`
	ElectricityUnitPrice  float64   `json:"electricity_unit_price" gorm:"not null"`
	WaterPrice            float64   `json:"water_price" gorm:"not null"`
	InternetPrice         float64   `json:"internet_price" gorm:"not null"`
	GeneralPrice          float64   `json:"general_price" gorm:"not null"`
	RoomID                uint      `json:"room_id" gorm:"index;not null"`
	IsActive              bool      `json:"is_active" gorm:"not null"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`

	Room     *Room     `json:"-" gorm:"foreignKey:RoomID"`
	Invoices []Invoice `json:"-" gorm:"foreignKey:RentedRoomID"`
}

// ValidateTenantPhone accepts 9 or 10 digits.
func ValidateTenantPhone(phone string) error {
	if phone == "" {
		return Validation("tenant phone is required")
	}
	for _, r := range phone {
		if !unicode.IsDigit(r) {
			return Validation("phone number must contain only digits")
		}
	}
	if len(phone) < 9 || len(phone) > 10 {
		return Validation("phone must have between 9 and 10 digits")
	}
	return nil
}

// Validate checks the tenant and date fields.
func (rr *RentedRoom) Validate() error {
	if err := ValidateTenantPhone(rr.TenantPhone); err != nil {
		return err
	}
	if rr.StartDate.After(rr.EndDate) {
		return Validation("start date must be before end date")
	}
	if rr.NumberOfTenants < 1 {
		return Validation("number of tenants must be at least 1")
	}
	return nil
}

// FitsCapacity reports ErrOverCapacity when the tenants exceed capacity.
func (rr *RentedRoom) FitsCapacity(capacity int) error {
	if rr.NumberOfTenants > capacity {
		return ErrOverCapacity
	}
	return nil
}

// RentalFilter narrows contract listings. OwnerID is always enforced.
type RentalFilter struct {
	OwnerID    uint
	RoomID     *uint
	ActiveOnly bool
	Page       Page
}
