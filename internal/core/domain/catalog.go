package domain

import "time"

// House is a property owned by exactly one Owner.
type House struct {
	ID          uint      `json:"house_id" gorm:"column:house_id;primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	FloorCount  int       `json:"floor_count" gorm:"not null"`
	Ward        string    `json:"ward" gorm:"size:100;not null"`
	District    string    `json:"district" gorm:"size:100;not null"`
	AddressLine string    `json:"address_line" gorm:"size:255;not null"`
	OwnerID     uint      `json:"owner_id" gorm:"index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Room belongs to one House. IsAvailable is false exactly while an active
// RentedRoom references it; only the tenancy flow writes it.
type Room struct {
	ID          uint      `json:"room_id" gorm:"column:room_id;primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Capacity    int       `json:"capacity" gorm:"not null"`
	Description *string   `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	HouseID     uint      `json:"house_id" gorm:"index;not null"`
	IsAvailable bool      `json:"is_available" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	House       *House       `json:"-" gorm:"foreignKey:HouseID"`
	Assets      []Asset      `json:"-" gorm:"foreignKey:RoomID"`
	RentedRooms []RentedRoom `json:"-" gorm:"foreignKey:RoomID"`
}

// Asset is a descriptive item attached to a Room.
type Asset struct {
	ID        uint      `json:"asset_id" gorm:"column:asset_id;primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	ImageURL  *string   `json:"image_url" gorm:"column:image_url"`
	RoomID    uint      `json:"room_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Occupancy summarises what blocks deleting a House or Room.
type Occupancy struct {
	OccupiedRooms   int64
	ActiveContracts int64
}

// Blocked reports whether any descendant is occupied or under contract.
func (o Occupancy) Blocked() bool {
	return o.OccupiedRooms > 0 || o.ActiveContracts > 0
}

// RoomFilter narrows room listings. OwnerID is always enforced.
type RoomFilter struct {
	OwnerID       uint
	HouseID       *uint
	AvailableOnly bool
	Page          Page
}
