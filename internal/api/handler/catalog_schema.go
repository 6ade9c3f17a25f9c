package handler

import "time"

type houseRequest struct {
	Name        string `json:"name"         validate:"required,max=100"`
	FloorCount  int    `json:"floor_count"  validate:"gte=1"`
	Ward        string `json:"ward"         validate:"required,max=100"`
	District    string `json:"district"     validate:"required,max=100"`
	AddressLine string `json:"address_line" validate:"required,max=255"`
}

type houseUpdateRequest struct {
	Name        *string `json:"name"         validate:"omitempty,max=100"`
	FloorCount  *int    `json:"floor_count"  validate:"omitempty,gte=1"`
	Ward        *string `json:"ward"         validate:"omitempty,max=100"`
	District    *string `json:"district"     validate:"omitempty,max=100"`
	AddressLine *string `json:"address_line" validate:"omitempty,max=255"`
}

type houseResponse struct {
	HouseID     uint      `json:"house_id"`
	Name        string    `json:"name"`
	FloorCount  int       `json:"floor_count"`
	Ward        string    `json:"ward"`
	District    string    `json:"district"`
	AddressLine string    `json:"address_line"`
	OwnerID     uint      `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type roomRequest struct {
	HouseID     uint    `json:"house_id"    validate:"required"`
	Name        string  `json:"name"        validate:"required,max=100"`
	Capacity    int     `json:"capacity"    validate:"gte=1"`
	Description *string `json:"description"`
	Price       float64 `json:"price"       validate:"gte=0"`
}

// roomUpdateRequest accepts is_available for compatibility and drops it.
type roomUpdateRequest struct {
	Name        *string  `json:"name"         validate:"omitempty,max=100"`
	Capacity    *int     `json:"capacity"     validate:"omitempty,gte=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"        validate:"omitempty,gte=0"`
	IsAvailable *bool    `json:"is_available"`
}

type roomResponse struct {
	RoomID      uint      `json:"room_id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	HouseID     uint      `json:"house_id"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// roomWithDetailsResponse embeds the room with its house, assets and contracts.
type roomWithDetailsResponse struct {
	roomResponse
	House       *houseResponse       `json:"house,omitempty"`
	Assets      []assetResponse      `json:"assets"`
	RentedRooms []rentedRoomResponse `json:"rented_rooms"`
}

type assetRequest struct {
	RoomID   uint    `json:"room_id"   validate:"required"`
	Name     string  `json:"name"      validate:"required,max=100"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
}

type assetUpdateRequest struct {
	Name     *string `json:"name"      validate:"omitempty,max=100"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
}

type assetResponse struct {
	AssetID   uint      `json:"asset_id"`
	Name      string    `json:"name"`
	ImageURL  *string   `json:"image_url"`
	RoomID    uint      `json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
}
