package handler

import "github.com/rentaldesk/rental-api/internal/core/domain"

func toHouseResponse(h *domain.House) houseResponse {
	return houseResponse{
		HouseID:     h.ID,
		Name:        h.Name,
		FloorCount:  h.FloorCount,
		Ward:        h.Ward,
		District:    h.District,
		AddressLine: h.AddressLine,
		OwnerID:     h.OwnerID,
		CreatedAt:   h.CreatedAt,
	}
}

func toHouseResponses(hs []domain.House) []houseResponse {
	out := make([]houseResponse, 0, len(hs))
	for i := range hs {
		out = append(out, toHouseResponse(&hs[i]))
	}
	return out
}

func toRoomResponse(r *domain.Room) roomResponse {
	return roomResponse{
		RoomID:      r.ID,
		Name:        r.Name,
		Capacity:    r.Capacity,
		Description: r.Description,
		Price:       r.Price,
		HouseID:     r.HouseID,
		IsAvailable: r.IsAvailable,
		CreatedAt:   r.CreatedAt,
	}
}

func toRoomResponses(rs []domain.Room) []roomResponse {
	out := make([]roomResponse, 0, len(rs))
	for i := range rs {
		out = append(out, toRoomResponse(&rs[i]))
	}
	return out
}

func toRoomWithDetails(r *domain.Room) roomWithDetailsResponse {
	resp := roomWithDetailsResponse{
		roomResponse: toRoomResponse(r),
		Assets:       toAssetResponses(r.Assets),
		RentedRooms:  toRentedRoomResponses(r.RentedRooms),
	}
	if r.House != nil {
		h := toHouseResponse(r.House)
		resp.House = &h
	}
	return resp
}

func toAssetResponse(a *domain.Asset) assetResponse {
	return assetResponse{
		AssetID:   a.ID,
		Name:      a.Name,
		ImageURL:  a.ImageURL,
		RoomID:    a.RoomID,
		CreatedAt: a.CreatedAt,
	}
}

func toAssetResponses(as []domain.Asset) []assetResponse {
	out := make([]assetResponse, 0, len(as))
	for i := range as {
		out = append(out, toAssetResponse(&as[i]))
	}
	return out
}
