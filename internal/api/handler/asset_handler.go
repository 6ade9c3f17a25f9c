package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentaldesk/rental-api/internal/core/ports"
)

// AssetHandler serves /assets.
type AssetHandler struct {
	service ports.AssetService
}

func NewAssetHandler(service ports.AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

// Create handles POST /assets.
//
// @Summary      Attach an asset to a room
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assetRequest  true  "Asset details"
// @Success      201   {object}  assetResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /assets [post]
func (h *AssetHandler) Create(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	var req assetRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	asset, err := h.service.Create(c.Request().Context(), oid, ports.AssetInput{
		RoomID:   req.RoomID,
		Name:     req.Name,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAssetResponse(asset))
}

// ListByRoom handles GET /assets/room/:room_id.
//
// @Summary      List assets of a room
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        room_id  path      int  true  "Room id"
// @Success      200      {array}   assetResponse
// @Failure      404      {object}  errorResponse
// @Router       /assets/room/{room_id} [get]
func (h *AssetHandler) ListByRoom(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	roomID, err := pathID(c, "room_id")
	if err != nil {
		return err
	}
	assets, err := h.service.ListByRoom(c.Request().Context(), oid, roomID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAssetResponses(assets))
}

// Get handles GET /assets/:id.
//
// @Summary      Get an asset
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Asset id"
// @Success      200  {object}  assetResponse
// @Failure      404  {object}  errorResponse
// @Router       /assets/{id} [get]
func (h *AssetHandler) Get(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	asset, err := h.service.Get(c.Request().Context(), oid, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAssetResponse(asset))
}

// Update handles PUT /assets/:id.
//
// @Summary      Update an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Asset id"
// @Param        body  body      assetUpdateRequest  true  "Fields to change"
// @Success      200   {object}  assetResponse
// @Failure      404   {object}  errorResponse
// @Router       /assets/{id} [put]
func (h *AssetHandler) Update(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req assetUpdateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	asset, err := h.service.Update(c.Request().Context(), oid, id, ports.AssetPatch{
		Name:     req.Name,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAssetResponse(asset))
}

// Delete handles DELETE /assets/:id.
//
// @Summary      Delete an asset
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Asset id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /assets/{id} [delete]
func (h *AssetHandler) Delete(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), oid, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "asset deleted successfully"})
}
