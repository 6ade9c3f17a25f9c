package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentaldesk/rental-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new owner account.
//
// @Summary      Register a new owner
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Owner registration details"
// @Success      201   {object}  ownerResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	owner, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Fullname: req.Fullname,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toOwnerResponse(owner))
}

// Login authenticates an owner and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the authenticated owner's profile.
//
// @Summary      Current owner
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ownerResponse
// @Failure      401  {object}  errorResponse
// @Router       /users/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	owner, err := h.authService.Profile(c.Request().Context(), oid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOwnerResponse(owner))
}

// UpdateMe patches the owner's fullname, phone or email.
//
// @Summary      Update current owner
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  ownerResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /users/me [patch]
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	var req updateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	owner, err := h.authService.UpdateProfile(c.Request().Context(), oid, ports.ProfilePatch{
		Fullname: req.Fullname,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOwnerResponse(owner))
}

// ChangePassword verifies the old password and stores the new one.
//
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Old and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /users/me/password [patch]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	var req changePasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.authService.ChangePassword(c.Request().Context(), oid, req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "password changed successfully"})
}

// Roles lists the known authorities.
//
// @Summary      List roles
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  roleResponse
// @Router       /users/roles [get]
func (h *AuthHandler) Roles(c echo.Context) error {
	roles, err := h.authService.Roles(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]roleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, roleResponse{ID: r.ID, Authority: r.Authority})
	}
	return c.JSON(http.StatusOK, out)
}
