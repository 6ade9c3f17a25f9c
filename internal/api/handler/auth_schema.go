package handler

import (
	"time"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Fullname string `json:"fullname" validate:"required,min=3,max=100"`
	Phone    string `json:"phone"    validate:"required,digits,min=10,max=11"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,strongpwd"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type updateProfileRequest struct {
	Fullname *string `json:"fullname" validate:"omitempty,min=3,max=100"`
	Phone    *string `json:"phone"    validate:"omitempty,digits,min=10,max=11"`
	Email    *string `json:"email"    validate:"omitempty,email,max=100"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,strongpwd"`
}

type ownerResponse struct {
	OwnerID   uint      `json:"owner_id"`
	Fullname  string    `json:"fullname"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	RoleID    uint      `json:"role_id"`
	Role      string    `json:"role,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type roleResponse struct {
	ID        uint   `json:"id"`
	Authority string `json:"authority"`
}

func toOwnerResponse(o *domain.Owner) ownerResponse {
	return ownerResponse{
		OwnerID:   o.ID,
		Fullname:  o.Fullname,
		Phone:     o.Phone,
		Email:     o.Email,
		RoleID:    o.RoleID,
		Role:      o.Authority(),
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt,
	}
}
