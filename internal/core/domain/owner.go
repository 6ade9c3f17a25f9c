package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// RoleOwner is the only authority allowed to sign in.
const RoleOwner = "owner"

// Role is an authority granted to accounts.
type Role struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Authority string `json:"authority" gorm:"size:50;uniqueIndex;not null"`
}

// Owner is the account that holds houses and scopes every query.
type Owner struct {
	ID           uint      `json:"owner_id" gorm:"column:owner_id;primaryKey"`
	Fullname     string    `json:"fullname" gorm:"size:100;not null"`
	Phone        string    `json:"phone" gorm:"size:15;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;not null"`
	RoleID       uint      `json:"role_id" gorm:"not null"`
	Role         *Role     `json:"-" gorm:"foreignKey:RoleID"`
	IsActive     bool      `json:"is_active" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Owner) TableName() string { return "users" }

// Authority returns the loaded role name, or "" when the role was not preloaded.
func (o *Owner) Authority() string {
	if o.Role == nil {
		return ""
	}
	return o.Role.Authority
}

var ownerPhonePattern = regexp.MustCompile(`^\d{10,11}$`)

// ValidateFullname trims and checks an owner's display name.
func ValidateFullname(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < 3 {
		return "", Validation("fullname must be at least 3 characters")
	}
	return name, nil
}

// ValidateOwnerPhone accepts 10 or 11 digits.
func ValidateOwnerPhone(phone string) error {
	if !ownerPhonePattern.MatchString(phone) {
		return Validation("phone must have 10 or 11 digits")
	}
	return nil
}

// ValidatePassword enforces the password strength policy.
func ValidatePassword(pwd string) error {
	if len(pwd) < 8 {
		return Validation("password must be at least 8 characters")
	}
	var upper, lower, digit, special bool
	for _, r := range pwd {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	switch {
	case !upper:
		return Validation("password must contain an uppercase letter")
	case !lower:
		return Validation("password must contain a lowercase letter")
	case !digit:
		return Validation("password must contain a digit")
	case !special:
		return Validation("password must contain a special character")
	}
	return nil
}
