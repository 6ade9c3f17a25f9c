package domain

import (
	"errors"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		pwd string
		ok  bool
	}{
		{"Secret#123", true},
		{"Ab1!efgh", true},
		{"Ab1!efg", false},
		{"secret#123", false},
		{"SECRET#123", false},
		{"Secret#abc", false},
		{"Secret1234", false},
	}
	for _, tt := range tests {
		err := ValidatePassword(tt.pwd)
		if tt.ok && err != nil {
			t.Errorf("ValidatePassword(%q) unexpected error: %v", tt.pwd, err)
		}
		if !tt.ok && !errors.Is(err, ErrValidation) {
			t.Errorf("ValidatePassword(%q) expected validation error, got %v", tt.pwd, err)
		}
	}
}

func TestValidateOwnerPhone(t *testing.T) {
	for _, phone := range []string{"0901234567", "09012345678"} {
		if err := ValidateOwnerPhone(phone); err != nil {
			t.Errorf("%q should be valid: %v", phone, err)
		}
	}
	for _, phone := range []string{"", "090123456", "090123456789", "09012a4567"} {
		if err := ValidateOwnerPhone(phone); err == nil {
			t.Errorf("%q should be rejected", phone)
		}
	}
}

func TestValidateFullname(t *testing.T) {
	name, err := ValidateFullname("  An Binh ")
	if err != nil || name != "An Binh" {
		t.Fatalf("expected trimmed name, got %q %v", name, err)
	}
	if _, err := ValidateFullname("  Ab  "); err == nil {
		t.Fatalf("expected short name to be rejected")
	}
}

func TestOwnerAuthority(t *testing.T) {
	o := &Owner{}
	if o.Authority() != "" {
		t.Errorf("expected empty authority without role")
	}
	o.Role = &Role{Authority: RoleOwner}
	if o.Authority() != RoleOwner {
		t.Errorf("expected %q, got %q", RoleOwner, o.Authority())
	}
}
