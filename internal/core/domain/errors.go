package domain

import "errors"

// Error kinds. Every domain error wraps exactly one of these so transports
// can map them with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Error is a domain error carrying a client-safe message and its kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// Validation returns a ValidationFailed error with msg.
func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Msg: msg}
}

// Conflict returns a Conflict error with msg.
func Conflict(msg string) error {
	return &Error{Kind: ErrConflict, Msg: msg}
}

var (
	ErrOwnerNotFound      = &Error{Kind: ErrNotFound, Msg: "owner not found"}
	ErrHouseNotFound      = &Error{Kind: ErrNotFound, Msg: "house not found"}
	ErrRoomNotFound       = &Error{Kind: ErrNotFound, Msg: "room not found"}
	ErrAssetNotFound      = &Error{Kind: ErrNotFound, Msg: "asset not found"}
	ErrRentedRoomNotFound = &Error{Kind: ErrNotFound, Msg: "rented room not found"}
	ErrInvoiceNotFound    = &Error{Kind: ErrNotFound, Msg: "invoice not found"}

	ErrRoomUnavailable = &Error{Kind: ErrConflict, Msg: "room is not available"}
	ErrOverCapacity    = &Error{Kind: ErrConflict, Msg: "number of tenants exceeds room capacity"}
	ErrHouseOccupied   = &Error{Kind: ErrConflict, Msg: "cannot delete house with occupied rooms or active contracts"}
	ErrRoomOccupied    = &Error{Kind: ErrConflict, Msg: "cannot delete room that is occupied or has an active contract"}

	ErrEmailTaken         = &Error{Kind: ErrValidation, Msg: "email already registered"}
	ErrPhoneTaken         = &Error{Kind: ErrValidation, Msg: "phone already registered"}
	ErrDuplicateAccount   = &Error{Kind: ErrValidation, Msg: "email or phone already registered"}
	ErrWrongPassword      = &Error{Kind: ErrValidation, Msg: "old password is incorrect"}
	ErrInactiveOwner      = &Error{Kind: ErrValidation, Msg: "inactive user"}
	ErrInvalidCredentials = &Error{Kind: ErrUnauthorized, Msg: "incorrect email or password"}
	ErrUnknownSubject     = &Error{Kind: ErrUnauthorized, Msg: "could not validate credentials"}
	ErrNotOwnerRole       = &Error{Kind: ErrForbidden, Msg: "only owner is allowed to login"}
	ErrOwnerRoleRequired  = &Error{Kind: ErrForbidden, Msg: "only owners may manage rental properties"}
)
