package ports

import (
	"context"
	"time"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

// CreateContractInput carries a new tenancy. Rent is not part of it: the
// contract snapshots the room price.
type CreateContractInput struct {
	RoomID                uint
	TenantName            string
	TenantPhone           string
	NumberOfTenants       int
	ContractURL           *string
	StartDate             time.Time
	EndDate               time.Time
	Deposit               float64
	InitialElectricityNum float64
	// Nil rates fall back to the domain defaults.
	ElectricityUnitPrice *float64
	WaterPrice           *float64
	InternetPrice        *float64
	GeneralPrice         *float64
	IdempotencyKey       string
}

// ContractPatch is a partial contract update. MonthlyRent is accepted from
// clients but always discarded.
type ContractPatch struct {
	TenantName            *string
	TenantPhone           *string
	NumberOfTenants       *int
	ContractURL           *string
	StartDate             *time.Time
	EndDate               *time.Time
	Deposit               *float64
	MonthlyRent           *float64
	InitialElectricityNum *float64
	ElectricityUnitPrice  *float64
	WaterPrice            *float64
	InternetPrice         *float64
	GeneralPrice          *float64
	IsActive              *bool
}

// ContractResult is returned by CreateContract.
type ContractResult struct {
	Contract *domain.RentedRoom
	// AlreadyExisted is true when the Idempotency-Key matched an earlier contract.
	AlreadyExisted bool
}

type TenancyService interface {
	CreateContract(ctx context.Context, ownerID uint, in CreateContractInput) (*ContractResult, error)
	UpdateContract(ctx context.Context, ownerID, rrID uint, patch ContractPatch) (*domain.RentedRoom, error)
	TerminateContract(ctx context.Context, ownerID, rrID uint) (*domain.RentedRoom, error)
	DeleteContract(ctx context.Context, ownerID, rrID uint) error
	GetContract(ctx context.Context, ownerID, rrID uint) (*domain.RentedRoom, error)
	ListContracts(ctx context.Context, filter domain.RentalFilter) ([]domain.RentedRoom, error)
	History(ctx context.Context, ownerID, rrID uint) ([]domain.AuditEvent, error)
}
