package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentaldesk/rental-api/internal/api/metrics"
	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

// TenancyService runs the contract lifecycle and keeps room availability in
// step with active contracts.
type TenancyService struct {
	rentals ports.RentalRepository
	rooms   ports.RoomRepository
	scope   ports.ScopeResolver
	audit   ports.AuditRepository
	lifecycle
}

// NewTenancyService wires the service. recorder, audit and idem may be nil.
func NewTenancyService(
	rentals ports.RentalRepository,
	rooms ports.RoomRepository,
	scope ports.ScopeResolver,
	recorder ports.AuditRecorder,
	audit ports.AuditRepository,
	idem ports.IdempotencyStore,
	log zerolog.Logger,
) *TenancyService {
	return &TenancyService{
		rentals:   rentals,
		rooms:     rooms,
		scope:     scope,
		audit:     audit,
		lifecycle: lifecycle{recorder: recorder, idem: idem, log: log, now: time.Now},
	}
}

// CreateContract rents an available room. A repeated Idempotency-Key
// returns the contract created by the first request.
func (s *TenancyService) CreateContract(ctx context.Context, ownerID uint, in ports.CreateContractInput) (*ports.ContractResult, error) {
	if id, ok := s.lookup(ctx, idemContracts, ownerID, in.IdempotencyKey); ok {
		if existing, err := s.rentals.FindByID(ctx, id); err == nil {
			s.log.Info().Str("idempotency_key", in.IdempotencyKey).Uint("rr_id", existing.ID).Msg("idempotent replay")
			return &ports.ContractResult{Contract: existing, AlreadyExisted: true}, nil
		}
	}

	if err := authorize(ctx, s.scope, domain.KindRoom, in.RoomID, ownerID); err != nil {
		return nil, err
	}
	room, err := s.rooms.FindByID(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	rr := &domain.RentedRoom{
		TenantName:            in.TenantName,
		TenantPhone:           in.TenantPhone,
		NumberOfTenants:       in.NumberOfTenants,
		ContractURL:           in.ContractURL,
		StartDate:             in.StartDate.UTC(),
		EndDate:               in.EndDate.UTC(),
		Deposit:               in.Deposit,
		MonthlyRent:           room.Price,
		InitialElectricityNum: in.InitialElectricityNum,
		ElectricityUnitPrice:  orDefault(in.ElectricityUnitPrice, domain.DefaultElectricityUnitPrice),
		WaterPrice:            orDefault(in.WaterPrice, domain.DefaultWaterPrice),
		InternetPrice:         orDefault(in.InternetPrice, domain.DefaultInternetPrice),
		GeneralPrice:          orDefault(in.GeneralPrice, domain.DefaultGeneralPrice),
		RoomID:                room.ID,
		IsActive:              true,
	}
	if err := rr.Validate(); err != nil {
		return nil, err
	}
	if !room.IsAvailable {
		return nil, domain.ErrRoomUnavailable
	}
	if err := rr.FitsCapacity(room.Capacity); err != nil {
		return nil, err
	}

	if err := s.rentals.CreateActive(ctx, rr); err != nil {
		return nil, err
	}
	s.remember(ctx, idemContracts, ownerID, in.IdempotencyKey, rr.ID)
	s.record(domain.KindRentedRoom, rr.ID, rr.ID, ownerID, domain.ActionContractCreated, map[string]any{
		"room_id":      rr.RoomID,
		"monthly_rent": rr.MonthlyRent,
	})

	s.log.Info().Uint("rr_id", rr.ID).Uint("room_id", rr.RoomID).Uint("owner_id", ownerID).Msg("contract created")
	return &ports.ContractResult{Contract: rr}, nil
}

// UpdateContract patches a contract. MonthlyRent is discarded. The fields
// and an IsActive change are written together so the room flag follows,
// claiming the room for the patched tenant count on reactivation.
func (s *TenancyService) UpdateContract(ctx context.Context, ownerID, rrID uint, patch ports.ContractPatch) (*domain.RentedRoom, error) {
	rr, err := s.load(ctx, ownerID, rrID)
	if err != nil {
		return nil, err
	}
	if patch.MonthlyRent != nil {
		s.log.Debug().Uint("rr_id", rrID).Msg("monthly_rent is immutable, ignoring")
	}

	applyContractPatch(rr, patch)
	if err := rr.Validate(); err != nil {
		return nil, err
	}
	if patch.NumberOfTenants != nil {
		room, err := s.rooms.FindByID(ctx, rr.RoomID)
		if err != nil {
			return nil, err
		}
		if err := rr.FitsCapacity(room.Capacity); err != nil {
			return nil, err
		}
	}

	changed, err := s.rentals.Update(ctx, rr, patch.IsActive)
	if err != nil {
		return nil, err
	}
	if changed {
		rr.IsActive = *patch.IsActive
		action := domain.ActionContractReactivated
		if !rr.IsActive {
			action = domain.ActionContractTerminated
			metrics.ContractsTerminatedTotal.Inc()
		}
		s.record(domain.KindRentedRoom, rr.ID, rr.ID, ownerID, action, map[string]any{"room_id": rr.RoomID})
	}
	s.record(domain.KindRentedRoom, rr.ID, rr.ID, ownerID, domain.ActionContractUpdated, nil)
	return rr, nil
}

// TerminateContract ends a contract and frees its room. Terminating an
// inactive contract changes nothing: the room may already hold a newer one.
func (s *TenancyService) TerminateContract(ctx context.Context, ownerID, rrID uint) (*domain.RentedRoom, error) {
	rr, err := s.load(ctx, ownerID, rrID)
	if err != nil {
		return nil, err
	}
	if !rr.IsActive {
		s.log.Debug().Uint("rr_id", rrID).Msg("contract already terminated")
		return rr, nil
	}

	changed, err := s.rentals.Terminate(ctx, rr.ID)
	if err != nil {
		return nil, err
	}
	rr.IsActive = false
	if !changed {
		return rr, nil
	}
	metrics.ContractsTerminatedTotal.Inc()
	s.record(domain.KindRentedRoom, rr.ID, rr.ID, ownerID, domain.ActionContractTerminated, map[string]any{"room_id": rr.RoomID})

	s.log.Info().Uint("rr_id", rr.ID).Uint("room_id", rr.RoomID).Msg("contract terminated")
	return rr, nil
}

// DeleteContract removes a contract with its invoices.
func (s *TenancyService) DeleteContract(ctx context.Context, ownerID, rrID uint) error {
	rr, err := s.load(ctx, ownerID, rrID)
	if err != nil {
		return err
	}
	if err := s.rentals.Delete(ctx, rr.ID); err != nil {
		return err
	}
	s.record(domain.KindRentedRoom, rr.ID, rr.ID, ownerID, domain.ActionContractDeleted, map[string]any{
		"room_id":    rr.RoomID,
		"was_active": rr.IsActive,
	})

	s.log.Info().Uint("rr_id", rr.ID).Msg("contract deleted")
	return nil
}

// GetContract returns the contract with its room and invoices.
func (s *TenancyService) GetContract(ctx context.Context, ownerID, rrID uint) (*domain.RentedRoom, error) {
	if err := authorize(ctx, s.scope, domain.KindRentedRoom, rrID, ownerID); err != nil {
		return nil, err
	}
	return s.rentals.FindDetails(ctx, rrID)
}

func (s *TenancyService) ListContracts(ctx context.Context, filter domain.RentalFilter) ([]domain.RentedRoom, error) {
	if filter.RoomID != nil {
		if err := authorize(ctx, s.scope, domain.KindRoom, *filter.RoomID, filter.OwnerID); err != nil {
			return nil, err
		}
	}
	filter.Page = filter.Page.Normalize()
	return s.rentals.List(ctx, filter)
}

// History returns the audit trail of a contract and its invoices.
func (s *TenancyService) History(ctx context.Context, ownerID, rrID uint) ([]domain.AuditEvent, error) {
	if err := authorize(ctx, s.scope, domain.KindRentedRoom, rrID, ownerID); err != nil {
		return nil, err
	}
	if s.audit == nil {
		return []domain.AuditEvent{}, nil
	}
	return s.audit.ListByContract(ctx, rrID)
}

func (s *TenancyService) load(ctx context.Context, ownerID, rrID uint) (*domain.RentedRoom, error) {
	if err := authorize(ctx, s.scope, domain.KindRentedRoom, rrID, ownerID); err != nil {
		return nil, err
	}
	return s.rentals.FindByID(ctx, rrID)
}

func applyContractPatch(rr *domain.RentedRoom, p ports.ContractPatch) {
	if p.TenantName != nil {
		rr.TenantName = *p.TenantName
	}
	if p.TenantPhone != nil {
		rr.TenantPhone = *p.TenantPhone
	}
	if p.NumberOfTenants != nil {
		rr.NumberOfTenants = *p.NumberOfTenants
	}
	if p.ContractURL != nil {
		rr.ContractURL = p.ContractURL
	}
	if p.StartDate != nil {
		rr.StartDate = p.StartDate.UTC()
	}
	if p.EndDate != nil {
		rr.EndDate = p.EndDate.UTC()
	}
	if p.Deposit != nil {
		rr.Deposit = *p.Deposit
	}
	if p.InitialElectricityNum != nil {
		rr.InitialElectricityNum = *p.InitialElectricityNum
	}
	if p.ElectricityUnitPrice != nil {
		rr.ElectricityUnitPrice = *p.ElectricityUnitPrice
	}
	if p.WaterPrice != nil {
		rr.WaterPrice = *p.WaterPrice
	}
	if p.InternetPrice != nil {
		rr.InternetPrice = *p.InternetPrice
	}
	if p.GeneralPrice != nil {
		rr.GeneralPrice = *p.GeneralPrice
	}
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
