package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

type OwnerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

func (r *OwnerRepository) Create(ctx context.Context, owner *domain.Owner) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(owner).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateAccount
	}
	if err != nil {
		return fmt.Errorf("create owner: %w", err)
	}
	return nil
}

func (r *OwnerRepository) FindByID(ctx context.Context, id uint) (*domain.Owner, error) {
	var owner domain.Owner
	err := r.db.WithContext(ctx).Preload("Role").First(&owner, "owner_id = ?", id).Error
	if err != nil {
		return nil, translate(err, domain.ErrOwnerNotFound)
	}
	return &owner, nil
}

func (r *OwnerRepository) FindByEmail(ctx context.Context, email string) (*domain.Owner, error) {
	var owner domain.Owner
	err := r.db.WithContext(ctx).Preload("Role").First(&owner, "email = ?", email).Error
	if err != nil {
		return nil, translate(err, domain.ErrOwnerNotFound)
	}
	return &owner, nil
}

func (r *OwnerRepository) EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	return r.taken(ctx, "email", email, exceptID)
}

func (r *OwnerRepository) PhoneTaken(ctx context.Context, phone string, exceptID uint) (bool, error) {
	return r.taken(ctx, "phone", phone, exceptID)
}

func (r *OwnerRepository) taken(ctx context.Context, column, value string, exceptID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Owner{}).
		Where(column+" = ? AND owner_id <> ?", value, exceptID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check %s: %w", column, err)
	}
	return n > 0, nil
}

// Update writes the mutable account columns.
func (r *OwnerRepository) Update(ctx context.Context, owner *domain.Owner) error {
	err := r.db.WithContext(ctx).Model(owner).
		Select("fullname", "phone", "email", "password", "is_active", "updated_at").
		Updates(owner).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateAccount
	}
	if err != nil {
		return fmt.Errorf("update owner: %w", err)
	}
	return nil
}

func (r *OwnerRepository) EnsureRole(ctx context.Context, authority string) (*domain.Role, error) {
	role := domain.Role{Authority: authority}
	err := r.db.WithContext(ctx).
		Where(domain.Role{Authority: authority}).
		FirstOrCreate(&role).Error
	if err != nil {
		return nil, fmt.Errorf("ensure role %q: %w", authority, err)
	}
	return &role, nil
}

func (r *OwnerRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	if err := r.db.WithContext(ctx).Order("id").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}
