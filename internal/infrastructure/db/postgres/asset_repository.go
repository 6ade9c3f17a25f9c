package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(ctx context.Context, a *domain.Asset) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create asset: %w", err)
	}
	return nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id uint) (*domain.Asset, error) {
	var a domain.Asset
	if err := r.db.WithContext(ctx).First(&a, "asset_id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrAssetNotFound)
	}
	return &a, nil
}

func (r *AssetRepository) ListByRoom(ctx context.Context, roomID uint) ([]domain.Asset, error) {
	assets := []domain.Asset{}
	err := r.db.WithContext(ctx).Where("room_id = ?", roomID).Order("asset_id").Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

func (r *AssetRepository) Update(ctx context.Context, a *domain.Asset) error {
	err := r.db.WithContext(ctx).Model(a).Select("name", "image_url", "room_id").Updates(a).Error
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("asset_id = ?", id).Delete(&domain.Asset{})
	if res.Error != nil {
		return fmt.Errorf("delete asset: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}
