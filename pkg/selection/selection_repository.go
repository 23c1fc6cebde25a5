package selection

import (
	"context"

	"weekend-planner/domain"
	"weekend-planner/entities"

	"gorm.io/gorm"
)

type (
	SelectionRepository interface {
		CreateSelection(ctx context.Context, selection *entities.Selection) error
		GetSelectionByID(ctx context.Context, id string) (*entities.Selection, error)
		GetSelections(ctx context.Context) ([]*entities.Selection, error)
		UpdateSelection(ctx context.Context, selection *entities.Selection) error
		DeleteSelection(ctx context.Context, id string) error
		GetPlanDayClaims(ctx context.Context) ([]domain.PlanDayClaim, error)
	}

	selectionRepository struct {
		db *gorm.DB
	}
)

func NewSelectionRepository(db *gorm.DB) SelectionRepository {
	return &selectionRepository{db: db}
}

func (r *selectionRepository) CreateSelection(ctx context.Context, selection *entities.Selection) error {
	return r.db.WithContext(ctx).Create(selection).Error
}

func (r *selectionRepository) GetSelectionByID(ctx context.Context, id string) (*entities.Selection, error) {
	var selection entities.Selection
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&selection).Error; err != nil {
		return nil, err
	}
	return &selection, nil
}

func (r *selectionRepository) GetSelections(ctx context.Context) ([]*entities.Selection, error) {
	var selections []*entities.Selection
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&selections).Error; err != nil {
		return nil, err
	}
	return selections, nil
}

func (r *selectionRepository) UpdateSelection(ctx context.Context, selection *entities.Selection) error {
	return r.db.WithContext(ctx).Save(selection).Error
}

func (r *selectionRepository) DeleteSelection(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Selection{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *selectionRepository) GetPlanDayClaims(ctx context.Context) ([]domain.PlanDayClaim, error) {
	var claims []domain.PlanDayClaim
	if err := r.db.WithContext(ctx).Model(&entities.Selection{}).
		Select("id, plan_day").
		Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}
