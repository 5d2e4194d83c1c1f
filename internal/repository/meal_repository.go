package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dailydiet/internal/model"
)

// MealFields are the mutable columns of a meal, applied as a full replace.
type MealFields struct {
	Name        string
	Description string
	IsOnDiet    bool
	Date        time.Time
}

// MealRepository defines meal persistence operations. Every read and write
// is scoped by the owning user id; a meal owned by another user is
// indistinguishable from a missing one.
type MealRepository interface {
	Create(ctx context.Context, meal *model.Meal) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Meal, error)
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*model.Meal, error)
	UpdateOwned(ctx context.Context, id, userID uuid.UUID, fields MealFields) (bool, error)
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository creates a new meal repository.
func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Create(ctx context.Context, meal *model.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

// ListByUser returns the user's meals ordered by date ascending. created_at
// and id break ties so equal dates always come back in a stable order.
func (r *mealRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Meal, error) {
	var meals []model.Meal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC, created_at ASC, id ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*model.Meal, error) {
	var meal model.Meal
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// UpdateOwned replaces the mutable fields in a single conditional UPDATE
// filtered by id and owner. The returned bool reports whether a row
// matched; false means not found or not owned, with no way to tell which.
func (r *mealRepository) UpdateOwned(ctx context.Context, id, userID uuid.UUID, fields MealFields) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Meal{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"name":        fields.Name,
			"description": fields.Description,
			"is_on_diet":  fields.IsOnDiet,
			"date":        fields.Date.Truncate(time.Second),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteOwned removes the meal in a single conditional DELETE filtered by
// id and owner.
func (r *mealRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Meal{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
