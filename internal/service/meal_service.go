package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dailydiet/internal/cache"
	apperrors "dailydiet/internal/errors"
	"dailydiet/internal/model"
	"dailydiet/internal/repository"
)

const summaryCacheTTL = 5 * time.Minute

// MealInput carries the caller-supplied meal fields for create and update.
type MealInput struct {
	Name        string
	Description string
	IsOnDiet    bool
	Date        time.Time
}

// MealService exposes meal CRUD and analytics, always scoped to the owning
// user id passed in explicitly by the caller.
type MealService interface {
	CreateMeal(ctx context.Context, userID uuid.UUID, input MealInput) (*model.Meal, error)
	ListMeals(ctx context.Context, userID uuid.UUID) ([]model.Meal, error)
	GetMeal(ctx context.Context, mealID, userID uuid.UUID) (*model.Meal, error)
	UpdateMeal(ctx context.Context, mealID, userID uuid.UUID, input MealInput) error
	DeleteMeal(ctx context.Context, mealID, userID uuid.UUID) error
	Summary(ctx context.Context, userID uuid.UUID) (*Summary, error)
}

type mealService struct {
	repo  repository.MealRepository
	cache *cache.Client
}

// NewMealService builds a MealService with repository and cache.
func NewMealService(repo repository.MealRepository, cache *cache.Client) MealService {
	return &mealService{repo: repo, cache: cache}
}

func (s *mealService) summaryCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("summary:%s", userID)
}

func (s *mealService) CreateMeal(ctx context.Context, userID uuid.UUID, input MealInput) (*model.Meal, error) {
	meal := &model.Meal{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		IsOnDiet:    input.IsOnDiet,
		Date:        input.Date.Truncate(time.Second),
	}
	if err := s.repo.Create(ctx, meal); err != nil {
		return nil, fmt.Errorf("create meal: %w", err)
	}
	_ = s.cache.Delete(ctx, s.summaryCacheKey(userID))
	return meal, nil
}

func (s *mealService) ListMeals(ctx context.Context, userID uuid.UUID) ([]model.Meal, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *mealService) GetMeal(ctx context.Context, mealID, userID uuid.UUID) (*model.Meal, error) {
	meal, err := s.repo.FindOwned(ctx, mealID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMealNotFound
		}
		return nil, err
	}
	return meal, nil
}

// UpdateMeal replaces the meal's mutable fields. Existence and ownership
// are checked by the same conditional statement that performs the write, so
// there is no window between check and mutation.
func (s *mealService) UpdateMeal(ctx context.Context, mealID, userID uuid.UUID, input MealInput) error {
	updated, err := s.repo.UpdateOwned(ctx, mealID, userID, repository.MealFields{
		Name:        input.Name,
		Description: input.Description,
		IsOnDiet:    input.IsOnDiet,
		Date:        input.Date,
	})
	if err != nil {
		return fmt.Errorf("update meal: %w", err)
	}
	if !updated {
		return apperrors.ErrMealNotFound
	}
	_ = s.cache.Delete(ctx, s.summaryCacheKey(userID))
	return nil
}

func (s *mealService) DeleteMeal(ctx context.Context, mealID, userID uuid.UUID) error {
	deleted, err := s.repo.DeleteOwned(ctx, mealID, userID)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	if !deleted {
		return apperrors.ErrMealNotFound
	}
	_ = s.cache.Delete(ctx, s.summaryCacheKey(userID))
	return nil
}

// Summary returns the user's aggregate statistics, serving from cache when
// a fresh copy exists.
func (s *mealService) Summary(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	key := s.summaryCacheKey(userID)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached Summary
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	meals, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := ComputeSummary(meals)

	if payload, err := json.Marshal(summary); err == nil {
		_ = s.cache.Set(ctx, key, payload, summaryCacheTTL)
	}
	return &summary, nil
}
