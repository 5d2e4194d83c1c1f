package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "dailydiet/internal/errors"
	"dailydiet/internal/model"
	"dailydiet/internal/repository"
)

// MockMealRepository is a mock implementation of MealRepository.
type MockMealRepository struct {
	mock.Mock
}

func (m *MockMealRepository) Create(ctx context.Context, meal *model.Meal) error {
	args := m.Called(ctx, meal)
	return args.Error(0)
}

func (m *MockMealRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Meal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Meal), args.Error(1)
}

func (m *MockMealRepository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*model.Meal, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Meal), args.Error(1)
}

func (m *MockMealRepository) UpdateOwned(ctx context.Context, id, userID uuid.UUID, fields repository.MealFields) (bool, error) {
	args := m.Called(ctx, id, userID, fields)
	return args.Bool(0), args.Error(1)
}

func (m *MockMealRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func TestMealService_CreateMeal(t *testing.T) {
	repo := new(MockMealRepository)
	svc := NewMealService(repo, nil)

	userID := uuid.New()
	date := time.Date(2024, 3, 1, 8, 30, 15, 999_000_000, time.UTC)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(meal *model.Meal) bool {
		return meal.UserID == userID && meal.Name == "Breakfast" && meal.IsOnDiet
	})).Return(nil)

	meal, err := svc.CreateMeal(context.Background(), userID, MealInput{
		Name:        "Breakfast",
		Description: "Oats",
		IsOnDiet:    true,
		Date:        date,
	})

	assert.NoError(t, err)
	assert.Equal(t, date.Truncate(time.Second), meal.Date, "sub-second precision must be dropped")
	repo.AssertExpectations(t)
}

func TestMealService_GetMeal(t *testing.T) {
	userID := uuid.New()
	mealID := uuid.New()

	t.Run("owned meal is returned", func(t *testing.T) {
		repo := new(MockMealRepository)
		svc := NewMealService(repo, nil)

		expected := &model.Meal{ID: mealID, UserID: userID, Name: "Lunch"}
		repo.On("FindOwned", mock.Anything, mealID, userID).Return(expected, nil)

		meal, err := svc.GetMeal(context.Background(), mealID, userID)
		assert.NoError(t, err)
		assert.Equal(t, expected, meal)
	})

	t.Run("foreign or missing meal yields not found", func(t *testing.T) {
		repo := new(MockMealRepository)
		svc := NewMealService(repo, nil)

		repo.On("FindOwned", mock.Anything, mealID, userID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetMeal(context.Background(), mealID, userID)
		assert.ErrorIs(t, err, apperrors.ErrMealNotFound)
	})
}

func TestMealService_UpdateMeal(t *testing.T) {
	userID := uuid.New()
	mealID := uuid.New()
	input := MealInput{Name: "Dinner", IsOnDiet: false, Date: time.Now()}

	t.Run("matched row updates", func(t *testing.T) {
		repo := new(MockMealRepository)
		svc := NewMealService(repo, nil)

		repo.On("UpdateOwned", mock.Anything, mealID, userID, mock.Anything).Return(true, nil)

		assert.NoError(t, svc.UpdateMeal(context.Background(), mealID, userID, input))
		repo.AssertExpectations(t)
	})

	t.Run("zero rows affected yields not found", func(t *testing.T) {
		repo := new(MockMealRepository)
		svc := NewMealService(repo, nil)

		repo.On("UpdateOwned", mock.Anything, mealID, userID, mock.Anything).Return(false, nil)

		err := svc.UpdateMeal(context.Background(), mealID, userID, input)
		assert.ErrorIs(t, err, apperrors.ErrMealNotFound)
	})
}

func TestMealService_DeleteMeal(t *testing.T) {
	userID := uuid.New()
	mealID := uuid.New()

	t.Run("matched row deletes", func(t *testing.T) {
		repo := new(MockMealRepository)
		svc := NewMealService(repo, nil)

		repo.On("DeleteOwned", mock.Anything, mealID, userID).Return(true, nil)

		assert.NoError(t, svc.DeleteMeal(context.Background(), mealID, userID))
	})

	t.Run("repeat delete yields not found", func(t *testing.T) {
		repo := new(MockMealRepository)
		svc := NewMealService(repo, nil)

		repo.On("DeleteOwned", mock.Anything, mealID, userID).Return(false, nil)

		err := svc.DeleteMeal(context.Background(), mealID, userID)
		assert.ErrorIs(t, err, apperrors.ErrMealNotFound)
	})
}

func TestMealService_Summary(t *testing.T) {
	repo := new(MockMealRepository)
	svc := NewMealService(repo, nil)

	userID := uuid.New()
	repo.On("ListByUser", mock.Anything, userID).
		Return(mealsFromFlags(true, true, false, true), nil)

	summary, err := svc.Summary(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, &Summary{
		TotalMeals:        4,
		TotalMealsOnDiet:  3,
		TotalMealsOffDiet: 1,
		BestOnDietStreak:  2,
	}, summary)
}
