package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dailydiet/internal/model"
)

func mealsFromFlags(flags ...bool) []model.Meal {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	meals := make([]model.Meal, 0, len(flags))
	for i, onDiet := range flags {
		meals = append(meals, model.Meal{
			IsOnDiet: onDiet,
			Date:     base.Add(time.Duration(i) * time.Hour),
		})
	}
	return meals
}

func TestComputeSummary(t *testing.T) {
	tests := []struct {
		name     string
		flags    []bool
		expected Summary
	}{
		{
			name:     "empty meal set",
			flags:    nil,
			expected: Summary{},
		},
		{
			name:  "streak broken by off-diet meal",
			flags: []bool{true, true, false, true},
			expected: Summary{
				TotalMeals:        4,
				TotalMealsOnDiet:  3,
				TotalMealsOffDiet: 1,
				BestOnDietStreak:  2,
			},
		},
		{
			name:  "all on diet",
			flags: []bool{true, true, true},
			expected: Summary{
				TotalMeals:       3,
				TotalMealsOnDiet: 3,
				BestOnDietStreak: 3,
			},
		},
		{
			name:  "all off diet",
			flags: []bool{false, false},
			expected: Summary{
				TotalMeals:        2,
				TotalMealsOffDiet: 2,
			},
		},
		{
			name:  "best streak at the end",
			flags: []bool{true, false, true, true, true},
			expected: Summary{
				TotalMeals:        5,
				TotalMealsOnDiet:  4,
				TotalMealsOffDiet: 1,
				BestOnDietStreak:  3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeSummary(mealsFromFlags(tt.flags...)))
		})
	}
}

func TestComputeSummary_Identities(t *testing.T) {
	sequences := [][]bool{
		nil,
		{true},
		{false},
		{true, false, true, true, false, false, true, true, true},
		{false, false, false, true},
	}

	for _, flags := range sequences {
		s := ComputeSummary(mealsFromFlags(flags...))
		assert.Equal(t, s.TotalMeals, s.TotalMealsOnDiet+s.TotalMealsOffDiet)
		assert.LessOrEqual(t, s.BestOnDietStreak, s.TotalMealsOnDiet)
	}
}

func TestComputeSummary_AppendMonotonicity(t *testing.T) {
	flags := []bool{true, true, false, true}
	before := ComputeSummary(mealsFromFlags(flags...))

	withOnDiet := ComputeSummary(mealsFromFlags(append(append([]bool{}, flags...), true)...))
	assert.GreaterOrEqual(t, withOnDiet.BestOnDietStreak, before.BestOnDietStreak)

	withOffDiet := ComputeSummary(mealsFromFlags(append(append([]bool{}, flags...), false)...))
	assert.Equal(t, before.BestOnDietStreak, withOffDiet.BestOnDietStreak)
}
