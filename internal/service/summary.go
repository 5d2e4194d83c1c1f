package service

import "dailydiet/internal/model"

// Summary aggregates a user's dieting statistics.
type Summary struct {
	TotalMeals        int `json:"totalMeals"`
	TotalMealsOnDiet  int `json:"totalMealsOnDiet"`
	TotalMealsOffDiet int `json:"totalMealsOffDiet"`
	BestOnDietStreak  int `json:"bestOnDietStreak"`
}

// ComputeSummary folds a date-ordered meal sequence into counts and the
// longest run of consecutive on-diet meals. Single pass, no allocation.
// Callers must pass meals in a fixed total order for the streak to be
// deterministic when dates collide.
func ComputeSummary(meals []model.Meal) Summary {
	var s Summary
	currentStreak := 0
	for _, meal := range meals {
		s.TotalMeals++
		if meal.IsOnDiet {
			s.TotalMealsOnDiet++
			currentStreak++
			if currentStreak > s.BestOnDietStreak {
				s.BestOnDietStreak = currentStreak
			}
		} else {
			s.TotalMealsOffDiet++
			currentStreak = 0
		}
	}
	return s
}
