package fitness

import "fitness-tracker/internal/models"

const (
	WorkoutAdvice   = "Go for a 45-minute high-intensity interval training (HIIT) session."
	NutritionAdvice = "Try a balanced meal with lean protein, whole grains, and plenty of vegetables."
)

// GenerateRecommendations returns the same advice for every user.
// TODO: derive advice from FitnessGoal and DietaryPreferences once the product rules for it exist.
func GenerateRecommendations(_ *models.User) *models.Recommendation {
	return &models.Recommendation{
		Workout:   WorkoutAdvice,
		Nutrition: NutritionAdvice,
	}
}
