package fitness

import "fitness-tracker/internal/models"

// CreateWorkout does not validate duration or intensity; negative values are kept.
func CreateWorkout(workoutType string, duration int, intensity float64) (*models.Workout, error) {
	if err := checkFields(textField{"workout_type", workoutType, MaxWorkoutTypeLen}); err != nil {
		return nil, err
	}
	return &models.Workout{
		Type:      workoutType,
		Duration:  duration,
		Intensity: intensity,
	}, nil
}

func CreateNutrition(food string, calories, protein, carbs, fat float64) (*models.Nutrition, error) {
	if err := checkFields(textField{"food", food, MaxFoodLen}); err != nil {
		return nil, err
	}
	return &models.Nutrition{
		Food:     food,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}, nil
}

func CreateSocialPost(username, content string) (*models.SocialPost, error) {
	err := checkFields(
		textField{"username", username, MaxUsernameLen},
		textField{"content", content, MaxPostContentLen},
	)
	if err != nil {
		return nil, err
	}
	return &models.SocialPost{
		Username: username,
		Content:  content,
	}, nil
}
