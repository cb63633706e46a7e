package fitness

import (
	"fmt"

	apperrors "fitness-tracker/internal/errors"
	"fitness-tracker/internal/models"
)

// WorkoutLoggedGoal replaces a user's fitness goal label whenever a workout is logged.
const WorkoutLoggedGoal = "Updated Fitness Goal after workout"

// UserParams holds the fields accepted by CreateUser.
type UserParams struct {
	Username            string
	Email               string
	Password            string
	Weight              float64
	Height              float64
	Age                 int
	Gender              string
	FitnessGoal         string
	PrivacySettings     string
	DietaryPreferences  string
	DietaryRestrictions string
	DailyCalorieGoal    float64
}

// CreateUser builds a user with an empty friend list.
func CreateUser(p UserParams) (*models.User, error) {
	err := checkFields(
		textField{"username", p.Username, MaxUsernameLen},
		textField{"email", p.Email, MaxEmailLen},
		textField{"password", p.Password, MaxPasswordLen},
		textField{"gender", p.Gender, MaxGenderLen},
		textField{"fitness_goal", p.FitnessGoal, MaxFitnessGoalLen},
		textField{"privacy_settings", p.PrivacySettings, MaxPrivacySettingsLen},
		textField{"dietary_preferences", p.DietaryPreferences, MaxDietaryPreferencesLen},
		textField{"dietary_restrictions", p.DietaryRestrictions, MaxDietaryRestrictionsLen},
	)
	if err != nil {
		return nil, err
	}

	return &models.User{
		Username:            p.Username,
		Email:               p.Email,
		Password:            p.Password,
		Weight:              p.Weight,
		Height:              p.Height,
		Age:                 p.Age,
		Gender:              p.Gender,
		FitnessGoal:         p.FitnessGoal,
		PrivacySettings:     p.PrivacySettings,
		DietaryPreferences:  p.DietaryPreferences,
		DietaryRestrictions: p.DietaryRestrictions,
		DailyCalorieGoal:    p.DailyCalorieGoal,
		Friends:             []string{},
	}, nil
}

// AddFriend appends name to the user's friend list. Duplicates are allowed.
// A full list is reported before the name is validated.
func (r Rules) AddFriend(user *models.User, name string) error {
	if len(user.Friends) >= r.FriendLimit {
		return ErrFriendLimitReached
	}
	if err := checkFields(textField{"friend", name, MaxUsernameLen}); err != nil {
		return err
	}
	user.Friends = append(user.Friends, name)
	return nil
}

// RemoveFriend deletes the first exact match of name, keeping the order of
// the remaining friends.
func RemoveFriend(user *models.User, name string) error {
	for i, friend := range user.Friends {
		if friend == name {
			user.Friends = append(user.Friends[:i:i], user.Friends[i+1:]...)
			return nil
		}
	}
	return apperrors.WithMetadata(
		apperrors.CodeFriendNotFound,
		fmt.Sprintf("friend not found: %s", name),
		map[string]string{"friend": name},
	)
}

func SetDietaryPreferences(user *models.User, preferences string) error {
	if err := checkFields(textField{"dietary_preferences", preferences, MaxDietaryPreferencesLen}); err != nil {
		return err
	}
	user.DietaryPreferences = preferences
	return nil
}

func SetDietaryRestrictions(user *models.User, restrictions string) error {
	if err := checkFields(textField{"dietary_restrictions", restrictions, MaxDietaryRestrictionsLen}); err != nil {
		return err
	}
	user.DietaryRestrictions = restrictions
	return nil
}

func SetDailyCalorieGoal(user *models.User, calories float64) {
	user.DailyCalorieGoal = calories
}

// LogWorkout marks the user's profile as updated by a workout. The workout
// itself is not stored; the fitness goal label is overwritten with
// WorkoutLoggedGoal.
func LogWorkout(user *models.User, _ *models.Workout) {
	user.FitnessGoal = WorkoutLoggedGoal
}
