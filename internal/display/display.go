// Package display renders tracker records as human-readable text, one field
// per line in a fixed order.
package display

import (
	"fmt"
	"io"

	apperrors "fitness-tracker/internal/errors"
	"fitness-tracker/internal/models"
)

func User(w io.Writer, u *models.User) {
	fmt.Fprintf(w, "Username: %s\n", u.Username)
	fmt.Fprintf(w, "Email: %s\n", u.Email)
	fmt.Fprintf(w, "Weight: %.2f kg\n", u.Weight)
	fmt.Fprintf(w, "Height: %.2f cm\n", u.Height)
	fmt.Fprintf(w, "Age: %d\n", u.Age)
	fmt.Fprintf(w, "Gender: %s\n", u.Gender)
	fmt.Fprintf(w, "Fitness Goal: %s\n", u.FitnessGoal)
	fmt.Fprintf(w, "Privacy Settings: %s\n", u.PrivacySettings)
	fmt.Fprintf(w, "Dietary Preferences: %s\n", u.DietaryPreferences)
	fmt.Fprintf(w, "Dietary Restrictions: %s\n", u.DietaryRestrictions)
	fmt.Fprintf(w, "Daily Calorie Goal: %.2f\n", u.DailyCalorieGoal)
	fmt.Fprintf(w, "Friends Count: %d\n", u.FriendCount())
}

func Friends(w io.Writer, u *models.User) {
	fmt.Fprintln(w, "Friends:")
	for _, name := range u.Friends {
		fmt.Fprintln(w, name)
	}
}

func Goal(w io.Writer, g *models.Goal) {
	fmt.Fprintf(w, "Type: %s\n", g.Type)
	fmt.Fprintf(w, "Target: %.2f\n", g.Target)
	fmt.Fprintf(w, "Deadline: %s\n", g.Deadline)
	fmt.Fprintf(w, "Progress: %.2f%%\n", g.Progress)
}

func Workout(w io.Writer, wo *models.Workout) {
	fmt.Fprintf(w, "Type: %s\n", wo.Type)
	fmt.Fprintf(w, "Duration: %d minutes\n", wo.Duration)
	fmt.Fprintf(w, "Intensity: %.2f\n", wo.Intensity)
}

func Nutrition(w io.Writer, n *models.Nutrition) {
	fmt.Fprintf(w, "Food: %s\n", n.Food)
	fmt.Fprintf(w, "Calories: %.2f\n", n.Calories)
	fmt.Fprintf(w, "Protein: %.2f\n", n.Protein)
	fmt.Fprintf(w, "Carbs: %.2f\n", n.Carbs)
	fmt.Fprintf(w, "Fat: %.2f\n", n.Fat)
}

func SocialPost(w io.Writer, p *models.SocialPost) {
	fmt.Fprintf(w, "Username: %s\n", p.Username)
	fmt.Fprintf(w, "Content: %s\n", p.Content)
}

func Challenge(w io.Writer, c *models.Challenge) {
	active := "no"
	if c.IsActive {
		active = "yes"
	}
	fmt.Fprintf(w, "Title: %s\n", c.Title)
	fmt.Fprintf(w, "Description: %s\n", c.Description)
	fmt.Fprintf(w, "Deadline: %s\n", c.Deadline)
	fmt.Fprintf(w, "Active: %s\n", active)
	fmt.Fprintf(w, "Participants: %d\n", c.ParticipantCount)
}

func Recommendation(w io.Writer, r *models.Recommendation) {
	fmt.Fprintf(w, "Workout Recommendation: %s\n", r.Workout)
	fmt.Fprintf(w, "Nutrition Recommendation: %s\n", r.Nutrition)
}

var diagnostics = map[apperrors.Code]string{
	apperrors.CodeUserExists:             "User already exists.",
	apperrors.CodeFriendLimitReached:     "Friend limit reached.",
	apperrors.CodeFriendNotFound:         "Friend not found.",
	apperrors.CodeGoalProgressOutOfRange: "Invalid progress value.",
	apperrors.CodeChallengeInactive:      "Challenge is not active.",
	apperrors.CodeChallengeFull:          "Challenge is full.",
	apperrors.CodeFieldTooLong:           "Field too long.",
	apperrors.CodeResourceExhausted:      "Memory allocation failed.",
}

// Diagnostic writes the user-facing line for a failed operation. Errors
// without a known code are written verbatim.
func Diagnostic(w io.Writer, err error) {
	if msg, ok := diagnostics[apperrors.GetCode(err)]; ok {
		fmt.Fprintln(w, msg)
		return
	}
	fmt.Fprintln(w, err)
}
