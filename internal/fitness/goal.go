package fitness

import (
	"fmt"
	"strconv"

	apperrors "fitness-tracker/internal/errors"
	"fitness-tracker/internal/models"
)

func CreateGoal(goalType string, target float64, deadline string) (*models.Goal, error) {
	err := checkFields(
		textField{"goal_type", goalType, MaxGoalTypeLen},
		textField{"deadline", deadline, MaxDeadlineLen},
	)
	if err != nil {
		return nil, err
	}
	return &models.Goal{
		Type:     goalType,
		Target:   target,
		Deadline: deadline,
	}, nil
}

// UpdateGoalProgress sets the goal's progress percentage. Values outside
// [0, 100] are rejected and the goal is left as it was.
func UpdateGoalProgress(goal *models.Goal, progress float64) error {
	if !(progress >= 0 && progress <= 100) {
		return apperrors.WithMetadata(
			apperrors.CodeGoalProgressOutOfRange,
			fmt.Sprintf("goal progress %v out of range [0, 100]", progress),
			map[string]string{"progress": strconv.FormatFloat(progress, 'f', -1, 64)},
		)
	}
	goal.Progress = progress
	return nil
}
