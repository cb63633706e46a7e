// Package fitness implements the profile operations of the tracker: record
// constructors and the in-place mutations on users, goals and challenges.
//
// Business-rule violations are returned as *apperrors.Error values and never
// leave a record partially updated.
package fitness

import (
	"fmt"
	"strconv"

	apperrors "fitness-tracker/internal/errors"
)

// Maximum text lengths in bytes.
const (
	MaxUsernameLen            = 49
	MaxEmailLen               = 99
	MaxPasswordLen            = 49
	MaxGenderLen              = 9
	MaxFitnessGoalLen         = 49
	MaxPrivacySettingsLen     = 49
	MaxDietaryPreferencesLen  = 99
	MaxDietaryRestrictionsLen = 99
	MaxGoalTypeLen            = 19
	MaxDeadlineLen            = 19
	MaxWorkoutTypeLen         = 19
	MaxFoodLen                = 49
	MaxPostContentLen         = 199
	MaxChallengeTitleLen      = 49
	MaxChallengeDescLen       = 199
	MaxRecommendationLen      = 199
)

var (
	ErrFriendLimitReached = apperrors.New(apperrors.CodeFriendLimitReached, "friend limit reached")
	ErrFriendNotFound     = apperrors.New(apperrors.CodeFriendNotFound, "friend not found")
	ErrProgressOutOfRange = apperrors.New(apperrors.CodeGoalProgressOutOfRange, "goal progress out of range")
	ErrChallengeInactive  = apperrors.New(apperrors.CodeChallengeInactive, "challenge is not active")
	ErrChallengeFull      = apperrors.New(apperrors.CodeChallengeFull, "challenge is full")
	ErrFieldTooLong       = apperrors.New(apperrors.CodeFieldTooLong, "field too long")
)

type textField struct {
	name  string
	value string
	max   int
}

func checkFields(fields ...textField) error {
	for _, f := range fields {
		if len(f.value) > f.max {
			return apperrors.WithMetadata(
				apperrors.CodeFieldTooLong,
				fmt.Sprintf("%s is %d bytes, max %d", f.name, len(f.value), f.max),
				map[string]string{
					"field":  f.name,
					"length": strconv.Itoa(len(f.value)),
					"max":    strconv.Itoa(f.max),
				},
			)
		}
	}
	return nil
}
