package fitness

import "fitness-tracker/internal/models"

// CreateChallenge returns an active challenge with no participants.
func CreateChallenge(title, description, deadline string) (*models.Challenge, error) {
	err := checkFields(
		textField{"title", title, MaxChallengeTitleLen},
		textField{"description", description, MaxChallengeDescLen},
		textField{"deadline", deadline, MaxDeadlineLen},
	)
	if err != nil {
		return nil, err
	}
	return &models.Challenge{
		Title:       title,
		Description: description,
		Deadline:    deadline,
		IsActive:    true,
	}, nil
}

// JoinChallenge increments the participant counter. The user is not
// recorded as a member.
func (r Rules) JoinChallenge(_ *models.User, challenge *models.Challenge) error {
	if !challenge.IsActive {
		return ErrChallengeInactive
	}
	if challenge.ParticipantCount >= r.ChallengeCapacity {
		return ErrChallengeFull
	}
	challenge.ParticipantCount++
	return nil
}

// LeaveChallenge decrements the participant counter of an active challenge.
// There is no floor: leaving more often than joining drives the count negative.
func LeaveChallenge(_ *models.User, challenge *models.Challenge) error {
	if !challenge.IsActive {
		return ErrChallengeInactive
	}
	challenge.ParticipantCount--
	return nil
}

// DeactivateChallenge closes a challenge to further joins and leaves.
func DeactivateChallenge(challenge *models.Challenge) {
	challenge.IsActive = false
}
