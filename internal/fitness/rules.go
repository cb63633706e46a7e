package fitness

import "fitness-tracker/internal/models"

const (
	DefaultFriendLimit       = 10
	DefaultChallengeCapacity = 10
)

// Rules carries the capacity limits enforced by the bounded operations.
type Rules struct {
	FriendLimit       int
	ChallengeCapacity int
}

func DefaultRules() Rules {
	return Rules{
		FriendLimit:       DefaultFriendLimit,
		ChallengeCapacity: DefaultChallengeCapacity,
	}
}

// AddFriend applies DefaultRules.
func AddFriend(user *models.User, name string) error {
	return DefaultRules().AddFriend(user, name)
}

// JoinChallenge applies DefaultRules.
func JoinChallenge(user *models.User, challenge *models.Challenge) error {
	return DefaultRules().JoinChallenge(user, challenge)
}
