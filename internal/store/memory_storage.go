package store

import (
	"fmt"
	"sync"

	apperrors "fitness-tracker/internal/errors"
	"fitness-tracker/internal/models"
)

const DefaultMaxRecords = 1024

// MemoryStorage owns every record created during a run until Release.
type MemoryStorage struct {
	mu              sync.RWMutex
	maxRecords      int
	count           int
	users           map[string]*models.User
	goals           []*models.Goal
	workouts        []*models.Workout
	nutrition       []*models.Nutrition
	posts           map[string][]*models.SocialPost // username -> posts
	challenges      []*models.Challenge
	recommendations map[string]*models.Recommendation // username -> latest
}

func NewMemoryStorage(maxRecords int) *MemoryStorage {
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecords
	}
	s := &MemoryStorage{maxRecords: maxRecords}
	s.reset()
	return s
}

func (s *MemoryStorage) reset() {
	s.count = 0
	s.users = make(map[string]*models.User)
	s.goals = nil
	s.workouts = nil
	s.nutrition = nil
	s.posts = make(map[string][]*models.SocialPost)
	s.challenges = nil
	s.recommendations = make(map[string]*models.Recommendation)
}

// reserve claims a slot for a new record. Callers hold s.mu.
func (s *MemoryStorage) reserve(kind string) error {
	if s.count >= s.maxRecords {
		return apperrors.WithMetadata(
			apperrors.CodeResourceExhausted,
			fmt.Sprintf("cannot store %s: record limit %d reached", kind, s.maxRecords),
			map[string]string{"kind": kind},
		)
	}
	s.count++
	return nil
}

// User methods. Usernames are unique; saving the same user again is a no-op.
func (s *MemoryStorage) SaveUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, exists := s.users[user.Username]; exists {
		if existing == user {
			return nil
		}
		return apperrors.WithMetadata(
			apperrors.CodeUserExists,
			fmt.Sprintf("user %s already exists", user.Username),
			map[string]string{"user": user.Username},
		)
	}
	if err := s.reserve("user"); err != nil {
		return err
	}
	s.users[user.Username] = user
	return nil
}

func (s *MemoryStorage) GetUser(username string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[username]
	return user, exists
}

// Goal methods
func (s *MemoryStorage) SaveGoal(goal *models.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reserve("goal"); err != nil {
		return err
	}
	s.goals = append(s.goals, goal)
	return nil
}

func (s *MemoryStorage) Goals() []*models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*models.Goal(nil), s.goals...)
}

// Workout and nutrition methods
func (s *MemoryStorage) SaveWorkout(workout *models.Workout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reserve("workout"); err != nil {
		return err
	}
	s.workouts = append(s.workouts, workout)
	return nil
}

func (s *MemoryStorage) Workouts() []*models.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*models.Workout(nil), s.workouts...)
}

func (s *MemoryStorage) SaveNutrition(entry *models.Nutrition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reserve("nutrition"); err != nil {
		return err
	}
	s.nutrition = append(s.nutrition, entry)
	return nil
}

// Social methods
func (s *MemoryStorage) SavePost(post *models.SocialPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reserve("post"); err != nil {
		return err
	}
	s.posts[post.Username] = append(s.posts[post.Username], post)
	return nil
}

func (s *MemoryStorage) GetUserPosts(username string) []*models.SocialPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts, exists := s.posts[username]
	if !exists {
		return []*models.SocialPost{}
	}
	return append([]*models.SocialPost(nil), posts...)
}

// Challenge methods
func (s *MemoryStorage) SaveChallenge(challenge *models.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reserve("challenge"); err != nil {
		return err
	}
	s.challenges = append(s.challenges, challenge)
	return nil
}

func (s *MemoryStorage) Challenges() []*models.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*models.Challenge(nil), s.challenges...)
}

// Recommendation methods. Only the latest recommendation per user is kept.
func (s *MemoryStorage) SaveRecommendation(username string, rec *models.Recommendation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.recommendations[username]; !exists {
		if err := s.reserve("recommendation"); err != nil {
			return err
		}
	}
	s.recommendations[username] = rec
	return nil
}

func (s *MemoryStorage) GetRecommendation(username string) (*models.Recommendation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.recommendations[username]
	return rec, exists
}

// Len reports the number of records currently held.
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.count
}

// Release drops every record. The storage can be reused afterwards.
func (s *MemoryStorage) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
}
