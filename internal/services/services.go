package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fitness-tracker/internal/auth"
	"fitness-tracker/internal/cache"
	"fitness-tracker/internal/config"
	apperrors "fitness-tracker/internal/errors"
	"fitness-tracker/internal/fitness"
	"fitness-tracker/internal/models"
	"fitness-tracker/internal/resilience"
	"fitness-tracker/internal/store"
	"fitness-tracker/internal/telemetry"
)

// RecommendationCache is implemented by *cache.Client.
type RecommendationCache interface {
	GetRecommendation(ctx context.Context, username string) (*models.Recommendation, error)
	SetRecommendation(ctx context.Context, username string, rec *models.Recommendation, ttl time.Duration) error
}

// Tracker runs profile operations against a MemoryStorage. Rule violations
// are logged, counted and returned; the records involved stay unchanged.
type Tracker struct {
	rules    fitness.Rules
	storage  *store.MemoryStorage
	sessions *auth.Sessions

	cache    RecommendationCache
	cacheCB  *resilience.CircuitBreaker
	cacheTTL time.Duration
}

func NewTracker(cfg *config.Config, storage *store.MemoryStorage) *Tracker {
	return &Tracker{
		rules: fitness.Rules{
			FriendLimit:       cfg.FriendLimit,
			ChallengeCapacity: cfg.ChallengeCapacity,
		},
		storage:  storage,
		sessions: auth.NewSessions(cfg.JWTSecret, cfg.SessionTTL),
		cacheCB:  resilience.NewCircuitBreaker("recommendation-cache", 3, 10*time.Second),
		cacheTTL: cfg.RecommendationTTL,
	}
}

// WithCache enables recommendation caching.
func (t *Tracker) WithCache(c RecommendationCache) *Tracker {
	t.cache = c
	return t
}

func (t *Tracker) run(operation string, fn func() error, attrs ...any) error {
	err := telemetry.Track(operation, fn)
	if err == nil {
		return nil
	}
	attrs = append(attrs, "operation", operation, "error", err)
	if apperrors.IsRuleViolation(err) {
		slog.Warn("Operation rejected", attrs...)
	} else {
		slog.Error("Operation failed", attrs...)
	}
	return err
}

func (t *Tracker) CreateUser(p fitness.UserParams) (*models.User, error) {
	var user *models.User
	err := t.run("create_user", func() error {
		u, err := fitness.CreateUser(p)
		if err != nil {
			return err
		}
		if err := t.storage.SaveUser(u); err != nil {
			return err
		}
		user = u
		return nil
	}, "user", p.Username)
	return user, err
}

func (t *Tracker) AddFriend(user *models.User, name string) error {
	return t.run("add_friend", func() error {
		return t.rules.AddFriend(user, name)
	}, "user", user.Username, "friend", name)
}

func (t *Tracker) RemoveFriend(user *models.User, name string) error {
	return t.run("remove_friend", func() error {
		return fitness.RemoveFriend(user, name)
	}, "user", user.Username, "friend", name)
}

func (t *Tracker) SetDietaryPreferences(user *models.User, preferences string) error {
	return t.run("set_dietary_preferences", func() error {
		return fitness.SetDietaryPreferences(user, preferences)
	}, "user", user.Username)
}

func (t *Tracker) SetDietaryRestrictions(user *models.User, restrictions string) error {
	return t.run("set_dietary_restrictions", func() error {
		return fitness.SetDietaryRestrictions(user, restrictions)
	}, "user", user.Username)
}

func (t *Tracker) SetDailyCalorieGoal(user *models.User, calories float64) {
	_ = t.run("set_daily_calorie_goal", func() error {
		fitness.SetDailyCalorieGoal(user, calories)
		return nil
	})
}

func (t *Tracker) LogWorkout(user *models.User, workout *models.Workout) {
	_ = t.run("log_workout", func() error {
		fitness.LogWorkout(user, workout)
		return nil
	})
}

func (t *Tracker) CreateGoal(goalType string, target float64, deadline string) (*models.Goal, error) {
	var goal *models.Goal
	err := t.run("create_goal", func() error {
		g, err := fitness.CreateGoal(goalType, target, deadline)
		if err != nil {
			return err
		}
		if err := t.storage.SaveGoal(g); err != nil {
			return err
		}
		goal = g
		return nil
	})
	return goal, err
}

func (t *Tracker) UpdateGoalProgress(goal *models.Goal, progress float64) error {
	return t.run("update_goal_progress", func() error {
		return fitness.UpdateGoalProgress(goal, progress)
	}, "goal", goal.Type, "progress", progress)
}

func (t *Tracker) CreateWorkout(workoutType string, duration int, intensity float64) (*models.Workout, error) {
	var workout *models.Workout
	err := t.run("create_workout", func() error {
		w, err := fitness.CreateWorkout(workoutType, duration, intensity)
		if err != nil {
			return err
		}
		if err := t.storage.SaveWorkout(w); err != nil {
			return err
		}
		workout = w
		return nil
	})
	return workout, err
}

func (t *Tracker) CreateNutrition(food string, calories, protein, carbs, fat float64) (*models.Nutrition, error) {
	var entry *models.Nutrition
	err := t.run("create_nutrition", func() error {
		n, err := fitness.CreateNutrition(food, calories, protein, carbs, fat)
		if err != nil {
			return err
		}
		if err := t.storage.SaveNutrition(n); err != nil {
			return err
		}
		entry = n
		return nil
	})
	return entry, err
}

func (t *Tracker) CreateSocialPost(username, content string) (*models.SocialPost, error) {
	var post *models.SocialPost
	err := t.run("create_social_post", func() error {
		p, err := fitness.CreateSocialPost(username, content)
		if err != nil {
			return err
		}
		if err := t.storage.SavePost(p); err != nil {
			return err
		}
		post = p
		return nil
	}, "user", username)
	return post, err
}

func (t *Tracker) CreateChallenge(title, description, deadline string) (*models.Challenge, error) {
	var challenge *models.Challenge
	err := t.run("create_challenge", func() error {
		c, err := fitness.CreateChallenge(title, description, deadline)
		if err != nil {
			return err
		}
		if err := t.storage.SaveChallenge(c); err != nil {
			return err
		}
		challenge = c
		return nil
	}, "challenge", title)
	return challenge, err
}

func (t *Tracker) JoinChallenge(user *models.User, challenge *models.Challenge) error {
	return t.run("join_challenge", func() error {
		return t.rules.JoinChallenge(user, challenge)
	}, "user", user.Username, "challenge", challenge.Title)
}

func (t *Tracker) LeaveChallenge(user *models.User, challenge *models.Challenge) error {
	return t.run("leave_challenge", func() error {
		return fitness.LeaveChallenge(user, challenge)
	}, "user", user.Username, "challenge", challenge.Title)
}

func (t *Tracker) DeactivateChallenge(challenge *models.Challenge) {
	_ = t.run("deactivate_challenge", func() error {
		fitness.DeactivateChallenge(challenge)
		return nil
	})
}

// SignIn checks the user's password and returns a session token.
func (t *Tracker) SignIn(user *models.User, password string) (string, error) {
	var token string
	err := t.run("sign_in", func() error {
		var err error
		token, err = t.sessions.SignIn(user, password)
		return err
	}, "user", user.Username)
	return token, err
}

// Authenticate resolves a session token to a stored user.
func (t *Tracker) Authenticate(token string) (*models.User, error) {
	username, err := t.sessions.Validate(token)
	if err != nil {
		return nil, err
	}
	user, ok := t.storage.GetUser(username)
	if !ok {
		return nil, apperrors.New(apperrors.CodeInvalidToken, fmt.Sprintf("unknown user %s", username))
	}
	return user, nil
}

// Recommend returns recommendations for user, consulting the cache when one
// is configured. Cache failures fall back to fresh generation.
func (t *Tracker) Recommend(ctx context.Context, user *models.User) (*models.Recommendation, error) {
	var rec *models.Recommendation
	err := t.run("generate_recommendations", func() error {
		rec = t.cachedRecommendation(ctx, user.Username)
		if rec == nil {
			rec = fitness.GenerateRecommendations(user)
			t.storeRecommendation(ctx, user.Username, rec)
		}
		return t.storage.SaveRecommendation(user.Username, rec)
	}, "user", user.Username)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (t *Tracker) cachedRecommendation(ctx context.Context, username string) *models.Recommendation {
	if t.cache == nil {
		return nil
	}

	rec, err := resilience.Execute(t.cacheCB, func() (*models.Recommendation, error) {
		rec, err := t.cache.GetRecommendation(ctx, username)
		if errors.Is(err, cache.ErrMiss) {
			return nil, nil
		}
		return rec, err
	})
	switch {
	case errors.Is(err, resilience.ErrCircuitOpen):
		telemetry.CacheLookup(telemetry.CacheUnavailable)
		return nil
	case err != nil:
		telemetry.CacheLookup(telemetry.CacheError)
		slog.Warn("Recommendation cache read failed", "user", username, "error", err)
		return nil
	case rec == nil:
		telemetry.CacheLookup(telemetry.CacheMiss)
		return nil
	}
	telemetry.CacheLookup(telemetry.CacheHit)
	slog.Debug("Recommendation cache hit", "user", username)
	return rec
}

func (t *Tracker) storeRecommendation(ctx context.Context, username string, rec *models.Recommendation) {
	if t.cache == nil {
		return
	}
	_, err := resilience.Execute(t.cacheCB, func() (struct{}, error) {
		return struct{}{}, t.cache.SetRecommendation(ctx, username, rec, t.cacheTTL)
	})
	if err != nil && !errors.Is(err, resilience.ErrCircuitOpen) {
		slog.Warn("Recommendation cache write failed", "user", username, "error", err)
	}
}

// Release drops every record created through t.
func (t *Tracker) Release() {
	t.storage.Release()
}
