package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitness-tracker/internal/cache"
	"fitness-tracker/internal/config"
	apperrors "fitness-tracker/internal/errors"
	"fitness-tracker/internal/fitness"
	"fitness-tracker/internal/models"
	"fitness-tracker/internal/resilience"
	"fitness-tracker/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		FriendLimit:       2,
		ChallengeCapacity: 1,
		MaxRecords:        100,
		RecommendationTTL: time.Minute,
		JWTSecret:         "test-secret",
		SessionTTL:        time.Hour,
	}
}

func newTracker(t *testing.T) (*Tracker, *store.MemoryStorage) {
	t.Helper()
	storage := store.NewMemoryStorage(100)
	return NewTracker(testConfig(), storage), storage
}

func createJohn(t *testing.T, tr *Tracker) *models.User {
	t.Helper()
	user, err := tr.CreateUser(fitness.UserParams{
		Username: "JohnDoe",
		Email:    "john.doe@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return user
}

func TestTrackerAppliesConfiguredLimits(t *testing.T) {
	tr, _ := newTracker(t)
	user := createJohn(t, tr)

	require.NoError(t, tr.AddFriend(user, "Alice"))
	require.NoError(t, tr.AddFriend(user, "Bob"))
	assert.ErrorIs(t, tr.AddFriend(user, "Carol"), fitness.ErrFriendLimitReached)

	challenge, err := tr.CreateChallenge("Plank", "Hold it", "2024-05-01")
	require.NoError(t, err)
	require.NoError(t, tr.JoinChallenge(user, challenge))
	assert.ErrorIs(t, tr.JoinChallenge(user, challenge), fitness.ErrChallengeFull)

	tr.DeactivateChallenge(challenge)
	assert.ErrorIs(t, tr.LeaveChallenge(user, challenge), fitness.ErrChallengeInactive)
	assert.Equal(t, 1, challenge.ParticipantCount)
}

func TestTrackerRegistersRecords(t *testing.T) {
	tr, storage := newTracker(t)
	user := createJohn(t, tr)

	_, err := tr.CreateGoal("Weight Loss", 65, "End of the month")
	require.NoError(t, err)
	_, err = tr.CreateWorkout("Cardio", 30, 7.5)
	require.NoError(t, err)
	_, err = tr.CreateNutrition("Oatmeal", 150, 5, 27, 2.5)
	require.NoError(t, err)
	_, err = tr.CreateSocialPost(user.Username, "Just completed a great workout!")
	require.NoError(t, err)

	got, ok := storage.GetUser("JohnDoe")
	require.True(t, ok)
	assert.Same(t, user, got)
	assert.Len(t, storage.Goals(), 1)
	assert.Len(t, storage.Workouts(), 1)
	assert.Len(t, storage.GetUserPosts("JohnDoe"), 1)
	assert.Equal(t, 5, storage.Len())

	tr.Release()
	assert.Equal(t, 0, storage.Len())
}

func TestTrackerCreateUserDuplicateUsername(t *testing.T) {
	tr, storage := newTracker(t)
	first := createJohn(t, tr)
	token, err := tr.SignIn(first, "password123")
	require.NoError(t, err)

	second, err := tr.CreateUser(fitness.UserParams{Username: "JohnDoe", Password: "other"})
	assert.Nil(t, second)
	assert.Equal(t, apperrors.CodeUserExists, apperrors.GetCode(err))
	assert.Equal(t, 1, storage.Len())

	got, err := tr.Authenticate(token)
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestTrackerResourceExhausted(t *testing.T) {
	storage := store.NewMemoryStorage(1)
	tr := NewTracker(testConfig(), storage)
	createJohn(t, tr)

	goal, err := tr.CreateGoal("Weight Loss", 65, "End of the month")
	assert.Nil(t, goal)
	assert.Equal(t, apperrors.CodeResourceExhausted, apperrors.GetCode(err))
}

func TestTrackerFieldTooLongLeavesStoreEmpty(t *testing.T) {
	tr, storage := newTracker(t)

	_, err := tr.CreateChallenge("30-Day Fitness Challenge That Goes On And On And On", "x", "y")
	assert.ErrorIs(t, err, fitness.ErrFieldTooLong)
	assert.Empty(t, storage.Challenges())
}

func TestTrackerSignInAndAuthenticate(t *testing.T) {
	tr, _ := newTracker(t)
	user := createJohn(t, tr)

	_, err := tr.SignIn(user, "wrong")
	assert.Equal(t, apperrors.CodeInvalidCredentials, apperrors.GetCode(err))

	token, err := tr.SignIn(user, "password123")
	require.NoError(t, err)

	got, err := tr.Authenticate(token)
	require.NoError(t, err)
	assert.Same(t, user, got)

	tr.Release()
	_, err = tr.Authenticate(token)
	assert.Equal(t, apperrors.CodeInvalidToken, apperrors.GetCode(err))
}

func TestRecommendWithoutCache(t *testing.T) {
	tr, storage := newTracker(t)
	user := createJohn(t, tr)

	rec, err := tr.Recommend(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, fitness.WorkoutAdvice, rec.Workout)
	assert.Equal(t, fitness.NutritionAdvice, rec.Nutrition)

	stored, ok := storage.GetRecommendation("JohnDoe")
	require.True(t, ok)
	assert.Equal(t, rec, stored)
}

func TestRecommendUsesRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := cache.NewClient(context.Background(), mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	tr, _ := newTracker(t)
	tr.WithCache(client)
	user := createJohn(t, tr)
	ctx := context.Background()

	first, err := tr.Recommend(ctx, user)
	require.NoError(t, err)
	assert.True(t, mr.Exists("recommendation:JohnDoe"))
	assert.Equal(t, time.Minute, mr.TTL("recommendation:JohnDoe"))

	cached := &models.Recommendation{Workout: "cached workout", Nutrition: "cached nutrition"}
	require.NoError(t, client.SetRecommendation(ctx, "JohnDoe", cached, time.Minute))

	second, err := tr.Recommend(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, cached, second)
	assert.NotEqual(t, first, second)
}

type failingCache struct {
	gets int
}

func (f *failingCache) GetRecommendation(context.Context, string) (*models.Recommendation, error) {
	f.gets++
	return nil, errors.New("connection refused")
}

func (f *failingCache) SetRecommendation(context.Context, string, *models.Recommendation, time.Duration) error {
	return errors.New("connection refused")
}

func TestRecommendFallsBackWhenCacheFails(t *testing.T) {
	tr, _ := newTracker(t)
	fc := &failingCache{}
	tr.WithCache(fc)
	user := createJohn(t, tr)

	for i := 0; i < 5; i++ {
		rec, err := tr.Recommend(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, fitness.WorkoutAdvice, rec.Workout)
	}

	assert.Equal(t, resilience.StateOpen, tr.cacheCB.State())
	assert.Less(t, fc.gets, 5, "open breaker must stop calling the cache")
}
