package cache

import (
	"context"
	"testing"
	"time"

	"fitness-tracker/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewClient(context.Background(), mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestRecommendationRoundTrip(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	_, err := c.GetRecommendation(ctx, "JohnDoe")
	assert.ErrorIs(t, err, ErrMiss)

	rec := &models.Recommendation{Workout: "Run", Nutrition: "Eat"}
	require.NoError(t, c.SetRecommendation(ctx, "JohnDoe", rec, time.Minute))
	assert.True(t, mr.Exists("recommendation:JohnDoe"))

	got, err := c.GetRecommendation(ctx, "JohnDoe")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	mr.FastForward(2 * time.Minute)
	_, err = c.GetRecommendation(ctx, "JohnDoe")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestGetRecommendationCorruptValue(t *testing.T) {
	c, mr := newTestClient(t)
	require.NoError(t, mr.Set("recommendation:JohnDoe", "{not json"))

	_, err := c.GetRecommendation(context.Background(), "JohnDoe")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)
}

func TestNewClientUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewClient(context.Background(), addr)
	assert.Error(t, err)
}
