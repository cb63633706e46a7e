package telemetry

import (
	"errors"
	"testing"

	apperrors "fitness-tracker/internal/errors"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	assert.Equal(t, "ok", Result(nil))
	assert.Equal(t, "friend_limit_reached", Result(apperrors.New(apperrors.CodeFriendLimitReached, "x")))
	assert.Equal(t, "error", Result(errors.New("x")))
}

func TestTrackCountsOutcomes(t *testing.T) {
	okCounter := operationsTotal.WithLabelValues("test_track", "ok")
	fullCounter := operationsTotal.WithLabelValues("test_track", "challenge_full")
	okBefore := testutil.ToFloat64(okCounter)
	fullBefore := testutil.ToFloat64(fullCounter)

	assert.NoError(t, Track("test_track", func() error { return nil }))
	err := Track("test_track", func() error {
		return apperrors.New(apperrors.CodeChallengeFull, "challenge is full")
	})
	assert.Error(t, err)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(okCounter))
	assert.Equal(t, fullBefore+1, testutil.ToFloat64(fullCounter))
}

func TestCacheLookup(t *testing.T) {
	before := testutil.ToFloat64(cacheLookupsTotal.WithLabelValues(CacheHit))
	CacheLookup(CacheHit)
	assert.Equal(t, before+1, testutil.ToFloat64(cacheLookupsTotal.WithLabelValues(CacheHit)))
}
