package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitness-tracker/internal/cache"
	"fitness-tracker/internal/config"
	"fitness-tracker/internal/display"
	apperrors "fitness-tracker/internal/errors"
	"fitness-tracker/internal/fitness"
	"fitness-tracker/internal/resilience"
	"fitness-tracker/internal/services"
	"fitness-tracker/internal/store"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracker := services.NewTracker(cfg, store.NewMemoryStorage(cfg.MaxRecords))

	var client *cache.Client
	if cfg.RedisAddr != "" {
		err := resilience.Retry(ctx, 3, 500*time.Millisecond, func(ctx context.Context) error {
			var err error
			client, err = cache.NewClient(ctx, cfg.RedisAddr)
			return err
		})
		if err != nil {
			slog.Warn("Recommendation cache disabled", "addr", cfg.RedisAddr, "error", err)
			client = nil
		} else {
			tracker.WithCache(client)
			slog.Info("Connected to Redis", "addr", cfg.RedisAddr)
		}
	}

	runErr := run(ctx, os.Stdout, tracker)

	if cfg.MetricsFile != "" {
		if err := writeMetrics(cfg.MetricsFile); err != nil {
			slog.Warn("Failed to write metrics", "path", cfg.MetricsFile, "error", err)
		}
	}

	// Exitf skips deferred calls, so release everything before deciding the exit code.
	tracker.Release()
	if client != nil {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close Redis client", "error", err)
		}
	}
	stop()

	if runErr != nil {
		slog.Error("Demo aborted", "error", runErr)
		if apperrors.GetCode(runErr) == apperrors.CodeResourceExhausted {
			display.Diagnostic(os.Stderr, runErr)
		}
		config.Exitf("fitness-demo: %v", runErr)
	}
}

// writeMetrics dumps the default registry in the Prometheus text format.
func writeMetrics(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}

// run executes the demonstration script, writing its transcript to out.
// Rule violations are reported on out and the script continues; any other
// error aborts it.
func run(ctx context.Context, out io.Writer, tracker *services.Tracker) error {
	report := func(err error) error {
		if err != nil && apperrors.IsRuleViolation(err) {
			display.Diagnostic(out, err)
			return nil
		}
		return err
	}

	user, err := tracker.CreateUser(fitness.UserParams{
		Username:            "JohnDoe",
		Email:               "john.doe@example.com",
		Password:            "password123",
		Weight:              70.5,
		Height:              175.0,
		Age:                 30,
		Gender:              "Male",
		FitnessGoal:         "Weight Loss",
		PrivacySettings:     "Private",
		DietaryPreferences:  "Vegetarian",
		DietaryRestrictions: "None",
		DailyCalorieGoal:    2000,
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	fmt.Fprintln(out, "User created:")
	display.User(out, user)

	token, err := tracker.SignIn(user, "password123")
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	if _, err := tracker.Authenticate(token); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}
	slog.Info("Session issued", "user", user.Username)

	goal, err := tracker.CreateGoal("Weight Loss", 65.0, "End of the month")
	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	fmt.Fprintln(out, "\nGoal created:")
	display.Goal(out, goal)

	if err := report(tracker.UpdateGoalProgress(goal, 50.0)); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nGoal progress updated:")
	display.Goal(out, goal)

	workout, err := tracker.CreateWorkout("Cardio", 30, 7.5)
	if err != nil {
		return fmt.Errorf("create workout: %w", err)
	}
	fmt.Fprintln(out, "\nWorkout created:")
	display.Workout(out, workout)

	tracker.LogWorkout(user, workout)
	fmt.Fprintln(out, "\nWorkout logged for user:")
	display.User(out, user)

	if err := report(tracker.SetDietaryPreferences(user, "Low Carb, High Protein")); err != nil {
		return err
	}
	if err := report(tracker.SetDietaryRestrictions(user, "None")); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nDietary preferences and restrictions updated:")
	display.User(out, user)

	tracker.SetDailyCalorieGoal(user, 1800)
	fmt.Fprintln(out, "\nDaily calorie goal updated:")
	display.User(out, user)

	post, err := tracker.CreateSocialPost("JohnDoe", "Just completed a great workout!")
	if err != nil {
		return fmt.Errorf("create social post: %w", err)
	}
	fmt.Fprintln(out, "\nSocial post created:")
	display.SocialPost(out, post)

	for _, name := range []string{"Alice", "Bob"} {
		if err := report(tracker.AddFriend(user, name)); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, "\nFriends added:")
	display.Friends(out, user)

	if err := report(tracker.RemoveFriend(user, "Alice")); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nFriend removed:")
	display.Friends(out, user)

	challenge, err := tracker.CreateChallenge("30-Day Fitness Challenge", "Join us in this exciting fitness journey!", "2024-05-01")
	if err != nil {
		return fmt.Errorf("create challenge: %w", err)
	}
	if err := report(tracker.JoinChallenge(user, challenge)); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nUser joined the challenge:")
	if err := report(tracker.LeaveChallenge(user, challenge)); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nUser left the challenge:")

	rec, err := tracker.Recommend(ctx, user)
	if err != nil {
		return fmt.Errorf("generate recommendations: %w", err)
	}
	fmt.Fprintln(out, "\nPersonalized Recommendations:")
	display.Recommendation(out, rec)

	return nil
}
