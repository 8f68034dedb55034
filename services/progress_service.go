package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/completion"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/progress"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/prompt"
)

// CompletionSource and ResponseSource are the two store reads the
// aggregator needs. GoalService and PromptService satisfy them.
type CompletionSource interface {
	ListCompletionsSince(ctx context.Context, userID string, since time.Time) ([]completion.GoalCompletion, error)
}

type ResponseSource interface {
	ListResponses(ctx context.Context, userID string) ([]prompt.DailyPromptResponse, error)
}

type ProgressService struct {
	completions CompletionSource
	responses   ResponseSource
}

func NewProgressService(completions CompletionSource, responses ResponseSource) *ProgressService {
	return &ProgressService{
		completions: completions,
		responses:   responses,
	}
}

// BuildSummary assembles the full progress report for one user. The two
// store fetches are independent and run concurrently; any failure aborts
// the whole summary — no retries, no partial result.
func (s *ProgressService) BuildSummary(ctx context.Context, userID string, now time.Time) (*progress.Summary, error) {
	var (
		monthly   []completion.GoalCompletion
		responses []prompt.DailyPromptResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		monthly, err = s.completions.ListCompletionsSince(gctx, userID, now.AddDate(0, 0, -30))
		if err != nil {
			return fmt.Errorf("failed to fetch completions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		responses, err = s.responses.ListResponses(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to fetch check-ins: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	weekAgo := now.AddDate(0, 0, -7)
	weekly := make([]completion.GoalCompletion, 0, len(monthly))
	for _, c := range monthly {
		if !c.CompletedAt.Before(weekAgo) {
			weekly = append(weekly, c)
		}
	}

	current, longest := progress.Streaks(responses, now)

	recent := responses
	if len(recent) > 7 {
		recent = recent[:7]
	}

	return &progress.Summary{
		WeeklyCompletionRate:  progress.CompletionRate(weekly, 7),
		MonthlyCompletionRate: progress.CompletionRate(monthly, 30),
		CurrentStreak:         current,
		LongestStreak:         longest,
		TotalGoalsCompleted:   len(monthly),
		MostConsistentDay:     progress.MostConsistentDay(monthly),
		RecentResponses:       recent,
	}, nil
}
