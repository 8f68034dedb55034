package progress

import (
	"sort"
	"time"

	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/completion"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/prompt"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/utils"
)

// dailyTarget is the assumed number of completions per day that counts as
// a "perfect" day. It is a fixed product heuristic, not derived from the
// user's actual goal count.
const dailyTarget = 3.0

// fallbackWeekday is returned when there is no completion data at all.
const fallbackWeekday = "Monday"

// Summary is the derived progress report for one user. It is computed on
// demand and never persisted.
type Summary struct {
	WeeklyCompletionRate  float64                      `json:"weeklyCompletionRate"`
	MonthlyCompletionRate float64                      `json:"monthlyCompletionRate"`
	CurrentStreak         int                          `json:"currentStreak"`
	LongestStreak         int                          `json:"longestStreak"`
	TotalGoalsCompleted   int                          `json:"totalGoalsCompleted"`
	MostConsistentDay     string                       `json:"mostConsistentDay"`
	RecentResponses       []prompt.DailyPromptResponse `json:"recentResponses"`
}

// CompletionRate scores a window of completions as a percentage in
// [0, 100]. Completions are bucketed by calendar date; the average number
// of completions per day with any activity is normalized against
// dailyTarget and clamped at 100. Days without any completion do not
// enter the average. windowDays labels the window the caller already
// filtered to; it does not enter the formula.
func CompletionRate(completions []completion.GoalCompletion, windowDays int) float64 {
	if len(completions) == 0 {
		return 0
	}

	byDate := make(map[string]int)
	for _, c := range completions {
		byDate[c.Date]++
	}

	activeDays := len(byDate)
	if activeDays < 1 {
		activeDays = 1
	}
	avgPerDay := float64(len(completions)) / float64(activeDays)

	rate := (avgPerDay / dailyTarget) * 100
	if rate > 100 {
		return 100
	}
	return rate
}

// Streaks computes the current and longest run of consecutive qualifying
// check-ins ending at now. Only "yes" and "partial" answers qualify; a
// "no" or a missing day breaks the run.
//
// The walk compares the i-th most recent qualifying check-in against
// now - i days. After a gap the index keeps advancing by list position,
// so later entries are still measured against now - i rather than
// re-anchored to the last match. That matches the shipped behavior and
// is kept deliberately.
func Streaks(responses []prompt.DailyPromptResponse, now time.Time) (current, longest int) {
	qualifying := make([]prompt.DailyPromptResponse, 0, len(responses))
	for _, r := range responses {
		if r.Response.CountsTowardStreak() {
			qualifying = append(qualifying, r)
		}
	}

	// YYYY-MM-DD sorts lexicographically in date order.
	sort.SliceStable(qualifying, func(i, j int) bool {
		return qualifying[i].Date > qualifying[j].Date
	})

	run := 0
	for i, r := range qualifying {
		expected := utils.DayKey(now.AddDate(0, 0, -i))
		if r.Date == expected {
			run++
			// run == i+1 means the run is still anchored at today.
			if run == i+1 {
				current = run
			}
		} else {
			if run > longest {
				longest = run
			}
			run = 0
		}
	}
	if run > longest {
		longest = run
	}
	return current, longest
}

// MostConsistentDay returns the English weekday name accumulating the
// most completions, judged by when each completion was recorded
// (CompletedAt), not by its logical date. Ties go to the weekday that
// reached the top count first in input order. Empty input falls back to
// "Monday".
func MostConsistentDay(completions []completion.GoalCompletion) string {
	if len(completions) == 0 {
		return fallbackWeekday
	}

	counts := make(map[string]int)
	best := ""
	for _, c := range completions {
		day := c.CompletedAt.Weekday().String()
		counts[day]++
		if best == "" || counts[day] > counts[best] {
			best = day
		}
	}
	return best
}
