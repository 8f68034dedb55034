package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/completion"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/prompt"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/utils"
)

// Fixed reference clock: 2025-03-15 is a Saturday.
var now = time.Date(2025, 3, 15, 22, 0, 0, 0, time.UTC)

func completionOn(date string, completedAt time.Time) completion.GoalCompletion {
	return completion.GoalCompletion{
		ID:          "c-" + date,
		GoalID:      "g1",
		UserID:      "u1",
		Date:        date,
		CompletedAt: completedAt,
	}
}

func responseOn(daysAgo int, answer prompt.Response) prompt.DailyPromptResponse {
	d := now.AddDate(0, 0, -daysAgo)
	return prompt.DailyPromptResponse{
		ID:        "p" + utils.DayKey(d),
		UserID:    "u1",
		Date:      utils.DayKey(d),
		Response:  answer,
		CreatedAt: d,
	}
}

func TestCompletionRate_Empty(t *testing.T) {
	assert.Zero(t, CompletionRate(nil, 7))
	assert.Zero(t, CompletionRate([]completion.GoalCompletion{}, 30))
}

func TestCompletionRate_HitsCeiling(t *testing.T) {
	// 6 completions over 2 distinct dates: 3/day average is exactly the
	// target, so the rate caps at 100.
	completions := []completion.GoalCompletion{
		completionOn("2025-03-14", now),
		completionOn("2025-03-14", now),
		completionOn("2025-03-14", now),
		completionOn("2025-03-15", now),
		completionOn("2025-03-15", now),
		completionOn("2025-03-15", now),
	}
	assert.InDelta(t, 100, CompletionRate(completions, 7), 0.001)
}

func TestCompletionRate_SingleCompletion(t *testing.T) {
	completions := []completion.GoalCompletion{
		completionOn("2025-03-15", now),
	}
	assert.InDelta(t, 33.333, CompletionRate(completions, 7), 0.01)
}

func TestCompletionRate_DuplicatesShareABucket(t *testing.T) {
	// Two records on one date still count individually: 2 per active day.
	completions := []completion.GoalCompletion{
		completionOn("2025-03-15", now),
		completionOn("2025-03-15", now),
	}
	assert.InDelta(t, 66.666, CompletionRate(completions, 7), 0.01)
}

func TestCompletionRate_Idempotent(t *testing.T) {
	completions := []completion.GoalCompletion{
		completionOn("2025-03-13", now),
		completionOn("2025-03-14", now),
	}
	assert.Equal(t, CompletionRate(completions, 7), CompletionRate(completions, 7))
}

func TestStreaks_Empty(t *testing.T) {
	current, longest := Streaks(nil, now)
	assert.Zero(t, current)
	assert.Zero(t, longest)
}

func TestStreaks_ThreeDayRun(t *testing.T) {
	responses := []prompt.DailyPromptResponse{
		responseOn(0, prompt.ResponseYes),
		responseOn(1, prompt.ResponseYes),
		responseOn(2, prompt.ResponsePartial),
	}

	current, longest := Streaks(responses, now)
	assert.Equal(t, 3, current)
	assert.GreaterOrEqual(t, longest, 3)
}

func TestStreaks_NoTodayBreaksImmediately(t *testing.T) {
	responses := []prompt.DailyPromptResponse{
		responseOn(0, prompt.ResponseNo),
		responseOn(1, prompt.ResponseYes),
	}

	// The "no" is filtered out, so the most recent qualifying entry is
	// yesterday's — it sits at index 0 where today is expected, so the
	// current streak never starts.
	current, _ := Streaks(responses, now)
	assert.Zero(t, current)
}

func TestStreaks_GapKeepsIndexAlignment(t *testing.T) {
	// Qualifying days: today, yesterday, then a two-day gap, then two
	// older days. After the gap, entries are still compared against
	// now - i by list position, so the older block never re-aligns and
	// the longest streak stays the leading run of 2.
	responses := []prompt.DailyPromptResponse{
		responseOn(0, prompt.ResponseYes),
		responseOn(1, prompt.ResponseYes),
		responseOn(4, prompt.ResponseYes),
		responseOn(5, prompt.ResponseYes),
	}

	current, longest := Streaks(responses, now)
	assert.Equal(t, 2, current)
	assert.Equal(t, 2, longest)
}

func TestStreaks_OrderInsensitive(t *testing.T) {
	shuffled := []prompt.DailyPromptResponse{
		responseOn(2, prompt.ResponseYes),
		responseOn(0, prompt.ResponseYes),
		responseOn(1, prompt.ResponseYes),
	}

	current, longest := Streaks(shuffled, now)
	assert.Equal(t, 3, current)
	assert.Equal(t, 3, longest)
}

func TestMostConsistentDay_Empty(t *testing.T) {
	assert.Equal(t, "Monday", MostConsistentDay(nil))
}

func TestMostConsistentDay_CountsByCompletedAt(t *testing.T) {
	tuesday := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	wednesday := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	completions := []completion.GoalCompletion{
		completionOn("2025-03-11", tuesday),
		completionOn("2025-03-12", wednesday),
		completionOn("2025-03-04", tuesday.AddDate(0, 0, -7)),
		completionOn("2025-02-25", tuesday.AddDate(0, 0, -14)),
	}

	assert.Equal(t, "Tuesday", MostConsistentDay(completions))
}

func TestMostConsistentDay_TieGoesToFirstSeen(t *testing.T) {
	friday := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	completions := []completion.GoalCompletion{
		completionOn("2025-03-14", friday),
		completionOn("2025-03-15", saturday),
	}

	assert.Equal(t, "Friday", MostConsistentDay(completions))
}
