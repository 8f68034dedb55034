package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/completion"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/goal"
)

func TestBuildTodayOverview(t *testing.T) {
	// 2025-03-10 is a Monday.
	mondayMorning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	goals := []goal.Goal{
		{ID: "g1", UserID: "u1", Title: "Read", GoalType: goal.TypeDaily},
		{ID: "g2", UserID: "u1", Title: "Gym", GoalType: goal.TypeSpecificDays, SpecificDays: []string{"monday"}},
		{ID: "g3", UserID: "u1", Title: "Swim", GoalType: goal.TypeSpecificDays, SpecificDays: []string{"sunday"}},
	}
	completions := []completion.GoalCompletion{
		{ID: "c1", GoalID: "g1", UserID: "u1", Date: "2025-03-10", CompletedAt: mondayMorning},
		// A stale record from another day must not count.
		{ID: "c2", GoalID: "g2", UserID: "u1", Date: "2025-03-03", CompletedAt: mondayMorning.AddDate(0, 0, -7)},
	}

	overview := BuildTodayOverview(goals, completions, mondayMorning)

	assert.Equal(t, "2025-03-10", overview.Date)
	assert.Len(t, overview.ScheduledGoals, 2)
	assert.Equal(t, 1, overview.CompletedCount)
	assert.InDelta(t, 50, overview.CompletionRate, 0.001)

	assert.Equal(t, "g1", overview.ScheduledGoals[0].ID)
	assert.True(t, overview.ScheduledGoals[0].Done)
	assert.Equal(t, "g2", overview.ScheduledGoals[1].ID)
	assert.False(t, overview.ScheduledGoals[1].Done)
}

func TestBuildTodayOverview_NoGoals(t *testing.T) {
	overview := BuildTodayOverview(nil, nil, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	assert.Empty(t, overview.ScheduledGoals)
	assert.Zero(t, overview.CompletedCount)
	assert.Zero(t, overview.CompletionRate)
}
