package progress

import (
	"time"

	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/completion"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/goal"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/utils"
)

// TodayGoal is a goal due today together with its completion state.
type TodayGoal struct {
	goal.Goal
	Done bool `json:"done"`
}

// TodayOverview summarizes one day: which goals are scheduled, how many
// are done and the resulting percentage.
type TodayOverview struct {
	Date           string      `json:"date"`
	ScheduledGoals []TodayGoal `json:"scheduledGoals"`
	CompletedCount int         `json:"completedCount"`
	CompletionRate float64     `json:"completionRate"`
}

// BuildTodayOverview filters goals to those due on now's weekday and
// marks each one done when any completion for it exists on that date.
// Unlike CompletionRate, the percentage here is measured against the
// user's actual scheduled goals.
func BuildTodayOverview(goals []goal.Goal, completions []completion.GoalCompletion, now time.Time) TodayOverview {
	today := utils.DayKey(now)

	completed := make(map[string]bool, len(completions))
	for _, c := range completions {
		if c.Date == today {
			completed[c.GoalID] = true
		}
	}

	scheduled := make([]TodayGoal, 0, len(goals))
	done := 0
	for _, g := range goals {
		if !g.IsActiveOn(now) {
			continue
		}
		tg := TodayGoal{Goal: g, Done: completed[g.ID]}
		if tg.Done {
			done++
		}
		scheduled = append(scheduled, tg)
	}

	rate := 0.0
	if len(scheduled) > 0 {
		rate = float64(done) / float64(len(scheduled)) * 100
	}

	return TodayOverview{
		Date:           today,
		ScheduledGoals: scheduled,
		CompletedCount: done,
		CompletionRate: rate,
	}
}
