package prompt

import (
	"fmt"
	"time"

	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/utils"
)

type Response string

const (
	ResponseYes     Response = "yes"
	ResponseNo      Response = "no"
	ResponsePartial Response = "partial"
)

func (r Response) Valid() bool {
	return r == ResponseYes || r == ResponseNo || r == ResponsePartial
}

// CountsTowardStreak reports whether the answer keeps a streak alive.
// Only "no" (or a missing day) breaks it.
func (r Response) CountsTowardStreak() bool {
	return r == ResponseYes || r == ResponsePartial
}

// DailyPromptResponse is a user's end-of-day self-assessment. One per
// (userId, date) is intended but not enforced by the store. Immutable
// once written.
type DailyPromptResponse struct {
	ID        string    `firestore:"id" json:"id"`
	UserID    string    `firestore:"userId" json:"userId"`
	Date      string    `firestore:"date" json:"date"`
	Response  Response  `firestore:"response" json:"response"`
	Goals     []string  `firestore:"goals" json:"goals"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

func (p *DailyPromptResponse) CheckValid() error {
	if p.UserID == "" {
		return fmt.Errorf("check-in %s is missing userId", p.ID)
	}
	if !utils.ValidDate(p.Date) {
		return fmt.Errorf("check-in %s has malformed date %q", p.ID, p.Date)
	}
	if !p.Response.Valid() {
		return fmt.Errorf("check-in %s has unknown response %q", p.ID, p.Response)
	}
	return nil
}

// promptHour is the local hour from which the end-of-day check-in is shown.
const promptHour = 21

// ShouldShow decides whether the check-in prompt is due. lastShownDate is
// the device-local YYYY-MM-DD the prompt was last displayed; the device
// keeps that flag, the server only applies the rule. The clock comes in as
// an argument so the decision stays testable.
func ShouldShow(now time.Time, lastShownDate string, activeGoals int) bool {
	if activeGoals == 0 {
		return false
	}
	if now.Hour() < promptHour {
		return false
	}
	return lastShownDate != utils.DayKey(now)
}
