package completion

import (
	"fmt"
	"time"

	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/utils"
)

// GoalCompletion records that a goal was done on a calendar date. Date is
// the logical day key; CompletedAt is when the record was written. Nothing
// prevents duplicates for the same (goalId, date) pair, so readers have to
// tolerate them.
type GoalCompletion struct {
	ID          string    `firestore:"id" json:"id"`
	GoalID      string    `firestore:"goalId" json:"goalId"`
	UserID      string    `firestore:"userId" json:"userId"`
	Date        string    `firestore:"date" json:"date"`
	CompletedAt time.Time `firestore:"completedAt" json:"completedAt"`
}

func (c *GoalCompletion) CheckValid() error {
	if c.GoalID == "" || c.UserID == "" {
		return fmt.Errorf("completion %s is missing goalId or userId", c.ID)
	}
	if !utils.ValidDate(c.Date) {
		return fmt.Errorf("completion %s has malformed date %q", c.ID, c.Date)
	}
	return nil
}
