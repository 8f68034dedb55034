package goal

import (
	"fmt"
	"time"

	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/utils"
)

type GoalType string

const (
	TypeDaily        GoalType = "daily"
	TypeSpecificDays GoalType = "specific-days"
)

var weekdayNames = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

type Goal struct {
	ID           string    `firestore:"id" json:"id"`
	UserID       string    `firestore:"userId" json:"userId"`
	Title        string    `firestore:"title" json:"title"`
	Description  string    `firestore:"description" json:"description"`
	GoalType     GoalType  `firestore:"goalType" json:"goalType"`
	SpecificDays []string  `firestore:"specificDays,omitempty" json:"specificDays,omitempty"`
	Category     string    `firestore:"category,omitempty" json:"category,omitempty"`
	IsActive     bool      `firestore:"isActive" json:"isActive"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// IsActiveOn reports whether the goal is due on the given calendar day.
// Daily goals are due every day; specific-days goals only on the listed
// weekdays. A specific-days goal with no listed days is never due.
func (g *Goal) IsActiveOn(t time.Time) bool {
	if g.GoalType == TypeDaily {
		return true
	}
	day := utils.WeekdayName(t)
	for _, d := range g.SpecificDays {
		if d == day {
			return true
		}
	}
	return false
}

// CheckValid rejects documents that are missing required fields or carry
// an out-of-range goal type. Called at the store boundary after decoding.
func (g *Goal) CheckValid() error {
	if g.UserID == "" {
		return fmt.Errorf("goal %s is missing userId", g.ID)
	}
	if g.Title == "" {
		return fmt.Errorf("goal %s is missing title", g.ID)
	}
	switch g.GoalType {
	case TypeDaily, TypeSpecificDays:
	default:
		return fmt.Errorf("goal %s has unknown goalType %q", g.ID, g.GoalType)
	}
	for _, d := range g.SpecificDays {
		if !weekdayNames[d] {
			return fmt.Errorf("goal %s has unknown weekday %q", g.ID, d)
		}
	}
	return nil
}
