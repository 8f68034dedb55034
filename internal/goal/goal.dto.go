package goal

import "fmt"

type CreateGoalRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	GoalType     GoalType `json:"goalType"`
	SpecificDays []string `json:"specificDays,omitempty"`
	Category     string   `json:"category,omitempty"`
}

func (r *CreateGoalRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	switch r.GoalType {
	case TypeDaily:
		if len(r.SpecificDays) > 0 {
			return fmt.Errorf("specificDays is only valid for %q goals", TypeSpecificDays)
		}
	case TypeSpecificDays:
		if len(r.SpecificDays) == 0 {
			return fmt.Errorf("specificDays is required for %q goals", TypeSpecificDays)
		}
	default:
		return fmt.Errorf("goalType must be %q or %q", TypeDaily, TypeSpecificDays)
	}
	for _, d := range r.SpecificDays {
		if !weekdayNames[d] {
			return fmt.Errorf("unknown weekday %q", d)
		}
	}
	return nil
}

// UpdateGoalRequest carries a partial update. Nil fields are left
// untouched. Setting IsActive to false is the soft delete.
type UpdateGoalRequest struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	GoalType     *GoalType `json:"goalType,omitempty"`
	SpecificDays *[]string `json:"specificDays,omitempty"`
	Category     *string   `json:"category,omitempty"`
	IsActive     *bool     `json:"isActive,omitempty"`
}

func (r *UpdateGoalRequest) Validate() error {
	if r.GoalType != nil {
		switch *r.GoalType {
		case TypeDaily, TypeSpecificDays:
		default:
			return fmt.Errorf("goalType must be %q or %q", TypeDaily, TypeSpecificDays)
		}
	}
	if r.SpecificDays != nil {
		for _, d := range *r.SpecificDays {
			if !weekdayNames[d] {
				return fmt.Errorf("unknown weekday %q", d)
			}
		}
	}
	return nil
}
