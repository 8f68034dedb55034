package prompt

import (
	"fmt"

	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/utils"
)

type SaveResponseRequest struct {
	Date     string   `json:"date"`
	Response Response `json:"response"`
	Goals    []string `json:"goals"`
}

func (r *SaveResponseRequest) Validate() error {
	if !utils.ValidDate(r.Date) {
		return fmt.Errorf("date must be YYYY-MM-DD, got %q", r.Date)
	}
	if !r.Response.Valid() {
		return fmt.Errorf("response must be yes, no or partial, got %q", r.Response)
	}
	return nil
}

// PromptStatus is the answer to "should the 9 PM check-in show right now".
type PromptStatus struct {
	ShouldShow  bool   `json:"shouldShow"`
	Date        string `json:"date"`
	ActiveGoals int    `json:"activeGoals"`
}
