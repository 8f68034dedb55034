package prompt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResponse_Valid(t *testing.T) {
	assert.True(t, ResponseYes.Valid())
	assert.True(t, ResponseNo.Valid())
	assert.True(t, ResponsePartial.Valid())
	assert.False(t, Response("maybe").Valid())
	assert.False(t, Response("").Valid())
}

func TestResponse_CountsTowardStreak(t *testing.T) {
	assert.True(t, ResponseYes.CountsTowardStreak())
	assert.True(t, ResponsePartial.CountsTowardStreak())
	assert.False(t, ResponseNo.CountsTowardStreak())
}

func TestShouldShow(t *testing.T) {
	evening := time.Date(2025, 3, 15, 21, 30, 0, 0, time.UTC)
	afternoon := time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC)

	// Due: after 9 PM, not yet shown today, goals exist.
	assert.True(t, ShouldShow(evening, "", 2))
	assert.True(t, ShouldShow(evening, "2025-03-14", 2))

	// Too early in the day.
	assert.False(t, ShouldShow(afternoon, "", 2))

	// Already shown today.
	assert.False(t, ShouldShow(evening, "2025-03-15", 2))

	// Nothing to check in about.
	assert.False(t, ShouldShow(evening, "", 0))
}

func TestSaveResponseRequest_Validate(t *testing.T) {
	good := &SaveResponseRequest{Date: "2025-03-15", Response: ResponseYes}
	assert.NoError(t, good.Validate())

	badDate := &SaveResponseRequest{Date: "15-03-2025", Response: ResponseYes}
	assert.Error(t, badDate.Validate())

	badAnswer := &SaveResponseRequest{Date: "2025-03-15", Response: "sorta"}
	assert.Error(t, badAnswer.Validate())
}

func TestCheckValid(t *testing.T) {
	p := &DailyPromptResponse{ID: "p1", UserID: "u1", Date: "2025-03-15", Response: ResponsePartial}
	assert.NoError(t, p.CheckValid())

	badEnum := &DailyPromptResponse{ID: "p2", UserID: "u1", Date: "2025-03-15", Response: "kinda"}
	assert.Error(t, badEnum.CheckValid())

	noUser := &DailyPromptResponse{ID: "p3", Date: "2025-03-15", Response: ResponseYes}
	assert.Error(t, noUser.CheckValid())
}
