package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/prompt"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/middleware"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/services"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/utils"
)

type PromptHandler struct {
	promptService *services.PromptService
	goalService   *services.GoalService
}

func NewPromptHandler(promptService *services.PromptService, goalService *services.GoalService) *PromptHandler {
	return &PromptHandler{
		promptService: promptService,
		goalService:   goalService,
	}
}

func (h *PromptHandler) SaveCheckin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req prompt.SaveResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.promptService.SaveResponse(ctx, clerkID, &req)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.CountCheckinSaved()
	respondWithJSON(w, http.StatusCreated, saved)
}

func (h *PromptHandler) ListCheckins(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	responses, err := h.promptService.ListResponses(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list check-ins")
		return
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			respondWithError(w, http.StatusBadRequest, "Query parameter 'limit' must be a non-negative integer")
			return
		}
		if limit < len(responses) {
			responses = responses[:limit]
		}
	}

	respondWithJSON(w, http.StatusOK, responses)
}

// CheckinStatus answers whether the end-of-day prompt should show right
// now. The device sends the date it last displayed the prompt; that flag
// stays device-local and is never stored server-side.
func (h *PromptHandler) CheckinStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	goals, err := h.goalService.ListActiveGoals(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list goals")
		return
	}

	now := time.Now()
	lastShown := r.URL.Query().Get("lastShown")

	respondWithJSON(w, http.StatusOK, prompt.PromptStatus{
		ShouldShow:  prompt.ShouldShow(now, lastShown, len(goals)),
		Date:        utils.DayKey(now),
		ActiveGoals: len(goals),
	})
}
