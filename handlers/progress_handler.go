package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/middleware"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/services"
)

type ProgressHandler struct {
	progressService *services.ProgressService
}

func NewProgressHandler(progressService *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
	}
}

// GetProgress returns the full progress summary: weekly and monthly
// completion rates, streaks, most consistent day and the last 7
// check-ins. A store failure fails the whole request; there is no
// partial summary.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	summary, err := h.progressService.BuildSummary(ctx, clerkID, time.Now())
	if err != nil {
		log.Printf("GetProgress: failed to build summary for %s: %v", clerkID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to build progress summary")
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}
