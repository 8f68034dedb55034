package services

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/prompt"
)

type PromptService struct {
	fs *firestore.Client
}

func NewPromptService(fs *firestore.Client) *PromptService {
	return &PromptService{fs: fs}
}

// SaveResponse records the end-of-day check-in. One response per day is
// the intent; the store does not enforce it, and duplicates are tolerated
// by everything downstream.
func (s *PromptService) SaveResponse(ctx context.Context, userID string, req *prompt.SaveResponseRequest) (*prompt.DailyPromptResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	goals := req.Goals
	if goals == nil {
		goals = []string{}
	}

	p := &prompt.DailyPromptResponse{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      req.Date,
		Response:  req.Response,
		Goals:     goals,
		CreatedAt: time.Now(),
	}

	if _, err := s.fs.Collection(promptsCollection).Doc(p.ID).Set(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save check-in: %w", err)
	}

	return p, nil
}

// ListResponses returns every check-in for the user, newest first.
func (s *PromptService) ListResponses(ctx context.Context, userID string) ([]prompt.DailyPromptResponse, error) {
	iter := s.fs.Collection(promptsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	responses := []prompt.DailyPromptResponse{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list check-ins: %w", err)
		}

		var p prompt.DailyPromptResponse
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("malformed check-in document %s: %w", doc.Ref.ID, err)
		}
		if err := p.CheckValid(); err != nil {
			return nil, fmt.Errorf("malformed check-in document: %w", err)
		}
		responses = append(responses, p)
	}

	return responses, nil
}
