package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/completion"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/goal"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/progress"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/utils"
)

type GoalService struct {
	fs *firestore.Client
}

func NewGoalService(fs *firestore.Client) *GoalService {
	return &GoalService{fs: fs}
}

func (s *GoalService) CreateGoal(ctx context.Context, userID string, req *goal.CreateGoalRequest) (*goal.Goal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	g := &goal.Goal{
		ID:           uuid.New().String(),
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		GoalType:     req.GoalType,
		SpecificDays: req.SpecificDays,
		Category:     req.Category,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.fs.Collection(goalsCollection).Doc(g.ID).Set(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return g, nil
}

// getOwnedGoal loads a goal and verifies it belongs to userID.
func (s *GoalService) getOwnedGoal(ctx context.Context, userID, goalID string) (*goal.Goal, error) {
	doc, err := s.fs.Collection(goalsCollection).Doc(goalID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("goal not found")
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	g := &goal.Goal{}
	if err := doc.DataTo(g); err != nil {
		return nil, fmt.Errorf("malformed goal document %s: %w", doc.Ref.ID, err)
	}
	if g.UserID != userID {
		return nil, fmt.Errorf("goal not found")
	}
	return g, nil
}

func (s *GoalService) UpdateGoal(ctx context.Context, userID, goalID string, req *goal.UpdateGoalRequest) (*goal.Goal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g, err := s.getOwnedGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	updates := []firestore.Update{
		{Path: "updatedAt", Value: time.Now()},
	}
	if req.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *req.Title})
	}
	if req.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *req.Description})
	}
	if req.GoalType != nil {
		updates = append(updates, firestore.Update{Path: "goalType", Value: *req.GoalType})
	}
	if req.SpecificDays != nil {
		updates = append(updates, firestore.Update{Path: "specificDays", Value: *req.SpecificDays})
	}
	if req.Category != nil {
		updates = append(updates, firestore.Update{Path: "category", Value: *req.Category})
	}
	if req.IsActive != nil {
		updates = append(updates, firestore.Update{Path: "isActive", Value: *req.IsActive})
	}

	if _, err := s.fs.Collection(goalsCollection).Doc(g.ID).Update(ctx, updates); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return s.getOwnedGoal(ctx, userID, goalID)
}

// DeactivateGoal is the soft delete: the goal keeps its history but stops
// appearing in active listings.
func (s *GoalService) DeactivateGoal(ctx context.Context, userID, goalID string) error {
	inactive := false
	_, err := s.UpdateGoal(ctx, userID, goalID, &goal.UpdateGoalRequest{IsActive: &inactive})
	return err
}

// DeleteGoal removes the goal document entirely, along with every
// completion recorded against it.
func (s *GoalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	if _, err := s.getOwnedGoal(ctx, userID, goalID); err != nil {
		return err
	}

	if _, err := s.fs.Collection(goalsCollection).Doc(goalID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	iter := s.fs.Collection(completionsCollection).
		Where("goalId", "==", goalID).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list completions for goal %s: %w", goalID, err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return fmt.Errorf("failed to delete completion %s: %w", doc.Ref.ID, err)
		}
	}

	log.Printf("Deleted goal %s and its completions for user %s", goalID, userID)
	return nil
}

func (s *GoalService) ListActiveGoals(ctx context.Context, userID string) ([]goal.Goal, error) {
	iter := s.fs.Collection(goalsCollection).
		Where("userId", "==", userID).
		Where("isActive", "==", true).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	goals := []goal.Goal{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list goals: %w", err)
		}

		var g goal.Goal
		if err := doc.DataTo(&g); err != nil {
			return nil, fmt.Errorf("malformed goal document %s: %w", doc.Ref.ID, err)
		}
		if err := g.CheckValid(); err != nil {
			return nil, fmt.Errorf("malformed goal document: %w", err)
		}
		goals = append(goals, g)
	}

	return goals, nil
}

func (s *GoalService) MarkComplete(ctx context.Context, goalID, userID, date string) (*completion.GoalCompletion, error) {
	if !utils.ValidDate(date) {
		return nil, fmt.Errorf("date must be YYYY-MM-DD, got %q", date)
	}
	if _, err := s.getOwnedGoal(ctx, userID, goalID); err != nil {
		return nil, err
	}

	c := &completion.GoalCompletion{
		ID:          uuid.New().String(),
		GoalID:      goalID,
		UserID:      userID,
		Date:        date,
		CompletedAt: time.Now(),
	}

	if _, err := s.fs.Collection(completionsCollection).Doc(c.ID).Set(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to mark goal complete: %w", err)
	}

	return c, nil
}

// UnmarkComplete removes every completion recorded for the triple; the
// store does not prevent duplicates, so there may be more than one.
func (s *GoalService) UnmarkComplete(ctx context.Context, goalID, userID, date string) error {
	if !utils.ValidDate(date) {
		return fmt.Errorf("date must be YYYY-MM-DD, got %q", date)
	}

	iter := s.fs.Collection(completionsCollection).
		Where("goalId", "==", goalID).
		Where("userId", "==", userID).
		Where("date", "==", date).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to find completions: %w", err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return fmt.Errorf("failed to delete completion %s: %w", doc.Ref.ID, err)
		}
	}

	return nil
}

func (s *GoalService) ListCompletionsOn(ctx context.Context, userID, date string) ([]completion.GoalCompletion, error) {
	if !utils.ValidDate(date) {
		return nil, fmt.Errorf("date must be YYYY-MM-DD, got %q", date)
	}

	iter := s.fs.Collection(completionsCollection).
		Where("userId", "==", userID).
		Where("date", "==", date).
		Documents(ctx)
	defer iter.Stop()

	return collectCompletions(iter)
}

func (s *GoalService) ListCompletionsSince(ctx context.Context, userID string, since time.Time) ([]completion.GoalCompletion, error) {
	iter := s.fs.Collection(completionsCollection).
		Where("userId", "==", userID).
		Where("completedAt", ">=", since).
		OrderBy("completedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	return collectCompletions(iter)
}

func collectCompletions(iter *firestore.DocumentIterator) ([]completion.GoalCompletion, error) {
	completions := []completion.GoalCompletion{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list completions: %w", err)
		}

		var c completion.GoalCompletion
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("malformed completion document %s: %w", doc.Ref.ID, err)
		}
		if err := c.CheckValid(); err != nil {
			return nil, fmt.Errorf("malformed completion document: %w", err)
		}
		completions = append(completions, c)
	}
	return completions, nil
}

// TodayOverview reports which goals are due today and how far through
// them the user is.
func (s *GoalService) TodayOverview(ctx context.Context, userID string, now time.Time) (*progress.TodayOverview, error) {
	goals, err := s.ListActiveGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	completions, err := s.ListCompletionsOn(ctx, userID, utils.DayKey(now))
	if err != nil {
		return nil, err
	}

	overview := progress.BuildTodayOverview(goals, completions, now)
	return &overview, nil
}
