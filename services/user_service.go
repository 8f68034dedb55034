package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/internal/user"
)

type UserService struct {
	fs *firestore.Client
}

func NewUserService(fs *firestore.Client) *UserService {
	return &UserService{fs: fs}
}

func (s *UserService) CreateUser(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	now := time.Now()
	u := &user.User{
		ID:          uuid.New().String(),
		ClerkID:     req.ClerkID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.fs.Collection(usersCollection).Doc(u.ID).Set(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (s *UserService) GetUserByClerkID(ctx context.Context, clerkID string) (*user.User, error) {
	iter := s.fs.Collection(usersCollection).
		Where("clerkId", "==", clerkID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	u := &user.User{}
	if err := doc.DataTo(u); err != nil {
		return nil, fmt.Errorf("malformed user document %s: %w", doc.Ref.ID, err)
	}
	return u, nil
}

func (s *UserService) UpdateProfileByClerkID(ctx context.Context, clerkID string, req *user.UpdateProfileRequest) (*user.User, error) {
	u, err := s.GetUserByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	updates := []firestore.Update{
		{Path: "updatedAt", Value: time.Now()},
	}
	if req.Email != "" {
		updates = append(updates, firestore.Update{Path: "email", Value: req.Email})
	}
	if req.DisplayName != "" {
		updates = append(updates, firestore.Update{Path: "displayName", Value: req.DisplayName})
	}
	if req.ImageURL != "" {
		updates = append(updates, firestore.Update{Path: "imageUrl", Value: req.ImageURL})
	}

	if _, err := s.fs.Collection(usersCollection).Doc(u.ID).Update(ctx, updates); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.GetUserByClerkID(ctx, clerkID)
}

// DeleteUserByClerkID removes the user document and everything keyed by
// the same user: goals, completions, check-ins.
func (s *UserService) DeleteUserByClerkID(ctx context.Context, clerkID string) error {
	u, err := s.GetUserByClerkID(ctx, clerkID)
	if err != nil {
		return err
	}

	for _, coll := range []string{goalsCollection, completionsCollection, promptsCollection} {
		if err := s.deleteWhereUser(ctx, coll, clerkID); err != nil {
			return err
		}
	}

	if _, err := s.fs.Collection(usersCollection).Doc(u.ID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	log.Printf("Deleted user and records for Clerk ID %s", clerkID)
	return nil
}

func (s *UserService) deleteWhereUser(ctx context.Context, coll, clerkID string) error {
	iter := s.fs.Collection(coll).
		Where("userId", "==", clerkID).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to list %s for deletion: %w", coll, err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return fmt.Errorf("failed to delete %s/%s: %w", coll, doc.Ref.ID, err)
		}
	}
}
