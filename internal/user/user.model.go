package user

import "time"

type User struct {
	ID          string    `firestore:"id" json:"id"`
	ClerkID     string    `firestore:"clerkId" json:"clerkId"`
	Email       string    `firestore:"email" json:"email"`
	DisplayName string    `firestore:"displayName" json:"displayName"`
	ImageURL    string    `firestore:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}
