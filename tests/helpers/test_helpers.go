package helpers

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateMockClerkJWT builds a token shaped like a Clerk session token.
// It is signed with a throwaway key, so real verification rejects it —
// useful for exercising the unauthorized paths.
func GenerateMockClerkJWT(clerkID string) (string, error) {
	secretKey := []byte("test-secret-key-for-testing-only")

	claims := jwt.MapClaims{
		"sub": clerkID,
		"iss": "https://clerk.test",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour * 24).Unix(),
		"azp": "test-app-id",
		"sid": "sess_test123",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// MockClerkWebhookPayload creates a webhook body for the given event type.
func MockClerkWebhookPayload(eventType string, clerkID string) []byte {
	switch eventType {
	case "user.created", "user.updated":
		return []byte(fmt.Sprintf(`{
			"type": "%s",
			"data": {
				"id": "%s",
				"username": "testuser",
				"first_name": "Test",
				"last_name": "User",
				"image_url": "https://example.com/avatar.png",
				"email_addresses": [
					{
						"email_address": "test@example.com",
						"verification": {"status": "verified"}
					}
				]
			}
		}`, eventType, clerkID))
	case "user.deleted":
		return []byte(fmt.Sprintf(`{
			"type": "user.deleted",
			"data": {"id": "%s"}
		}`, clerkID))
	default:
		return []byte(fmt.Sprintf(`{"type": "%s", "data": {}}`, eventType))
	}
}
