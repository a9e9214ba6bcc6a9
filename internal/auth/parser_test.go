package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nurpe/donations-service/internal/model"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func validClaims(userID uuid.UUID) Claims {
	return Claims{
		UserID:    userID.String(),
		Name:      "Priya Sharma",
		Email:     "priya@example.com",
		Role:      "ADMIN",
		Staff:     true,
		Superuser: false,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestParse_RoundTrip(t *testing.T) {
	parser := NewParser(testSecret)
	userID := uuid.New()

	principal, err := parser.Parse(signToken(t, validClaims(userID), testSecret))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if principal.UserID != userID {
		t.Errorf("user id: got %s", principal.UserID)
	}
	if principal.Name != "Priya Sharma" || principal.Email != "priya@example.com" {
		t.Errorf("identity claims not mapped: %+v", principal)
	}
	if principal.Role != model.RoleAdmin {
		t.Errorf("role: got %s", principal.Role)
	}
	if !principal.Staff || principal.Superuser {
		t.Errorf("flags not mapped: %+v", principal)
	}
}

func TestParse_UnknownRoleFallsBackToDonor(t *testing.T) {
	parser := NewParser(testSecret)
	claims := validClaims(uuid.New())
	claims.Role = "MODERATOR"

	principal, err := parser.Parse(signToken(t, claims, testSecret))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if principal.Role != model.RoleDonor {
		t.Errorf("role: got %s, want DONOR", principal.Role)
	}
}

func TestParse_Expired(t *testing.T) {
	parser := NewParser(testSecret)
	claims := validClaims(uuid.New())
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	_, err := parser.Parse(signToken(t, claims, testSecret))
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	parser := NewParser(testSecret)

	_, err := parser.Parse(signToken(t, validClaims(uuid.New()), "other-secret"))
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParse_BadUserID(t *testing.T) {
	parser := NewParser(testSecret)
	claims := validClaims(uuid.New())
	claims.UserID = "not-a-uuid"

	_, err := parser.Parse(signToken(t, claims, testSecret))
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParse_Garbage(t *testing.T) {
	parser := NewParser(testSecret)

	_, err := parser.Parse("not.a.token")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
