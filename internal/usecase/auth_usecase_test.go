package usecase

import (
	"context"
	"testing"
	"time"

	"job-scout/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

func testJWTService() *jwt.HMACService {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func testPasswordHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func TestAuth_IssueToken(t *testing.T) {
	svc := testJWTService()
	uc := NewAuthUsecase(testPasswordHash(t, "s3cret"), svc)

	access, refresh, err := uc.IssueToken(context.Background(), "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens")
	}

	claims, err := svc.ValidateToken(access)
	if err != nil {
		t.Fatalf("access token invalid: %v", err)
	}
	if claims.Subject != "admin" || claims.TokenType != jwt.TokenTypeAccess {
		t.Fatalf("access claims: %+v", claims)
	}

	claims, err = svc.ValidateToken(refresh)
	if err != nil {
		t.Fatalf("refresh token invalid: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("refresh claims: %+v", claims)
	}
}

func TestAuth_WrongPassword(t *testing.T) {
	uc := NewAuthUsecase(testPasswordHash(t, "s3cret"), testJWTService())

	if _, _, err := uc.IssueToken(context.Background(), "wrong"); err != ErrUnauthorized {
		t.Fatalf("wrong password: got %v", err)
	}
	if _, _, err := uc.IssueToken(context.Background(), ""); err != ErrUnauthorized {
		t.Fatalf("empty password: got %v", err)
	}
}

func TestAuth_MissingHash(t *testing.T) {
	uc := NewAuthUsecase("", testJWTService())

	if _, _, err := uc.IssueToken(context.Background(), "anything"); err != ErrUnauthorized {
		t.Fatalf("missing hash: got %v", err)
	}
}

func TestAuth_Refresh(t *testing.T) {
	svc := testJWTService()
	uc := NewAuthUsecase(testPasswordHash(t, "s3cret"), svc)

	_, refresh, err := uc.IssueToken(context.Background(), "s3cret")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	access, newRefresh, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if access == "" || newRefresh == "" {
		t.Fatalf("expected rotated tokens")
	}

	claims, err := svc.ValidateToken(access)
	if err != nil || claims.TokenType != jwt.TokenTypeAccess {
		t.Fatalf("rotated access token: claims=%+v err=%v", claims, err)
	}
}

func TestAuth_RefreshRejectsAccessToken(t *testing.T) {
	svc := testJWTService()
	uc := NewAuthUsecase(testPasswordHash(t, "s3cret"), svc)

	access, _, err := uc.IssueToken(context.Background(), "s3cret")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, _, err := uc.Refresh(context.Background(), access); err != ErrInvalidRefreshToken {
		t.Fatalf("access token as refresh: got %v", err)
	}
}

func TestAuth_RefreshRejectsGarbage(t *testing.T) {
	uc := NewAuthUsecase(testPasswordHash(t, "s3cret"), testJWTService())

	if _, _, err := uc.Refresh(context.Background(), ""); err != ErrUnauthorized {
		t.Fatalf("empty token: got %v", err)
	}
	if _, _, err := uc.Refresh(context.Background(), "not-a-jwt"); err != ErrInvalidRefreshToken {
		t.Fatalf("garbage token: got %v", err)
	}
}

func TestAuth_RefreshExpired(t *testing.T) {
	svc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Nanosecond)
	uc := NewAuthUsecase(testPasswordHash(t, "s3cret"), svc)

	_, refresh, err := uc.IssueToken(context.Background(), "s3cret")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, _, err := uc.Refresh(context.Background(), refresh); err != ErrRefreshTokenExpired {
		t.Fatalf("expired refresh: got %v", err)
	}
}
