package services

import (
	"errors"
	"testing"
	"time"
)

func TestAuthDisabledWithoutPassword(t *testing.T) {
	svc, err := NewAuthService("admin", "", newFakeSessionStore(), time.Hour)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	if svc.Enabled() {
		t.Error("auth should be disabled with an empty password")
	}
	if _, err := svc.Login("admin", "anything"); err == nil {
		t.Error("Login should fail while auth is disabled")
	}
}

func TestAuthLoginRoundTrip(t *testing.T) {
	store := newFakeSessionStore()
	svc, err := NewAuthService("admin", "s3cret", store, time.Hour)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	if !svc.Enabled() {
		t.Fatal("auth should be enabled")
	}

	token, err := svc.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	username, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if username != "admin" {
		t.Errorf("Validate returned %q, want admin", username)
	}

	if err := svc.Logout(token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Validate(token); !errors.Is(err, ErrNotFound) {
		t.Errorf("Validate after logout error = %v, want ErrNotFound", err)
	}
}

func TestAuthRejectsBadCredentials(t *testing.T) {
	svc, err := NewAuthService("admin", "s3cret", newFakeSessionStore(), time.Hour)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}

	if _, err := svc.Login("admin", "wrong"); !errors.Is(err, ErrValidation) {
		t.Errorf("wrong password error = %v, want ErrValidation", err)
	}
	if _, err := svc.Login("root", "s3cret"); !errors.Is(err, ErrValidation) {
		t.Errorf("wrong username error = %v, want ErrValidation", err)
	}
	if _, err := svc.Validate("bogus-token"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown token error = %v, want ErrNotFound", err)
	}
}
