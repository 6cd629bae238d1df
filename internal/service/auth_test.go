package service

import (
	"errors"
	"testing"
	"time"

	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/repository"
)

type stubUserRepo struct {
	byEmail  map[string]*model.User
	profiles int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*model.User)}
}

func (s *stubUserRepo) Create(user *model.User) error {
	user.ID = "user-1"
	s.byEmail[user.Email] = user
	return nil
}

func (s *stubUserRepo) ByID(id string) (*model.User, error) {
	for _, user := range s.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *stubUserRepo) ByEmail(email string) (*model.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserRepo) Delete(id string) error { return nil }

type countingProfileRepo struct {
	stubProfileRepo
	created int
}

func (c *countingProfileRepo) Create(profile *model.Profile) error {
	c.created++
	return nil
}

func newTestAuthService(users *stubUserRepo, profiles *countingProfileRepo) *AuthService {
	return NewAuthService(users, profiles, "test-secret", time.Hour, false)
}

func TestRegisterAndLogin(t *testing.T) {
	users := newStubUserRepo()
	profiles := &countingProfileRepo{}
	svc := newTestAuthService(users, profiles)

	user, err := svc.Register("Amina@Example.com", "correct-horse-battery")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Email != "amina@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "correct-horse-battery" {
		t.Error("password stored in plain text")
	}
	if profiles.created != 1 {
		t.Errorf("profiles created = %d, want 1", profiles.created)
	}

	got, err := svc.Login("amina@example.com", "correct-horse-battery")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("Login() returned user %q, want %q", got.ID, user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestAuthService(users, &countingProfileRepo{})

	if _, err := svc.Register("amina@example.com", "correct-horse-battery"); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, err := svc.Register("amina@example.com", "another-strong-phrase")
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("Register() error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestAuthService(users, &countingProfileRepo{})

	if _, err := svc.Register("amina@example.com", "correct-horse-battery"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := svc.Login("amina@example.com", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login("nobody@example.com", "whatever-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() unknown user error = %v, want ErrInvalidCredentials", err)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), &countingProfileRepo{})
	user := &model.User{ID: "user-1", Email: "amina@example.com"}

	token, err := svc.GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := svc.VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT() error = %v", err)
	}
	if claims["user_id"] != "user-1" {
		t.Errorf("user_id claim = %v", claims["user_id"])
	}
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), &countingProfileRepo{})
	other := NewAuthService(newStubUserRepo(), &countingProfileRepo{}, "other-secret", time.Hour, false)

	token, err := other.GenerateJWT(&model.User{ID: "user-1"})
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := svc.VerifyJWT(token); err == nil {
		t.Error("VerifyJWT() accepted a token signed with a different secret")
	}
}
