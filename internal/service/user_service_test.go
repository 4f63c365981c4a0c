package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mingle/internal/authz"
	"mingle/internal/models"
)

func assertAppErrCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != code {
		t.Fatalf("expected %s app error, got %#v", code, err)
	}
}

func actorFor(id uuid.UUID) authz.Actor {
	return authz.Actor{ID: id, Authenticated: true}
}

func TestUserServiceSignupInvalidEmail(t *testing.T) {
	svc := NewUserService(noopUserRepo())
	_, err := svc.Signup(context.Background(), SignupInput{Email: "not-an-email", Password: "passw0rd"})
	assertAppErrCode(t, err, "VALIDATION_ERROR")
}

func TestUserServiceSignupWeakPassword(t *testing.T) {
	svc := NewUserService(noopUserRepo())
	_, err := svc.Signup(context.Background(), SignupInput{Email: "a@example.com", Password: "short"})
	assertAppErrCode(t, err, "VALIDATION_ERROR")
}

func TestUserServiceSignupEmailTaken(t *testing.T) {
	repo := noopUserRepo()
	repo.getByEmailFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: uuid.New()}, nil
	}

	svc := NewUserService(repo)
	_, err := svc.Signup(context.Background(), SignupInput{Email: "a@example.com", Password: "passw0rd"})
	assertAppErrCode(t, err, "VALIDATION_ERROR")
}

func TestUserServiceSignupHashesPassword(t *testing.T) {
	var created *models.User
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, u *models.User) error {
		created = u
		return nil
	}

	svc := NewUserService(repo)
	user, err := svc.Signup(context.Background(), SignupInput{Email: "A@Example.COM ", Password: "passw0rd"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected user to be created")
	}
	if user.Email != "a@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Password == "passw0rd" {
		t.Fatal("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("passw0rd")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if created.Profile == nil {
		t.Fatal("expected an empty profile to be attached")
	}
}

func TestUserServiceAuthenticateWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("passw0rd"), bcrypt.MinCost)
	repo := noopUserRepo()
	repo.getByEmailFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: uuid.New(), Email: "a@example.com", Password: string(hash)}, nil
	}

	svc := NewUserService(repo)
	_, err := svc.Authenticate(context.Background(), "a@example.com", "wrongpass1")
	assertAppErrCode(t, err, "UNAUTHORIZED")
}

func TestUserServiceAuthenticateUnknownEmail(t *testing.T) {
	svc := NewUserService(noopUserRepo())
	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "passw0rd")
	assertAppErrCode(t, err, "UNAUTHORIZED")
}

func TestUserServiceUpdateProfileAnonymous(t *testing.T) {
	svc := NewUserService(noopUserRepo())
	_, err := svc.UpdateProfile(context.Background(), authz.Anonymous, UpdateProfileInput{Bio: "hi"})
	assertAppErrCode(t, err, "UNAUTHORIZED")
}

func TestUserServiceUpdateProfileBadGender(t *testing.T) {
	svc := NewUserService(noopUserRepo())
	_, err := svc.UpdateProfile(context.Background(), actorFor(uuid.New()), UpdateProfileInput{Gender: "Other"})
	assertAppErrCode(t, err, "VALIDATION_ERROR")
}

func TestUserServiceUpdateProfileBirthDate(t *testing.T) {
	var saved *models.Profile
	repo := noopUserRepo()
	repo.updateProfileFn = func(_ context.Context, p *models.Profile) error {
		saved = p
		return nil
	}

	svc := NewUserService(repo)
	birth := "1990-04-01"
	profile, err := svc.UpdateProfile(context.Background(), actorFor(uuid.New()), UpdateProfileInput{
		BirthDate: &birth,
		Location:  "Lisbon",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || profile.BirthDate == nil {
		t.Fatal("expected birth date to be saved")
	}
	if got := profile.BirthDate.Format("2006-01-02"); got != birth {
		t.Fatalf("expected birth date %s, got %s", birth, got)
	}
	if profile.Location != "Lisbon" {
		t.Fatalf("expected location to be updated, got %q", profile.Location)
	}
}

func TestUserServiceUpdateProfileMalformedBirthDate(t *testing.T) {
	svc := NewUserService(noopUserRepo())
	birth := "01/04/1990"
	_, err := svc.UpdateProfile(context.Background(), actorFor(uuid.New()), UpdateProfileInput{BirthDate: &birth})
	assertAppErrCode(t, err, "VALIDATION_ERROR")
}

func TestUserServiceDeleteUserNotOwner(t *testing.T) {
	svc := NewUserService(noopUserRepo())
	err := svc.DeleteUser(context.Background(), actorFor(uuid.New()), uuid.New())
	assertAppErrCode(t, err, "FORBIDDEN")
}

func TestUserServiceDeleteUserAsStaff(t *testing.T) {
	deleted := false
	repo := noopUserRepo()
	repo.deleteFn = func(context.Context, uuid.UUID) error {
		deleted = true
		return nil
	}

	svc := NewUserService(repo)
	staff := authz.Actor{ID: uuid.New(), Authenticated: true, IsStaff: true}
	if err := svc.DeleteUser(context.Background(), staff, uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatal("expected repository delete to be called")
	}
}
