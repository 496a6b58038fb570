package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/examsys/examination-backend/internal/config"
	"github.com/examsys/examination-backend/internal/model"
	"github.com/examsys/examination-backend/internal/repository"
)

type fakeDirectory struct {
	students map[string]*model.Student
	err      error
}

func (f *fakeDirectory) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.students[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "unit-test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: 4,
	}
}

func TestLoginAndValidateToken(t *testing.T) {
	cfg := testAuthConfig()
	svc := NewAuthService(cfg, nil)

	hash, err := svc.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	dir := &fakeDirectory{students: map[string]*model.Student{
		"ava@example.com": {ID: 7, Email: "ava@example.com", PasswordHash: hash},
	}}
	svc = NewAuthService(cfg, dir)

	student, token, err := svc.Login(context.Background(), "ava@example.com", "correct horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if student.ID != 7 {
		t.Errorf("student ID = %d, want 7", student.ID)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.StudentID != 7 {
		t.Errorf("claims student ID = %d, want 7", claims.StudentID)
	}
	if claims.Email != "ava@example.com" {
		t.Errorf("claims email = %q", claims.Email)
	}
	if claims.Subject != "7" {
		t.Errorf("claims subject = %q, want 7", claims.Subject)
	}
}

func TestLoginRejections(t *testing.T) {
	cfg := testAuthConfig()
	svc := NewAuthService(cfg, nil)
	hash, _ := svc.HashPassword("right-password")

	t.Run("unknown email", func(t *testing.T) {
		dir := &fakeDirectory{students: map[string]*model.Student{}}
		svc := NewAuthService(cfg, dir)
		_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		dir := &fakeDirectory{students: map[string]*model.Student{
			"ava@example.com": {ID: 7, Email: "ava@example.com", PasswordHash: hash},
		}}
		svc := NewAuthService(cfg, dir)
		_, _, err := svc.Login(context.Background(), "ava@example.com", "wrong-password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("directory failure is unavailable, not invalid credentials", func(t *testing.T) {
		dir := &fakeDirectory{err: errors.New("connection refused")}
		svc := NewAuthService(cfg, dir)
		_, _, err := svc.Login(context.Background(), "ava@example.com", "right-password")
		if !errors.Is(err, ErrUnavailable) {
			t.Errorf("err = %v, want ErrUnavailable", err)
		}
		if errors.Is(err, ErrInvalidCredentials) {
			t.Error("store failure must not look like bad credentials")
		}
	})
}

func TestValidateTokenFailures(t *testing.T) {
	cfg := testAuthConfig()
	svc := NewAuthService(cfg, nil)
	student := &model.Student{ID: 3, Email: "kim@example.com"}

	t.Run("malformed", func(t *testing.T) {
		if _, err := svc.ValidateToken("not.a.token"); err == nil {
			t.Error("malformed token accepted")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuthService(&config.Config{JWTSecret: "different-secret", JWTExpiry: time.Hour}, nil)
		token, err := other.IssueToken(student)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		if _, err := svc.ValidateToken(token); err == nil {
			t.Error("token signed with wrong secret accepted")
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewAuthService(&config.Config{JWTSecret: cfg.JWTSecret, JWTExpiry: -time.Minute}, nil)
		token, err := expired.IssueToken(student)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		if _, err := svc.ValidateToken(token); err == nil {
			t.Error("expired token accepted")
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		token, err := svc.IssueToken(student)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		tampered := token + "AAAA"
		if _, err := svc.ValidateToken(tampered); err == nil {
			t.Error("tampered token accepted")
		}
	})
}

func TestCheckPassword(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), nil)
	hash, err := svc.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := svc.CheckPassword(hash, "s3cret"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := svc.CheckPassword(hash, "s3cret "); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
}
