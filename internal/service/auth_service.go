package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/examsys/examination-backend/internal/config"
	"github.com/examsys/examination-backend/internal/model"
	"github.com/examsys/examination-backend/internal/repository"
)

// StudentDirectory is the credential lookup collaborator.
type StudentDirectory interface {
	GetByEmail(ctx context.Context, email string) (*model.Student, error)
}

// Claims extends JWT standard claims with the student identity.
type Claims struct {
	jwt.RegisteredClaims
	StudentID int    `json:"student_id"`
	Email     string `json:"email"`
}

// AuthService handles credential verification and the session token codec.
type AuthService struct {
	cfg      *config.Config
	students StudentDirectory
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, students StudentDirectory) *AuthService {
	return &AuthService{cfg: cfg, students: students}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Login verifies an email/password pair and issues a session token.
// An unknown email and a wrong password are both ErrInvalidCredentials;
// a directory I/O failure is ErrUnavailable, never invalid credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Student, string, error) {
	student, err := s.students.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("lookup student: %w", ErrUnavailable)
	}

	if err := s.CheckPassword(student.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(student)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return student, token, nil
}

// IssueToken creates a signed session token for a student with the
// configured fixed TTL.
func (s *AuthService) IssueToken(student *model.Student) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.Itoa(student.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		StudentID: student.ID,
		Email:     student.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken parses and validates a session token, returning the claims.
// Malformed tokens, bad signatures and expired tokens all fail the same
// way: callers learn only that the token did not verify.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, errors.New("token verification failed")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("token verification failed")
	}

	return claims, nil
}
