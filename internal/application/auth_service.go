package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-backend/internal/domain/entity"
	repo "github.com/oksasatya/fitness-backend/internal/domain/repository"
	"github.com/oksasatya/fitness-backend/pkg/helpers"
	"github.com/oksasatya/fitness-backend/pkg/mailer"
	tpl "github.com/oksasatya/fitness-backend/pkg/mailer/templates"
)

const MinPasswordLength = 6

// TokenIssuer is satisfied by *helpers.TokenManager.
type TokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
}

// JobPublisher is satisfied by *helpers.RabbitPublisher.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type AuthService struct {
	Repo       repo.UserRepository
	Tokens     TokenIssuer
	Logger     *logrus.Logger
	Mail       JobPublisher // optional
	AppName    string
	SupportURL string
}

func NewAuthService(r repo.UserRepository, tokens TokenIssuer, logger *logrus.Logger) *AuthService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &AuthService{Repo: r, Tokens: tokens, Logger: logger}
}

// WithWelcomeMail enables best-effort welcome emails after signup.
func (s *AuthService) WithWelcomeMail(pub JobPublisher, appName, supportURL string) *AuthService {
	s.Mail = pub
	s.AppName = appName
	s.SupportURL = supportURL
	return s
}

type Profile struct {
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Stats    ProfileStats `json:"stats"`
}

type ProfileStats struct {
	TotalCalories int `json:"totalCalories"`
	TotalMinutes  int `json:"totalMinutes"`
	TotalWorkouts int `json:"totalWorkouts"`
}

func validateSignup(username, email, password string) error {
	switch {
	case strings.TrimSpace(username) == "", strings.TrimSpace(email) == "", password == "":
		return fmt.Errorf("%w: username, email and password are required", ErrValidation)
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	case len(password) > helpers.MaxPasswordBytes:
		return fmt.Errorf("%w: password must be at most %d bytes", ErrValidation, helpers.MaxPasswordBytes)
	}
	return nil
}

// Signup validates input, creates the user and returns a token bound to it.
// Nothing is written when validation fails, and no token is issued unless the
// user row was created.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (string, error) {
	if err := validateSignup(username, email, password); err != nil {
		return "", err
	}

	// early exit only; the unique index decides under concurrent signups
	existing, err := s.Repo.FindByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		return "", ErrDuplicateEmail
	case err != nil && !errors.Is(err, repo.ErrNotFound):
		s.Logger.WithError(err).Error("signup: lookup by email failed")
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		s.Logger.WithError(err).Error("signup: hash password failed")
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}

	u, err := s.Repo.Create(ctx, username, email, hash)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return "", ErrDuplicateEmail
		}
		s.Logger.WithError(err).Error("signup: create user failed")
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	token, err := s.issue(u)
	if err != nil {
		return "", err
	}
	s.Logger.WithField("user_id", u.ID).Info("user signed up")
	s.sendWelcome(ctx, u)
	return token, nil
}

// Login returns a fresh token for valid credentials. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			helpers.CompareDummyPassword(password)
			return "", ErrInvalidCredentials
		}
		s.Logger.WithError(err).Error("login: lookup by email failed")
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return s.issue(u)
}

// GetProfile returns the public view of a user. The user may have been
// removed after the token was issued.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.Logger.WithError(err).WithField("user_id", userID).Error("profile: lookup failed")
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &Profile{
		Username: u.Username,
		Email:    u.Email,
		Stats: ProfileStats{
			TotalCalories: u.Stats.TotalCalories,
			TotalMinutes:  u.Stats.TotalMinutes,
			TotalWorkouts: u.Stats.TotalWorkouts,
		},
	}, nil
}

func (s *AuthService) issue(u *entity.User) (string, error) {
	token, _, err := s.Tokens.Issue(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue token failed")
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return token, nil
}

func (s *AuthService) sendWelcome(ctx context.Context, u *entity.User) {
	if s.Mail == nil {
		return
	}
	data := tpl.ToMap(tpl.EmailData{
		Username:   u.Username,
		Email:      u.Email,
		AppName:    s.AppName,
		SupportURL: s.SupportURL,
		SignedUpAt: u.CreatedAt,
	})
	job := mailer.EmailJob{To: u.Email, Template: tpl.Welcome, Data: data}
	c, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := s.Mail.PublishJSON(c, job); err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("failed to publish welcome email")
	}
}
