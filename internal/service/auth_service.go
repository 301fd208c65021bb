package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/session"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
)

type authStore interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	GetStudentEntryByStudentID(ctx context.Context, studentID string) (*models.StudentEntry, error)
	UpdateStudentEntry(ctx context.Context, id int64, patch models.StudentEntryPatch) (*models.StudentEntry, error)
}

// AuthService handles registration, login, and session lifecycle.
type AuthService struct {
	store     authStore
	sessions  session.Directory
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(st authStore, sessions session.Directory, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{store: st, sessions: sessions, validator: validate, logger: logger}
}

// Register creates an account and issues a session. Student accounts
// carrying a studentId must name an unassigned roster entry; the
// entry's section, department, year, and semester are copied onto the
// new account and the entry is marked as claimed.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	role := models.UserRole(req.UserType)
	user := &models.User{
		Username: req.Username,
		FullName: req.FullName,
		Role:     role,
	}

	var claimed *models.StudentEntry
	if role == models.RoleStudent && req.StudentID != "" {
		entry, err := s.store.GetStudentEntryByStudentID(ctx, req.StudentID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, appErrors.Clone(appErrors.ErrValidation, "student id is not registered")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up student id")
		}
		if entry.Assigned {
			return nil, appErrors.Clone(appErrors.ErrValidation, "student id is already claimed")
		}
		claimed = entry
		user.StudentID = &entry.StudentID
		user.Section = entry.Section
		user.Department = entry.Department
		user.Year = entry.Year
		user.Semester = entry.Semester
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	user.PasswordHash = string(hash)

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "username is already taken")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}

	if claimed != nil {
		assigned := true
		if _, err := s.store.UpdateStudentEntry(ctx, claimed.ID, models.StudentEntryPatch{
			Assigned: &assigned,
			UserID:   &user.ID,
		}); err != nil {
			s.logger.Warn("failed to mark roster entry as claimed",
				zap.Int64("entryId", claimed.ID), zap.Error(err))
		}
	}

	token, err := s.sessions.Create(ctx, session.Identity{UserID: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session")
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	token, err := s.sessions.Create(ctx, session.Identity{UserID: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session")
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

// Logout revokes the presented session token. Unknown tokens revoke
// cleanly; logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to revoke session")
	}
	return nil
}

// CurrentUser loads the account behind an authenticated identity.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "account no longer exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	return user, nil
}
