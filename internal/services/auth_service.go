package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"krishiseva/internal/apperror"
	"krishiseva/internal/models"
	"krishiseva/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput carries the signup fields.
type RegisterInput struct {
	Name     string      `validate:"required,max=100"`
	Email    string      `validate:"required,email"`
	Password string      `validate:"required,min=6,max=72"`
	Role     models.Role `validate:"required"`
}

// ProfileUpdate holds the optional fields of a profile edit. A nil field is
// left unchanged; a non-nil Address replaces the saved address as a whole.
type ProfileUpdate struct {
	Phone        *string
	Address      *models.Address
	ProfilePhoto *string
}

// AuthService handles registration, credential checks and profile edits.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
	validate *validator.Validate
	log      *zap.Logger
	now      func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		validate: validator.New(),
		log:      log,
		now:      time.Now,
	}
}

// RegisterUser validates and stores a new account. The email is stored
// lowercased and the password as a bcrypt hash.
func (s *AuthService) RegisterUser(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = models.NormalizeEmail(in.Email)

	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, apperror.New(apperror.Validation, "Please provide all required fields (name, email, password, role)")
	}
	if !in.Role.Valid() {
		return nil, apperror.New(apperror.Validation, "Role must be either Buyer or Seller")
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, registerValidationError(err)
	}
	if len(in.Password) > 72 {
		return nil, apperror.New(apperror.Validation, "Password cannot exceed 72 characters")
	}

	if _, err := s.userRepo.GetByEmail(ctx, in.Email); err == nil {
		return nil, apperror.New(apperror.DuplicateEmail, "Email already registered. Please use a different email or login.")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, apperror.Wrap(apperror.Internal, "failed to look up email", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to hash password", err)
	}

	now := s.now()
	user := &models.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  string(hashedPassword),
		Role:      in.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two concurrent signups can both pass the lookup above.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperror.New(apperror.DuplicateEmail, "Email already registered. Please use a different email or login.")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to register user", err)
	}

	s.log.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

func registerValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperror.Wrap(apperror.Validation, "Invalid signup data", err)
	}
	fe := fieldErrs[0]
	switch fe.Field() {
	case "Email":
		return apperror.New(apperror.Validation, "Please provide a valid email")
	case "Password":
		if fe.Tag() == "max" {
			return apperror.New(apperror.Validation, "Password cannot exceed 72 characters")
		}
		return apperror.New(apperror.Validation, "Password must be at least 6 characters")
	case "Name":
		return apperror.New(apperror.Validation, "Name cannot exceed 100 characters")
	}
	return apperror.New(apperror.Validation, fmt.Sprintf("Invalid value for %s", strings.ToLower(fe.Field())))
}

// VerifyCredentials returns the user matching email and password. An unknown
// email and a wrong password produce the same error.
func (s *AuthService) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperror.New(apperror.Validation, "Please provide both email and password")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.Wrap(apperror.Internal, "failed to look up user", err)
		}
		// Spend the same bcrypt work so response time does not reveal
		// whether the email exists.
		_ = bcrypt.CompareHashAndPassword(s.placeholderHash(), []byte(password))
		return nil, apperror.New(apperror.InvalidCredentials, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.New(apperror.InvalidCredentials, "Invalid email or password")
	}
	return user, nil
}

func (s *AuthService) placeholderHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("krishiseva-placeholder"), bcrypt.DefaultCost)
	})
	return s.dummyHash
}

// IssueToken signs a bearer token for user.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return "", apperror.Wrap(apperror.Internal, "failed to generate token", err)
	}
	return token, nil
}

// GetUser returns the user with the given ID.
func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.New(apperror.NotFound, "User not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to load user", err)
	}
	return user, nil
}

// UpdateProfile applies a profile edit and recomputes ProfileCompleted.
func (s *AuthService) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Phone != nil {
		user.Phone = strings.TrimSpace(*update.Phone)
	}
	if update.Address != nil {
		user.Address = models.Address{
			Street:  strings.TrimSpace(update.Address.Street),
			City:    strings.TrimSpace(update.Address.City),
			State:   strings.TrimSpace(update.Address.State),
			Pincode: strings.TrimSpace(update.Address.Pincode),
		}
	}
	if update.ProfilePhoto != nil {
		user.ProfilePhoto = *update.ProfilePhoto
	}
	user.ProfileCompleted = user.HasDeliveryDetails()
	user.UpdatedAt = s.now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.New(apperror.NotFound, "User not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to update profile", err)
	}

	s.log.Info("profile updated", zap.String("user_id", user.ID), zap.Bool("profile_completed", user.ProfileCompleted))
	return user, nil
}
