package handlers

import (
	"krishiseva/internal/apperror"
	"krishiseva/internal/middleware"
	"krishiseva/internal/models"
	"krishiseva/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for authentication and profiles.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
	log         *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
		log:         log,
	}
}

// RegisterRoutes registers the authentication routes. dashboard and profile
// sit behind requireAuth.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/signup", h.HandleSignup)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Get("/dashboard", requireAuth, h.HandleDashboard)
	authRoutes.Put("/profile", requireAuth, h.HandleUpdateProfile)
}

// SignupRequest represents the request body for signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// HandleSignup registers a user and logs them in.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	user, err := h.authService.RegisterUser(c.UserContext(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		return fail(c, h.log, err, "Server error during registration. Please try again.")
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		return fail(c, h.log, err, "Server error during registration. Please try again.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully! Welcome to KrishiSeva.",
		"token":   token,
		"user":    userSummary(user),
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin checks credentials and issues a bearer token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, "Please provide both email and password")
	}

	user, err := h.authService.VerifyCredentials(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if apperror.Is(err, apperror.InvalidCredentials) {
			h.log.Info("login rejected", zap.String("ip", c.IP()))
		}
		return fail(c, h.log, err, "Server error during login. Please try again.")
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		return fail(c, h.log, err, "Server error during login. Please try again.")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful! Welcome back to KrishiSeva.",
		"token":   token,
		"user":    userSummary(user),
	})
}

// HandleDashboard returns the caller's profile.
func (h *AuthHandler) HandleDashboard(c *fiber.Ctx) error {
	identity := middleware.CurrentUser(c)
	user, err := h.authService.GetUser(c.UserContext(), identity.UserID)
	if err != nil {
		return fail(c, h.log, err, "Server error. Please try again.")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    userProfile(user),
	})
}

// AddressRequest is a postal address in a profile update.
type AddressRequest struct {
	Street  string `json:"street" validate:"max=255"`
	City    string `json:"city" validate:"max=100"`
	State   string `json:"state" validate:"max=100"`
	Pincode string `json:"pincode" validate:"max=20"`
}

// ProfileRequest represents the request body for a profile update. Omitted
// fields are left unchanged.
type ProfileRequest struct {
	Phone        *string         `json:"phone" validate:"omitempty,max=20"`
	Address      *AddressRequest `json:"address"`
	ProfilePhoto *string         `json:"profilePhoto"`
}

// HandleUpdateProfile edits the caller's phone, address or photo.
func (h *AuthHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, "Invalid profile data")
	}

	update := services.ProfileUpdate{
		Phone:        req.Phone,
		ProfilePhoto: req.ProfilePhoto,
	}
	if req.Address != nil {
		update.Address = &models.Address{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			Pincode: req.Address.Pincode,
		}
	}

	identity := middleware.CurrentUser(c)
	user, err := h.authService.UpdateProfile(c.UserContext(), identity.UserID, update)
	if err != nil {
		return fail(c, h.log, err, "Failed to update profile. Please try again.")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated successfully",
		"user":    userProfile(user),
	})
}
