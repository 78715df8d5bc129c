package handlers

import (
	"errors"
	"fmt"
	"log"

	"bazar/internal/middleware"
	"bazar/internal/repositories"
	"bazar/internal/services"
	"bazar/internal/social"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for registration, login and user
// management.
type AuthHandler struct {
	authService *services.AuthService
	verifier    social.Verifier
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler. The verifier may be nil when no
// identity provider is configured; social login then requires pre-verified
// payloads.
func NewAuthHandler(authService *services.AuthService, verifier social.Verifier) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		verifier:    verifier,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/social", h.HandleSocialLogin)
	authRoutes.Get("/users", middleware.AuthRequired(h.authService), middleware.OwnerOnly(), h.HandleListUsers)
	authRoutes.Patch("/promote/:id", middleware.AuthRequired(h.authService), middleware.OwnerOnly(), h.HandlePromote)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleRegister handles new user registration. The first user ever
// registered becomes the owner.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	result, err := h.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "User already exists",
			})
		}
		log.Printf("Registration error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register user",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":   result.Token,
		"user":    result.User,
		"message": "User registered successfully",
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles email/password login.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid credentials",
			})
		}
		log.Printf("Login error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not log in",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}

// SocialLoginRequest represents the request body for social login. Either a
// provider token to verify, or a pre-verified email/name pair.
type SocialLoginRequest struct {
	Provider string `json:"provider" validate:"required"`
	Token    string `json:"token"`
	Email    string `json:"email" validate:"omitempty,email"`
	Name     string `json:"name"`
}

// HandleSocialLogin signs a user in via an external identity provider,
// registering them on first sight.
func (h *AuthHandler) HandleSocialLogin(c *fiber.Ctx) error {
	var req SocialLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	email, name := req.Email, req.Name
	if req.Token != "" {
		if h.verifier == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Social login is not configured",
			})
		}
		profile, err := h.verifier.Verify(c.Context(), req.Provider, req.Token)
		if err != nil {
			log.Printf("Social token verification failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Could not verify provider token",
			})
		}
		email, name = profile.Email, profile.Name
	}
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Email or provider token is required",
		})
	}

	result, err := h.authService.SocialLogin(req.Provider, email, name)
	if err != nil {
		log.Printf("Social login error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not log in",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}

// HandleListUsers returns all users without password hashes. Owner only.
func (h *AuthHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.authService.Users()
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve users",
			"error":   err.Error(),
		})
	}
	return c.JSON(users)
}

// PromoteRequest represents the request body for a role change.
type PromoteRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}

// HandlePromote changes a user's role. Owner only; the owner's own role is
// immutable.
func (h *AuthHandler) HandlePromote(c *fiber.Ctx) error {
	userID := c.Params("id")

	var req PromoteRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	user, err := h.authService.Promote(userID, req.Role)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		if errors.Is(err, services.ErrOwnerRoleImmutable) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cannot change owner role",
			})
		}
		log.Printf("Error promoting user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update user role",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("User role updated to %s", req.Role),
		"user":    user.Public(),
	})
}
