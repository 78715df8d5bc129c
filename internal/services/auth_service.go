package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"bazar/internal/models"
	"bazar/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login, social login, user listing and
// role promotion.
type AuthService struct {
	userRepo      repositories.UserRepository
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewAuthService creates a new AuthService. Tokens carry {id, role} and stay
// valid for seven days from issuance.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: 7 * 24 * time.Hour,
	}
}

// AuthResult bundles a signed token with the authenticated user.
type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register creates a new user. The very first user ever registered becomes
// the owner; everyone after that is a plain user. The count check and the
// insert are two separate store calls, so concurrent first registrations can
// race for the owner slot. That matches the reference behavior and is
// surfaced (not fixed) by tests.
func (s *AuthService) Register(name, email, password string) (*AuthResult, error) {
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role, err := s.bootstrapRole()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return s.issue(user)
}

// Login authenticates an email/password pair.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user)
}

// SocialLogin signs in a user whose identity was already verified by an
// external provider. Unknown emails are registered on first sight with a
// random throwaway password; the owner-bootstrap rule applies to them too.
func (s *AuthService) SocialLogin(provider, email, name string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return s.issue(user)
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	role, err := s.bootstrapRole()
	if err != nil {
		return nil, err
	}

	user = &models.User{
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register social user: %w", err)
	}
	log.Printf("Registered new user %s via %s login", email, provider)

	return s.issue(user)
}

// Users returns all users with password hashes stripped. Callers are
// expected to have passed the owner guard.
func (s *AuthService) Users() ([]models.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

// Promote changes a user's role. The owner's own role can never be changed
// through this path.
func (s *AuthService) Promote(userID, role string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.Role == models.RoleOwner {
		return nil, ErrOwnerRoleImmutable
	}
	updated, err := s.userRepo.UpdateRole(userID, role)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ValidateToken parses and verifies a bearer token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// bootstrapRole decides the role for a brand new user from the current user
// count. Not atomic with the subsequent insert.
func (s *AuthService) bootstrapRole() (string, error) {
	count, err := s.userRepo.Count()
	if err != nil {
		return "", fmt.Errorf("failed to count users: %w", err)
	}
	if count == 0 {
		return models.RoleOwner, nil
	}
	return models.RoleUser, nil
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   user.ID,
		"role": user.Role,
		"exp":  now.Add(s.tokenDuration).Unix(),
		"iat":  now.Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResult{Token: signed, User: user.Public()}, nil
}
