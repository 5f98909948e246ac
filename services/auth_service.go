package services

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/peer-pixels/api-go/config"
	"github.com/peer-pixels/api-go/models"
	"github.com/peer-pixels/api-go/repositories"
	"golang.org/x/crypto/bcrypt"
)

const defaultAvatarUrl = "https://via.placeholder.com/150"

// tokenValidity is the bearer token lifetime. There is no refresh
// mechanism; clients re-authenticate after expiry.
const tokenValidity = time.Hour * 24 * 7

type AuthService struct {
	uow          *repositories.UnitOfWork
	userService  *UserService
	googleConfig *config.GoogleConfig
}

func NewAuthService(uow *repositories.UnitOfWork, userService *UserService) *AuthService {
	return &AuthService{
		uow:          uow,
		userService:  userService,
		googleConfig: config.NewGoogleConfig(),
	}
}

func (s *AuthService) Register(req RegisterRequest) (*AuthResponse, error) {
	existing, err := s.uow.Users.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &AuthResponse{Succeeded: false, Message: "User with this email already exists"}, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		DisplayName:  req.DisplayName,
		AvatarUrl:    defaultAvatarUrl,
	}
	if err := s.uow.Users.Create(&user); err != nil {
		return &AuthResponse{Succeeded: false, Message: "Username or email already exists"}, nil
	}

	return s.issueFor(&user, "User registered successfully")
}

// Login refuses with one generic message for both an unknown email and
// a wrong password, so callers cannot probe which emails are registered.
func (s *AuthService) Login(req LoginRequest) (*AuthResponse, error) {
	user, err := s.uow.Users.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return &AuthResponse{Succeeded: false, Message: "Invalid email or password"}, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return &AuthResponse{Succeeded: false, Message: "Invalid email or password"}, nil
	}

	return s.issueFor(user, "Login successful")
}

// GoogleLogin accepts three input shapes. A code plus redirect URI is
// exchanged with Google; an access token is resolved through the
// userinfo endpoint; a raw ID token has its claims decoded without
// signature re-verification and trusts the caller's transport-level
// validation. A first-seen email auto-provisions an account.
func (s *AuthService) GoogleLogin(ctx context.Context, req GoogleAuthRequest) (*AuthResponse, error) {
	var email, name string

	switch {
	case req.Code != "" && req.RedirectURI != "":
		token, err := s.googleConfig.ExchangeCode(ctx, req.Code)
		if err != nil {
			return &AuthResponse{Succeeded: false, Message: "Failed to exchange code for token"}, nil
		}
		userInfo, err := s.googleConfig.GetUserInfo(token.AccessToken)
		if err != nil {
			return &AuthResponse{Succeeded: false, Message: "Invalid Google token"}, nil
		}
		email, name = userInfo.Email, userInfo.Name
	case req.AccessToken != "":
		userInfo, err := s.googleConfig.GetUserInfo(req.AccessToken)
		if err != nil {
			return &AuthResponse{Succeeded: false, Message: "Invalid Google token"}, nil
		}
		email, name = userInfo.Email, userInfo.Name
	case req.IDToken != "":
		claims := jwt.MapClaims{}
		if _, _, err := new(jwt.Parser).ParseUnverified(req.IDToken, claims); err != nil {
			return &AuthResponse{Succeeded: false, Message: "Invalid Google token"}, nil
		}
		email, _ = claims["email"].(string)
		name, _ = claims["name"].(string)
	default:
		return &AuthResponse{Succeeded: false, Message: "Google authentication token is required"}, nil
	}

	if email == "" {
		return &AuthResponse{Succeeded: false, Message: "Invalid Google token: email claim not found"}, nil
	}
	if name == "" {
		name = strings.Split(email, "@")[0]
	}

	user, err := s.uow.Users.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		username := strings.Split(email, "@")[0]
		taken, err := s.uow.Users.GetByUsername(username)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
			username = username + suffix
		}

		user = &models.User{
			ID:          uuid.New().String(),
			Username:    username,
			Email:       email,
			DisplayName: name,
			AvatarUrl:   defaultAvatarUrl,
		}
		if err := s.uow.Users.Create(user); err != nil {
			return &AuthResponse{Succeeded: false, Message: "Failed to create user"}, nil
		}
	}

	return s.issueFor(user, "Google login successful")
}

func (s *AuthService) issueFor(user *models.User, message string) (*AuthResponse, error) {
	token, err := generateToken(user)
	if err != nil {
		return nil, err
	}

	profile, err := s.userService.GetUserByID(user.ID, user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Succeeded: true,
		Token:     token,
		User:      profile,
		Message:   message,
	}, nil
}

func generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"email":    user.Email,
		"exp":      time.Now().Add(tokenValidity).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
