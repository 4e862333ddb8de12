package services

import (
	"crypto/md5"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devconnect/backend/internal/config"
	"github.com/devconnect/backend/internal/dto"
	"github.com/devconnect/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response never reveals whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register creates a user with a bcrypt-hashed password and a Gravatar avatar,
// then issues a token for it.
func (s *AuthService) Register(req *dto.RegisterRequest) (string, error) {
	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Avatar:   gravatarURL(req.Email),
	}

	if err := s.db.Create(&user).Error; err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return s.IssueToken(user.ID)
}

func (s *AuthService) Login(req *dto.LoginRequest) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.IssueToken(user.ID)
}

func (s *AuthService) CurrentUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// IssueToken signs a bearer token embedding {user:{id}} with an absolute
// expiry taken from configuration.
func (s *AuthService) IssueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user": map[string]string{"id": userID.String()},
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// VerifyToken validates signature and expiry and returns the embedded user
// id. Any failure yields ErrInvalidToken, never a partial identity.
func (s *AuthService) VerifyToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	userClaim, ok := claims["user"].(map[string]interface{})
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	id, ok := userClaim["id"].(string)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}

func gravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}
