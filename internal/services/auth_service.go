package services

import (
	"context"
	"time"

	"uniapi/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles account registration, login and token issuance.
type AuthService struct {
	store     DocumentStore
	jwtSecret string
}

func NewAuthService(store DocumentStore, jwtSecret string) *AuthService {
	return &AuthService{store: store, jwtSecret: jwtSecret}
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a bcrypt hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken signs a session token carrying the user's id, email and
// role. Tokens expire after 4 hours.
func GenerateToken(user models.User, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.Hex(),
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(4 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Register creates a new student account. The email must not already be
// registered; the check and the insert are two store operations, so
// concurrent duplicates can race (accepted limitation, no unique index
// is assumed).
func (s *AuthService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	var existing []models.User
	if err := s.store.GetDocuments(ctx, models.UserCollection, bson.M{"email": email}, &existing); err != nil {
		return models.User{}, err
	}
	if len(existing) > 0 {
		return models.User{}, ErrDuplicateEmail
	}

	hash, err := HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleStudent,
		IsActive:     true,
	}

	id, err := s.store.CreateDocument(ctx, models.UserCollection, user)
	if err != nil {
		return models.User{}, err
	}
	user.ID, err = primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login authenticates a user by email and password and returns a signed
// session token alongside the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	var users []models.User
	if err := s.store.GetDocuments(ctx, models.UserCollection, bson.M{"email": email}, &users); err != nil {
		return "", models.User{}, err
	}
	if len(users) == 0 {
		return "", models.User{}, ErrInvalidCredentials
	}

	user := users[0]
	if !VerifyPassword(password, user.PasswordHash) {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := GenerateToken(user, s.jwtSecret)
	if err != nil {
		return "", models.User{}, err
	}

	return token, user, nil
}

// UserByID looks up a single user by its hex identifier.
func (s *AuthService) UserByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrInvalidID
	}

	var users []models.User
	if err := s.store.GetDocuments(ctx, models.UserCollection, bson.M{"_id": oid}, &users); err != nil {
		return models.User{}, err
	}
	if len(users) == 0 {
		return models.User{}, ErrNotFound
	}
	return users[0], nil
}
