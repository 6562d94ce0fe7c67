package user

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const authTokenTTL = 72 * time.Hour

// RegisterUser creates a new account, generates a token, and caches its hash.
func (s *DefaultUserService) RegisterUser(user models.User) (*AuthResponse, error) {
	if user.Email == "" || user.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if user.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !models.IsValidRole(user.Role) {
		return nil, fmt.Errorf("role must be %q or %q", models.RoleCustomer, models.RoleBarber)
	}
	if len(user.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters long")
	}

	// Check for an existing account.
	existing, err := s.Repo.GetByEmail(user.Email)
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	user.PasswordHash = string(hashedPassword)
	user.Password = "" // Clear plain-text password

	user.ID = uuid.New().String()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	token, err := utils.GenerateToken(user.ID, user.Email, authTokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	user.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&user); err != nil {
		utils.GetLogger().Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	s.cacheTokenHash(user.ID, user.TokenHash)

	return &AuthResponse{
		ID:          user.ID,
		Token:       token,
		Role:        user.Role,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
	}, nil
}

// AuthenticateUser verifies credentials, rotates the token, and refreshes the cache.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user for authentication", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, authTokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	tokenHash := utils.HashToken(token)
	update := bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}}
	if err := s.Repo.UpdateWithDocument(userRec.ID, update); err != nil {
		utils.GetLogger().Error("Failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	s.cacheTokenHash(userRec.ID, tokenHash)

	return &AuthResponse{
		ID:          userRec.ID,
		Token:       token,
		Role:        userRec.Role,
		Name:        userRec.Name,
		Email:       userRec.Email,
		PhoneNumber: userRec.PhoneNumber,
	}, nil
}

// SignOutUser revokes the current token by clearing its stored hash and cache entry.
func (s *DefaultUserService) SignOutUser(userID string) error {
	update := bson.M{"$unset": bson.M{"tokenHash": ""}}
	if err := s.Repo.UpdateWithDocument(userID, update); err != nil {
		utils.GetLogger().Error("Failed to clear token hash", zap.Error(err))
		return fmt.Errorf("sign out failed, please try again")
	}

	cacheKey := utils.AuthCachePrefix + userID
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Error("Failed to clear auth cache", zap.Error(err))
	}
	return nil
}

// cacheTokenHash stores the token hash in the auth cache. Failures only log;
// the middleware falls back to Mongo on a cache miss.
func (s *DefaultUserService) cacheTokenHash(userID, tokenHash string) {
	cacheKey := utils.AuthCachePrefix + userID
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, authTokenTTL).Err(); err != nil {
		utils.GetLogger().Error("Failed to cache auth token hash", zap.Error(err))
	}
}
