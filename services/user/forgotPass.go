package user

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"

	"barberbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 15 * time.Minute

func resetCacheKey(email string) string {
	return "reset:" + email
}

// generateResetToken returns a short random token for password reset emails.
func generateResetToken() (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf), nil
}

// RequestPasswordReset issues a short-lived reset token for the account.
// It succeeds silently for unknown emails to avoid account enumeration.
func (s *DefaultUserService) RequestPasswordReset(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}

	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("RequestPasswordReset: failed to fetch user", zap.Error(err))
		return fmt.Errorf("failed to request password reset, please try again")
	}
	if userRec == nil {
		return nil
	}

	token, err := generateResetToken()
	if err != nil {
		utils.GetLogger().Error("RequestPasswordReset: token generation failed", zap.Error(err))
		return fmt.Errorf("failed to request password reset, please try again")
	}

	resetCache := utils.GetResetCacheClient()
	if err := resetCache.Set(context.Background(), resetCacheKey(email), token, resetTokenTTL).Err(); err != nil {
		utils.GetLogger().Error("RequestPasswordReset: failed to store reset token", zap.Error(err))
		return fmt.Errorf("failed to request password reset, please try again")
	}

	// Mail delivery is handled out of band; record the dispatch here.
	utils.GetLogger().Info("Password reset token dispatched",
		zap.String("userId", userRec.ID),
		zap.String("email", email),
	)
	return nil
}

// ConfirmPasswordReset verifies the reset token and sets the new password.
// Any previously issued auth token is revoked.
func (s *DefaultUserService) ConfirmPasswordReset(email, resetToken, newPassword string) error {
	if email == "" || resetToken == "" {
		return ErrInvalidResetToken
	}
	if len(newPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	resetCache := utils.GetResetCacheClient()
	stored, err := resetCache.Get(context.Background(), resetCacheKey(email)).Result()
	if err != nil || stored != resetToken {
		return ErrInvalidResetToken
	}

	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("ConfirmPasswordReset: failed to fetch user", zap.Error(err))
		return fmt.Errorf("failed to reset password, please try again")
	}
	if userRec == nil {
		return ErrInvalidResetToken
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("ConfirmPasswordReset: failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to reset password, please try again")
	}

	update := bson.M{
		"$set":   bson.M{"passwordHash": string(newHash), "updatedAt": time.Now()},
		"$unset": bson.M{"tokenHash": ""},
	}
	if err := s.Repo.UpdateWithDocument(userRec.ID, update); err != nil {
		utils.GetLogger().Error("ConfirmPasswordReset: failed to update password", zap.Error(err))
		return fmt.Errorf("failed to reset password, please try again")
	}

	if err := resetCache.Del(context.Background(), resetCacheKey(email)).Err(); err != nil {
		utils.GetLogger().Error("ConfirmPasswordReset: failed to clear reset token", zap.Error(err))
	}

	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), utils.AuthCachePrefix+userRec.ID).Err(); err != nil {
		utils.GetLogger().Error("ConfirmPasswordReset: failed to clear auth cache", zap.Error(err))
	}
	return nil
}
