package user

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetUserByID fetches an account record by its ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, ErrAccountDataNotFound
	}
	return userRec, nil
}

// UpdateUser patches the mutable profile fields. Empty fields are ignored.
func (s *DefaultUserService) UpdateUser(req models.UserUpdateRequest) (*models.User, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.PhoneNumber != "" {
		set["phoneNumber"] = req.PhoneNumber
	}
	if req.FCMToken != "" {
		set["fcmToken"] = req.FCMToken
	}

	if err := s.Repo.UpdateWithDocument(req.ID, bson.M{"$set": set}); err != nil {
		utils.GetLogger().Error("Failed to update user", zap.Error(err))
		return nil, fmt.Errorf("failed to update profile, please try again")
	}
	return s.GetUserByID(req.ID)
}

// DeleteUser removes the account record and its cached session.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		utils.GetLogger().Error("Failed to delete user", zap.Error(err))
		return fmt.Errorf("failed to delete account, please try again")
	}

	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Error("Failed to clear auth cache", zap.Error(err))
	}
	return nil
}
