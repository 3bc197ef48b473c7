// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	userModel "jurnalguru_backend/internals/features/users/user/model"
)

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID              uuid.UUID      `json:"id"`
	UserName        string         `json:"user_name"`
	Email           string         `json:"email"`
	UserPreferences datatypes.JSON `json:"user_preferences,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

func ToUserResponse(m userModel.UserModel) UserResponse {
	return UserResponse{
		ID:              m.ID,
		UserName:        m.UserName,
		Email:           m.Email,
		UserPreferences: m.UserPreferences,
		CreatedAt:       m.CreatedAt,
	}
}

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type UpdatePreferencesRequest struct {
	UserPreferences datatypes.JSON `json:"user_preferences" validate:"required"`
}

type UpdateUserNameRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
}
