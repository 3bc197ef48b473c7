package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName        string         `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email           string         `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password        string         `gorm:"not null" json:"-" validate:"required,min=8"`
	GoogleID        *string        `gorm:"size:255;unique" json:"google_id,omitempty"`
	UserPreferences datatypes.JSON `gorm:"column:user_preferences" json:"user_preferences,omitempty"`
	IsActive        bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var msg string
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			msg += fieldErr.Field() + " wajib diisi. "
		case "email":
			msg += "Format email tidak valid. "
		case "min":
			msg += fieldErr.Field() + " minimal " + fieldErr.Param() + " karakter. "
		case "max":
			msg += fieldErr.Field() + " maksimal " + fieldErr.Param() + " karakter. "
		default:
			msg += fieldErr.Field() + " tidak valid. "
		}
	}
	return errors.New(msg)
}
