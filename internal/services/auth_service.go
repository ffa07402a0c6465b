package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/database"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account has been disabled")
)

// LoginUser authenticates by email and password and issues a token.
// Disabled accounts fail here too, not only on subsequent requests.
func LoginUser(email, password, secret string, ttl time.Duration) (string, *models.User, error) {
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !user.Active {
		return "", nil, ErrAccountDisabled
	}

	token, err := utils.GenerateToken(user.ID, user.Role, secret, ttl)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}
