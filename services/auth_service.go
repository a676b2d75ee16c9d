package services

import (
	"errors"

	"github.com/HarshaVardhank74/Nutricook/config"
	"github.com/HarshaVardhank74/Nutricook/models"
	"github.com/HarshaVardhank74/Nutricook/utils"

	"gorm.io/gorm"
)

var ErrUsernameTaken = errors.New("username already exists")

func RegisterUser(username, password string, age int, healthConditions string) error {
	var existing models.User
	err := config.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Username:         username,
		PasswordHash:     hashedPassword,
		Age:              age,
		HealthConditions: healthConditions,
	}
	return config.DB.Create(&user).Error
}

func AuthenticateUser(username, password string) (string, error) {
	var user models.User
	result := config.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Username)
}
