package services

import (
	"errors"

	"github.com/HarshaVardhank74/Nutricook/config"
	"github.com/HarshaVardhank74/Nutricook/models"
)

type ProfileInput struct {
	Age              int    `json:"age"`
	HealthConditions string `json:"health_conditions"`
}

func FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "username = ?", username)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, id)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":                 user.ID,
		"username":           user.Username,
		"age":                user.Age,
		"health_conditions":  user.HealthConditions,
		"total_health_score": user.TotalHealthScore,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	user, err := FindUserByID(userID)
	if err != nil {
		return err
	}

	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.HealthConditions != "" {
		user.HealthConditions = input.HealthConditions
	}

	return config.DB.Save(user).Error
}
