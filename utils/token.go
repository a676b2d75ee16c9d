package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MealImageKey builds a unique S3 object key for an uploaded meal photo.
func MealImageKey(userID uint, ext string) string {
	return fmt.Sprintf("meal-images/%d/%d-%s%s",
		userID,
		time.Now().Unix(),
		uuid.NewString(),
		ext,
	)
}
