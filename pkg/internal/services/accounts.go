package services

import (
	"fmt"
	"strings"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func GetUser(username string) (models.User, error) {
	var user models.User
	if err := database.C.Where("username = ?", username).First(&user).Error; err != nil {
		return user, err
	}
	return user, nil
}

func GetUserWithID(id uint) (models.User, error) {
	var user models.User
	if err := database.C.Where("id = ?", id).First(&user).Error; err != nil {
		return user, fmt.Errorf("unable to get user by id: %w", err)
	}
	return user, nil
}

func NewUser(username, nick, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("unable to hash password: %v", err)
	}

	user := models.User{
		Username: strings.TrimSpace(username),
		Nick:     strings.TrimSpace(nick),
		Password: string(hash),
	}

	var count int64
	if err := database.C.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return user, err
	} else if count > 0 {
		return user, fmt.Errorf("username %s was already taken", user.Username)
	}

	if err := database.C.Create(&user).Error; err != nil {
		return user, fmt.Errorf("unable to create user: %v", err)
	}

	log.Info().Uint("id", user.ID).Str("username", user.Username).Msg("New user signed up.")
	return user, nil
}

// AuthenticateUser checks the password, both an unknown username and a wrong password give the same error.
func AuthenticateUser(username, password string) (models.User, error) {
	user, err := GetUser(strings.TrimSpace(username))
	if err != nil {
		return user, fmt.Errorf("invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return user, fmt.Errorf("invalid username or password")
	}
	return user, nil
}
