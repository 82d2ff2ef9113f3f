package helper

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"nzoo_immo/config"
	"nzoo_immo/database"
	"nzoo_immo/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// jwtSecret est lu à chaque usage: une capture à l'init du package
// précéderait le chargement du .env et signerait avec un secret vide.
func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByUsername(u string) (*model.AdminUser, error) {
	db := database.DB
	var user model.AdminUser
	if err := db.Where(&model.AdminUser{Username: u}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["userId"] = tokenClaim.UserId
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(jwtSecret())
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["userId"] = tokenClaim.UserId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(jwtSecret())
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})

	return token, err
}

// GetInfoUserFromToken relit le compte depuis la base pour chaque appel
// privilégié: le rôle fait foi en base, pas dans le token.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, *model.AdminUser, bool) {
	raw := c.Locals("user")
	token, ok := raw.(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, nil, false
	}

	userIdFloat, ok := claims["userId"].(float64)
	if !ok {
		return model.TokenClaim{}, nil, false
	}
	username, _ := claims["username"].(string)

	var user model.AdminUser
	if err := database.DB.First(&user, uint(userIdFloat)).Error; err != nil {
		return model.TokenClaim{}, nil, false
	}
	if !user.IsActive {
		return model.TokenClaim{}, nil, false
	}

	claim := model.TokenClaim{
		UserId:   user.ID,
		Username: username,
		Role:     user.Role,
	}
	return claim, &user, true
}
