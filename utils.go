package main

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"

	"github.com/rehan-adi/Blog-Backend/models"
)

func LoadConfig() (models.Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		return models.Config{}, err
	}
	config := models.Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		CacheHost:     os.Getenv("CACHE_HOST"),
		CachePort:     os.Getenv("CACHE_PORT"),
		CachePassword: os.Getenv("CACHE_PASSWORD"),

		ServerHost: os.Getenv("SERVER_HOST"),
		ServerPort: os.Getenv("SERVER_PORT"),

		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
	}
	pubB64 := os.Getenv("JWT_PUBLIC_KEY")
	pubBytes, err := base64.StdEncoding.DecodeString(pubB64)
	if err != nil {
		return models.Config{}, errors.New("failed intialization of config")
	}
	config.JWTPublicKey = pubBytes
	return config, nil
}

func ValidateToken(token string, config models.Config) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithAudience("blog_backend"),
		jwt.WithIssuer("users_service"),
	)
	claims := jwt.RegisteredClaims{}
	parse, err := parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return ed25519.PublicKey(config.JWTPublicKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errors.New("token expired")
		}
		return "", err
	}
	if !parse.Valid {
		return "", errors.New("token is not valid")
	}
	if claims.Subject == "" {
		return "", errors.New("token is not valid")
	}
	return claims.Subject, nil
}
