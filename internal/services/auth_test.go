package services_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mdayat/prayer-tracker/configs"
	"github.com/mdayat/prayer-tracker/internal/services"
)

func TestAccessToken(t *testing.T) {
	env := configs.Env{SecretKey: "secret", OriginURL: "http://localhost:8080"}
	authService := services.NewAuthService(configs.NewConfigs(env, configs.Db{}, nil))

	t.Run("ValidateAccessToken/Success", func(t *testing.T) {
		token, err := authService.CreateAccessToken("user-1", time.Hour)
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		claims, err := authService.ValidateAccessToken(token)
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		if claims.Subject != "user-1" || claims.Type != services.Access {
			t.Fatalf("unexpected claims: %+v", claims)
		}
	})

	t.Run("ValidateAccessToken/Expired", func(t *testing.T) {
		token, err := authService.CreateAccessToken("user-1", -time.Minute)
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		if _, err := authService.ValidateAccessToken(token); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("ValidateAccessToken/Missing token type", func(t *testing.T) {
		now := time.Now()
		claims := jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    env.OriginURL,
			Subject:   "user-1",
		}

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(env.SecretKey))
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		if _, err := authService.ValidateAccessToken(token); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("ValidateAccessToken/Wrong secret", func(t *testing.T) {
		other := services.NewAuthService(configs.NewConfigs(configs.Env{SecretKey: "other", OriginURL: env.OriginURL}, configs.Db{}, nil))
		token, err := other.CreateAccessToken("user-1", time.Hour)
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		if _, err := authService.ValidateAccessToken(token); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
