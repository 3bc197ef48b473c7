// internals/features/users/auth/service/token_service.go
package service

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"jurnalguru_backend/internals/configs"
	userModel "jurnalguru_backend/internals/features/users/user/model"
)

const accessTTLDefault = 24 * time.Hour

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET belum diset")
	}
	return secret, nil
}

func accessTTL() time.Duration {
	if v := os.Getenv("ACCESS_TOKEN_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Hour
		}
	}
	return accessTTLDefault
}

func buildAccessClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       user.ID.String(),
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL()).Unix(),
	}
}

// IssueAccessToken menandatangani JWT HS256 untuk user
func IssueAccessToken(user userModel.UserModel) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, nowUTC()))
	return token.SignedString([]byte(secret))
}

// ResolveBlacklistTTL: sisa umur token + buffer, supaya blacklist
// otomatis kadaluarsa tidak lama setelah tokennya sendiri.
func ResolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	secret, err := getJWTSecret()
	if err != nil || accessToken == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				until := time.Until(time.Unix(int64(exp), 0))
				if until > 0 {
					return until + 60*time.Second
				}
				return time.Minute
			}
		}
	}
	return ttl
}

// GetRawAccessToken: ambil token mentah dari Authorization header atau cookie
func GetRawAccessToken(authHeader, cookieToken string) string {
	authHeader = strings.TrimSpace(authHeader)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return strings.TrimSpace(cookieToken)
}
