// File: internal/service/authentication.go
package service

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"expense-tracker/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL 存取令牌有效期
const TokenTTL = 24 * time.Hour

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// 測試可覆寫
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

var errMissingSecret = errors.New("JWT_SECRET not set")

func signingKey() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errMissingSecret
	}
	return []byte(secret), nil
}

// IssueAccessToken 依據使用者資訊與 TTL 產生 HS256 JWT
func IssueAccessToken(user model.User, ttl time.Duration) (string, error) {
	key, err := signingKey()
	if err != nil {
		return "", err
	}

	now := timeNow()
	claims := CustomClaims{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// VerifyAccessToken 驗證簽章與到期時間並解析 JWT
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	key, err := signingKey()
	if err != nil {
		return nil, err
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return key, nil
	}, jwt.WithTimeFunc(timeNow), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
