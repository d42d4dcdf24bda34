package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// ErrWrongTokenType is returned when a token of the wrong kind is presented.
var ErrWrongTokenType = errors.New("wrong token type")

// JWTClaims custom claims for JWT
type JWTClaims struct {
	UserID    int64  `json:"user_id"`
	UserType  int    `json:"user_type"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTUtil provides JWT generation and validation
type JWTUtil struct {
	secretKey  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTUtil creates a new JWTUtil
func NewJWTUtil(secretKey string, accessTTL, refreshTTL time.Duration) *JWTUtil {
	return &JWTUtil{secretKey: secretKey, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// GenerateTokenPair issues a short-lived access token and a longer-lived
// refresh token for the same user.
func (ju *JWTUtil) GenerateTokenPair(userID int64, userType int) (access, refresh string, err error) {
	access, err = ju.GenerateAccessToken(userID, userType)
	if err != nil {
		return "", "", err
	}
	refresh, err = ju.GenerateRefreshToken(userID, userType)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// GenerateAccessToken generates a token accepted by the API
func (ju *JWTUtil) GenerateAccessToken(userID int64, userType int) (string, error) {
	return ju.generate(userID, userType, TokenTypeAccess, ju.accessTTL)
}

// GenerateRefreshToken generates a token that is never accepted as an access token
func (ju *JWTUtil) GenerateRefreshToken(userID int64, userType int) (string, error) {
	return ju.generate(userID, userType, TokenTypeRefresh, ju.refreshTTL)
}

func (ju *JWTUtil) generate(userID int64, userType int, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID:    userID,
		UserType:  userType,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ju.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates the JWT token
func (ju *JWTUtil) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ju.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ValidateAccessToken validates the token and rejects anything but an access token.
func (ju *JWTUtil) ValidateAccessToken(tokenString string) (*JWTClaims, error) {
	claims, err := ju.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
