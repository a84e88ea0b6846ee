package services

import (
	"errors"
	"fmt"
	"gin-foody/repositories"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens expire one hour after issue.
const tokenTTL = time.Hour

type IAuthService interface {
	CreateToken(payload map[string]interface{}) (*string, error)
	VerifyToken(tokenString string) (jwt.MapClaims, error)
	Logout(tokenString string) error
}

type AuthService struct {
	tokenRepository repositories.ITokenRepository
}

func NewAuthService(tokenRepository repositories.ITokenRepository) IAuthService {
	return &AuthService{tokenRepository: tokenRepository}
}

// CreateToken signs whatever claim object the caller supplies, adding
// the expiry.
func (s *AuthService) CreateToken(payload map[string]interface{}) (*string, error) {
	claims := jwt.MapClaims{}
	for key, value := range payload {
		claims[key] = value
	}
	claims["exp"] = time.Now().Add(tokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(os.Getenv("SECRET_KEY")))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

// VerifyToken checks signature, expiry and the blacklist, returning the
// decoded claims.
func (s *AuthService) VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	if err != nil {
		return nil, err
	}

	isBlacklisted, err := s.tokenRepository.IsBlacklisted(tokenString)
	if err != nil {
		return nil, err
	}
	if isBlacklisted {
		return nil, errors.New("token is blacklisted")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

func (s *AuthService) Logout(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(tokenTTL).Unix()
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = int64(exp)
		}
	}

	return s.tokenRepository.Blacklist(tokenString, expiresAt)
}

// ClaimsEmail extracts the identity claim the middleware stores in the
// request context.
func ClaimsEmail(claims jwt.MapClaims) string {
	if email, ok := claims["email"].(string); ok {
		return email
	}
	return ""
}
