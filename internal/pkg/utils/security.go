package utils

import (
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateIDToken signs a token whose only claim is the subject document ID.
// Doctor and patient sessions both use this shape.
func GenerateIDToken(id, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constvars.TokenIDClaimKey: id,
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	return tokenString, nil
}

// GenerateCredentialToken signs the admin credential string itself. The admin
// has no database document, so verification is a string comparison on parse.
func GenerateCredentialToken(credential, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constvars.AdminTokenCredentialKey: credential,
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	return tokenString, nil
}

func ParseIDToken(tokenString, secret string) (string, error) {
	claims, err := parseClaims(tokenString, secret)
	if err != nil {
		return "", err
	}
	if id, ok := claims[constvars.TokenIDClaimKey].(string); ok && id != "" {
		return id, nil
	}
	return "", exceptions.ErrTokenInvalid(nil)
}

func ParseCredentialToken(tokenString, secret string) (string, error) {
	claims, err := parseClaims(tokenString, secret)
	if err != nil {
		return "", err
	}
	if credential, ok := claims[constvars.AdminTokenCredentialKey].(string); ok && credential != "" {
		return credential, nil
	}
	return "", exceptions.ErrTokenInvalid(nil)
}

func parseClaims(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalid(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, exceptions.ErrTokenInvalid(nil)
	}
	return claims, nil
}
