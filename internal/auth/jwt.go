package auth

import (
	"fmt"
	"strconv"
	"time"

	"flowdeck-api/internal/config"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// Claims carries the username claim on top of the registered claim set.
// Subject is the decimal user id, Id is a unique-per-issuance jti.
type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// TokenService issues and validates the bearer tokens used by every
// authenticated route.
type TokenService struct {
	Config *config.Config
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{Config: cfg}
}

// GenerateToken produces a signed HS256 token for a verified identity
func (s *TokenService) GenerateToken(userID int64, username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Id:        uuid.New().String(),
			Issuer:    s.Config.JwtIssuer,
			Audience:  s.Config.JwtAudience,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(s.Config.JwtExpiryMinutes) * time.Minute).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Config.JwtKey)
}

// ParseToken validates signature, lifetime, issuer and audience, and
// returns the claims and the numeric user id carried in the subject.
func (s *TokenService) ParseToken(tokenStr string) (*Claims, int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.Config.JwtKey, nil
	})
	if err != nil {
		return nil, 0, err
	}
	if !token.Valid {
		return nil, 0, jwt.NewValidationError("token is not valid", jwt.ValidationErrorClaimsInvalid)
	}
	if !claims.VerifyIssuer(s.Config.JwtIssuer, true) {
		return nil, 0, jwt.NewValidationError("invalid issuer", jwt.ValidationErrorIssuer)
	}
	if !claims.VerifyAudience(s.Config.JwtAudience, true) {
		return nil, 0, jwt.NewValidationError("invalid audience", jwt.ValidationErrorAudience)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid subject claim %q: %w", claims.Subject, err)
	}
	return claims, userID, nil
}
