package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/civicdesk/civicdesk/internal/shared/authorization"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims identify the caller. Role is resolved at issue time; a role change takes
// effect on the next refresh.
type Claims struct {
	UserID    uint                   `json:"user_id"`
	IsStaff   bool                   `json:"is_staff"`
	Role      authorization.UserRole `json:"role"`
	SessionID string                 `json:"session_id"`
	TokenType TokenType              `json:"token_type"`
	jwt.RegisteredClaims
}

// RemainingTTL is how long the token stays valid after now; zero once expired.
func (c *Claims) RemainingTTL(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	if ttl := c.ExpiresAt.Time.Sub(now); ttl > 0 {
		return ttl
	}
	return 0
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// Identity is what a token pair is issued for.
type Identity struct {
	UserID  uint
	IsStaff bool
	Role    authorization.UserRole
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
	refreshExpDays   int
}

func NewJWTService(secret string, accessExpMinutes, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		refreshExpDays:   refreshExpDays,
	}
}

// Generate issues an access/refresh pair under a fresh session id.
func (s *JWTService) Generate(id Identity) (*TokenPair, error) {
	return s.issuePair(id, uuid.NewString())
}

func (s *JWTService) issuePair(id Identity, sessionID string) (*TokenPair, error) {
	now := biztime.NowUTC()

	access, err := s.sign(id, sessionID, TokenTypeAccess, now, time.Duration(s.accessExpMinutes)*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.sign(id, sessionID, TokenTypeRefresh, now, time.Duration(s.refreshExpDays)*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessExpMinutes * 60),
	}, nil
}

func (s *JWTService) sign(id Identity, sessionID string, tokenType TokenType, now time.Time, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:    id.UserID,
		IsStaff:   id.IsStaff,
		Role:      id.Role,
		SessionID: sessionID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", id.UserID),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// VerifyRefresh accepts only refresh tokens.
func (s *JWTService) VerifyRefresh(tokenString string) (*Claims, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, fmt.Errorf("token is not a refresh token")
	}
	return claims, nil
}

// Rotate issues a new pair for id under a fresh session. The caller revokes the
// session of the refresh token being replaced so it cannot be replayed.
func (s *JWTService) Rotate(previous *Claims, id Identity) (*TokenPair, error) {
	if previous == nil || previous.TokenType != TokenTypeRefresh {
		return nil, fmt.Errorf("rotation requires refresh token claims")
	}
	return s.issuePair(id, uuid.NewString())
}

// AccessExpMinutes returns the access token expiration time in minutes
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
