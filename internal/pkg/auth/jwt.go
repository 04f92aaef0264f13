package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWT errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidFormat = errors.New("invalid token format")
	ErrRoleMismatch  = errors.New("token does not carry the required role claim")
)

// Role identifies which verifier a token is meant for.
type Role string

const (
	RoleStudent Role = "student"
	RoleWarden  Role = "warden"
	RoleSupport Role = "support"
)

// JWTConfig defines JWT configuration settings. Each role signs with its own
// secret; roles without an explicit secret fall back to a key derived from the
// base secret, so a single-key deployment still gets distinct signing keys.
type JWTConfig struct {
	SecretKey      string
	StudentSecret  string
	WardenSecret   string
	SupportSecret  string
	AccessTokenExp time.Duration
	TokenIssuer    string
}

// JWTService issues and verifies role-scoped tokens.
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	if config.StudentSecret == "" {
		config.StudentSecret = config.SecretKey + "/" + string(RoleStudent)
	}
	if config.WardenSecret == "" {
		config.WardenSecret = config.SecretKey + "/" + string(RoleWarden)
	}
	if config.SupportSecret == "" {
		config.SupportSecret = config.SecretKey + "/" + string(RoleSupport)
	}
	return &JWTService{
		config: config,
	}
}

// Claims defines JWT token content. Exactly one of RollNo, WardenID and DName
// is set; middleware and existing clients dispatch on field presence, so the
// field names are part of the wire contract. The Role tag binds the claim
// shape explicitly on top of that.
type Claims struct {
	RollNo   string `json:"roll_no,omitempty"`
	WardenID string `json:"warden_id,omitempty"`
	DName    string `json:"d_name,omitempty"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (s *JWTService) secretFor(role Role) []byte {
	switch role {
	case RoleStudent:
		return []byte(s.config.StudentSecret)
	case RoleWarden:
		return []byte(s.config.WardenSecret)
	case RoleSupport:
		return []byte(s.config.SupportSecret)
	}
	return []byte(s.config.SecretKey)
}

func (s *JWTService) issue(claims *Claims, role Role) (string, error) {
	now := time.Now()
	claims.Role = string(role)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTokenExp)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    s.config.TokenIssuer,
		ID:        uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretFor(role))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// IssueStudentToken creates a token carrying a student's roll number.
func (s *JWTService) IssueStudentToken(rollNo string) (string, error) {
	return s.issue(&Claims{RollNo: rollNo}, RoleStudent)
}

// IssueWardenToken creates a token carrying a warden id.
func (s *JWTService) IssueWardenToken(wardenID string) (string, error) {
	return s.issue(&Claims{WardenID: wardenID}, RoleWarden)
}

// IssueSupportToken creates a token carrying a support department name.
func (s *JWTService) IssueSupportToken(dName string) (string, error) {
	return s.issue(&Claims{DName: dName}, RoleSupport)
}

// Verify validates a token against the signing key and claim shape of the
// expected role. A token that parses cleanly but lacks the role's
// discriminator field is rejected with ErrRoleMismatch.
func (s *JWTService) Verify(tokenString string, role Role) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretFor(role), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Role != "" && claims.Role != string(role) {
		return nil, ErrRoleMismatch
	}

	switch role {
	case RoleStudent:
		if claims.RollNo == "" {
			return nil, ErrRoleMismatch
		}
	case RoleWarden:
		if claims.WardenID == "" {
			return nil, ErrRoleMismatch
		}
	case RoleSupport:
		if claims.DName == "" {
			return nil, ErrRoleMismatch
		}
	}

	return claims, nil
}

// VerifyStudent validates a student token and returns its claims.
func (s *JWTService) VerifyStudent(tokenString string) (*Claims, error) {
	return s.Verify(tokenString, RoleStudent)
}

// VerifyWarden validates a warden token and returns its claims.
func (s *JWTService) VerifyWarden(tokenString string) (*Claims, error) {
	return s.Verify(tokenString, RoleWarden)
}

// VerifySupport validates a support admin token and returns its claims.
func (s *JWTService) VerifySupport(tokenString string) (*Claims, error) {
	return s.Verify(tokenString, RoleSupport)
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}

	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	return "", ErrInvalidFormat
}
