package service

import (
	"errors"
	"time"

	"nfg/fitness-site/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrAuthenticationFailed = errors.New("authentication failed: invalid username or password")
	ErrTooManyAttempts      = errors.New("too many failed login attempts")
	ErrTokenInvalid         = errors.New("session token is invalid or expired")
)

// CredentialVerifier abstracts how the admin identity is checked, so the
// env-variable model can be swapped for a real identity provider without
// touching route logic.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// envCredentials is the single-admin model: one username, with either a
// bcrypt hash or a plain password from configuration. The hash wins when set.
type envCredentials struct {
	username     string
	password     string
	passwordHash string
}

// NewEnvCredentials builds a CredentialVerifier from the admin config.
func NewEnvCredentials(cfg config.AdminConfig) CredentialVerifier {
	return &envCredentials{
		username:     cfg.Username,
		password:     cfg.Password,
		passwordHash: cfg.PasswordHash,
	}
}

func (c *envCredentials) Verify(username, password string) bool {
	if username != c.username {
		return false
	}
	if c.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.passwordHash), []byte(password)) == nil
	}
	return password == c.password
}

// AuthService authenticates the admin and mints/validates session tokens.
type AuthService interface {
	// Login verifies credentials, subject to per-IP throttling, and returns a
	// signed session token on success.
	Login(ip, username, password string) (string, error)
	// ValidateToken returns the subject of a valid session token.
	ValidateToken(token string) (string, error)
	SessionTTL() time.Duration
}

type authService struct {
	verifier      CredentialVerifier
	throttle      *LoginThrottle
	sessionSecret string
	sessionTTL    time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(verifier CredentialVerifier, throttle *LoginThrottle, sessionSecret string, sessionTTL time.Duration) AuthService {
	if sessionSecret == "" {
		panic("session secret cannot be empty")
	}
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &authService{
		verifier:      verifier,
		throttle:      throttle,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
	}
}

// sessionClaims is the payload of the session cookie.
type sessionClaims struct {
	jwt.RegisteredClaims
}

func (s *authService) Login(ip, username, password string) (string, error) {
	if !s.throttle.Allowed(ip) {
		return "", ErrTooManyAttempts
	}

	if !s.verifier.Verify(username, password) {
		s.throttle.RecordFailure(ip)
		return "", ErrAuthenticationFailed
	}
	s.throttle.Clear(ip)

	now := time.Now()
	claims := &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "fitness-site",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.sessionSecret))
}

func (s *authService) ValidateToken(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(s.sessionSecret), nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}

func (s *authService) SessionTTL() time.Duration {
	return s.sessionTTL
}
