package service

import (
	"testing"
	"time"

	"nfg/fitness-site/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T, cfg config.AdminConfig) AuthService {
	t.Helper()
	throttle := NewLoginThrottle(5, 15*time.Minute)
	return NewAuthService(NewEnvCredentials(cfg), throttle, "test-secret", time.Hour)
}

func TestLoginWithPlainPassword(t *testing.T) {
	svc := newTestAuthService(t, config.AdminConfig{Username: "admin", Password: "s3cret"})

	token, err := svc.Login("10.0.0.1", "admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("10.0.0.1", "admin", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, err = svc.Login("10.0.0.1", "someone", "s3cret")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestLoginHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-pw"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := newTestAuthService(t, config.AdminConfig{
		Username:     "admin",
		Password:     "plain-pw",
		PasswordHash: string(hash),
	})

	_, err = svc.Login("10.0.0.1", "admin", "hashed-pw")
	assert.NoError(t, err)

	// With a hash configured the plain password must not work.
	_, err = svc.Login("10.0.0.1", "admin", "plain-pw")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(t, config.AdminConfig{Username: "admin", Password: "s3cret"})

	token, err := svc.Login("10.0.0.1", "admin", "s3cret")
	require.NoError(t, err)

	subject, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(t, config.AdminConfig{Username: "admin", Password: "s3cret"})

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	svcA := newTestAuthService(t, config.AdminConfig{Username: "admin", Password: "s3cret"})
	throttle := NewLoginThrottle(5, 15*time.Minute)
	svcB := NewAuthService(NewEnvCredentials(config.AdminConfig{Username: "admin", Password: "s3cret"}), throttle, "other-secret", time.Hour)

	token, err := svcA.Login("10.0.0.1", "admin", "s3cret")
	require.NoError(t, err)

	_, err = svcB.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestLoginThrottleBlocksAfterLimit(t *testing.T) {
	svc := newTestAuthService(t, config.AdminConfig{Username: "admin", Password: "s3cret"})

	for i := 0; i < 5; i++ {
		_, err := svc.Login("10.0.0.9", "admin", "wrong")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	}

	// Sixth attempt from the same address is blocked even with good creds.
	_, err := svc.Login("10.0.0.9", "admin", "s3cret")
	assert.ErrorIs(t, err, ErrTooManyAttempts)

	// A different address is unaffected.
	_, err = svc.Login("10.0.0.10", "admin", "s3cret")
	assert.NoError(t, err)
}

func TestThrottleWindowExpires(t *testing.T) {
	throttle := NewLoginThrottle(2, 15*time.Minute)
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	throttle.now = func() time.Time { return current }

	throttle.RecordFailure("ip")
	throttle.RecordFailure("ip")
	assert.False(t, throttle.Allowed("ip"))

	current = current.Add(16 * time.Minute)
	assert.True(t, throttle.Allowed("ip"))
}

func TestThrottleClearOnSuccess(t *testing.T) {
	svc := newTestAuthService(t, config.AdminConfig{Username: "admin", Password: "s3cret"})

	for i := 0; i < 4; i++ {
		_, _ = svc.Login("10.0.0.9", "admin", "wrong")
	}
	_, err := svc.Login("10.0.0.9", "admin", "s3cret")
	require.NoError(t, err)

	// The counter reset; four more failures fit inside the limit again.
	for i := 0; i < 4; i++ {
		_, err := svc.Login("10.0.0.9", "admin", "wrong")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	}
}
