package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/pingpong-league/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/pingpong-league/internal/platform/id"
)

func newAuthService() *AuthService {
	return NewAuthService(memory.NewPlayerRepository(), idgen.NewRandomGenerator(), "test-secret", time.Hour)
}

func TestAuthService_RegisterAndVerify(t *testing.T) {
	t.Parallel()

	service := newAuthService()

	result, err := service.Register(context.Background(), RegisterInput{
		Name:  "Alice",
		Email: "alice@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.NotZero(t, result.Player.ID)
	assert.Equal(t, "Alice", result.Player.Name)

	principal, err := service.VerifyAccessToken(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Player.ID, principal.PlayerID)
	assert.Equal(t, "Alice", principal.Name)
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	service := newAuthService()

	_, err := service.Register(context.Background(), RegisterInput{Email: "a@example.com"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.Register(context.Background(), RegisterInput{Name: "Alice"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	service := newAuthService()

	_, err := service.Register(context.Background(), RegisterInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), RegisterInput{Name: "Someone Else", Email: "alice@example.com"})
	require.ErrorIs(t, err, ErrConflict)
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	service := newAuthService()

	_, err := service.Register(context.Background(), RegisterInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	result, err := service.Login(context.Background(), LoginInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	// Name and email must both match the same player.
	_, err = service.Login(context.Background(), LoginInput{Name: "Bob", Email: "alice@example.com"})
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = service.Login(context.Background(), LoginInput{Name: "Alice", Email: "bob@example.com"})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_VerifyAccessToken_Rejections(t *testing.T) {
	t.Parallel()

	service := newAuthService()

	_, err := service.VerifyAccessToken(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ErrUnauthorized)

	other := NewAuthService(memory.NewPlayerRepository(), idgen.NewRandomGenerator(), "other-secret", time.Hour)
	result, err := other.Register(context.Background(), RegisterInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	// Signed with a different secret.
	_, err = service.VerifyAccessToken(context.Background(), result.Token)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_VerifyAccessToken_Expired(t *testing.T) {
	t.Parallel()

	service := newAuthService()

	result, err := service.Register(context.Background(), RegisterInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	service.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = service.VerifyAccessToken(context.Background(), result.Token)
	require.ErrorIs(t, err, ErrUnauthorized)
}
