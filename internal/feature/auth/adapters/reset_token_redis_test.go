package adapters

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readit_backend/internal/feature/auth/usecase"
)

func TestResetTokenRedis_Issue(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewResetTokenRedis(client, "forget-password")

	// トークンは発行時にランダム生成されるためキーは正規表現で照合する
	mock.Regexp().ExpectSet(`forget-password:.+`, `\d+`, ResetTokenTTL).SetVal("OK")

	token, err := repo.Issue(context.Background(), 5)
	require.NoError(t, err)

	_, err = uuid.Parse(token)
	assert.NoError(t, err, "token should be a uuid")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetTokenRedis_Issue_StoreFailure(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewResetTokenRedis(client, "forget-password")

	mock.Regexp().ExpectSet(`forget-password:.+`, `\d+`, ResetTokenTTL).SetErr(assert.AnError)

	_, err := repo.Issue(context.Background(), 5)
	assert.Error(t, err)
}

func TestResetTokenRedis_UserID(t *testing.T) {
	t.Run("resolves the owning user", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewResetTokenRedis(client, "forget-password")

		mock.ExpectGet("forget-password:some-token").SetVal("5")

		userID, err := repo.UserID(context.Background(), "some-token")
		require.NoError(t, err)
		assert.Equal(t, uint(5), userID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing token", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewResetTokenRedis(client, "forget-password")

		mock.ExpectGet("forget-password:gone-token").RedisNil()

		_, err := repo.UserID(context.Background(), "gone-token")
		assert.ErrorIs(t, err, usecase.ErrResetTokenNotFound)
	})

	t.Run("corrupt value", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewResetTokenRedis(client, "forget-password")

		mock.ExpectGet("forget-password:bad-token").SetVal("not-a-number")

		_, err := repo.UserID(context.Background(), "bad-token")
		assert.Error(t, err)
	})
}

func TestResetTokenRedis_Delete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewResetTokenRedis(client, "forget-password")

	mock.ExpectDel("forget-password:some-token").SetVal(1)

	assert.NoError(t, repo.Delete(context.Background(), "some-token"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestResetTokenRedis_SingleUse drives issue→consume→retry against miniredis
// to verify the token cannot be resolved after deletion.
func TestResetTokenRedis_SingleUse(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewResetTokenRedis(client, "forget-password")
	ctx := context.Background()

	token, err := repo.Issue(ctx, 5)
	require.NoError(t, err)

	userID, err := repo.UserID(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(5), userID)

	require.NoError(t, repo.Delete(ctx, token))

	_, err = repo.UserID(ctx, token)
	assert.ErrorIs(t, err, usecase.ErrResetTokenNotFound)
}
