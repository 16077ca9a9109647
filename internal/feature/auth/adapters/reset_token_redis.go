package adapters

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"readit_backend/internal/feature/auth/usecase"
)

// ResetTokenTTL はリセットトークンの固定有効期限です。
// 期限切れの削除はRedisのネイティブTTLに完全に委譲します。
const ResetTokenTTL = 24 * time.Hour

// ResetTokenRedis はResetTokenRepositoryインターフェースのRedis実装です。
// トークン→ユーザーIDのマッピングを保持し、使い捨てで消費されます。
type ResetTokenRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.ResetTokenRepository = (*ResetTokenRedis)(nil)

// NewResetTokenRedis はResetTokenRedisの新しいインスタンスを生成します。
func NewResetTokenRedis(client *redis.Client, prefix string) *ResetTokenRedis {
	return &ResetTokenRedis{
		client: client,
		prefix: prefix,
	}
}

// tokenKey はリセットトークンのRedisキーを返します。
func (r *ResetTokenRedis) tokenKey(token string) string {
	return fmt.Sprintf("%s:%s", r.prefix, token)
}

// Issue はユーザーに対する新しいリセットトークンを発行し、24時間のTTL付きで保存します。
func (r *ResetTokenRedis) Issue(ctx context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	value := strconv.FormatUint(uint64(userID), 10)
	if err := r.client.Set(ctx, r.tokenKey(token), value, ResetTokenTTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// UserID はリセットトークンを所有ユーザーのIDに解決します。
// トークンが存在しない（または期限切れの）場合、usecase.ErrResetTokenNotFoundを返します。
func (r *ResetTokenRedis) UserID(ctx context.Context, token string) (uint, error) {
	value, err := r.client.Get(ctx, r.tokenKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, usecase.ErrResetTokenNotFound
		}
		return 0, err
	}

	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse reset token value: %w", err)
	}
	return uint(userID), nil
}

// Delete はリセットトークンを削除し、再利用できないようにします。
func (r *ResetTokenRedis) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.tokenKey(token)).Err()
}
