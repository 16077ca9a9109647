package usecase

import (
	"context"

	"readit_backend/internal/feature/auth/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// メールアドレスまたはユーザー名が既に存在する場合、
	// ErrEmailTaken / ErrUsernameTaken を返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername は指定されたユーザー名に一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdatePassword は指定されたユーザーのパスワードハッシュを更新します。
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error
}

// SessionRepository abstracts the ephemeral session store.
// Implementations own token generation and TTL enforcement; the usecase only
// ever sees the opaque token value.
type SessionRepository interface {
	// Create stores a new session for the user and returns its opaque token.
	Create(ctx context.Context, userID uint) (string, error)

	// UserID resolves a session token to the owning user ID.
	// Missing or expired tokens yield ErrSessionNotFound.
	UserID(ctx context.Context, token string) (uint, error)

	// Destroy removes the session for the given token.
	Destroy(ctx context.Context, token string) error
}

// ResetTokenRepository abstracts the single-use password-reset token store.
type ResetTokenRepository interface {
	// Issue stores a fresh reset token for the user with the store's fixed TTL
	// and returns the token value.
	Issue(ctx context.Context, userID uint) (string, error)

	// UserID resolves a reset token to the owning user ID.
	// Missing or expired tokens yield ErrResetTokenNotFound.
	UserID(ctx context.Context, token string) (uint, error)

	// Delete removes a reset token so it cannot be used again.
	Delete(ctx context.Context, token string) error
}

// Notifier delivers a message to a user out-of-band.
// Delivery is best-effort from the caller's perspective.
type Notifier interface {
	Send(ctx context.Context, to, htmlBody string) error
}
