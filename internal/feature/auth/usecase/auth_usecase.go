// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"readit_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 3
	// minUsernameLength はユーザー名の最低文字数を定義します。
	minUsernameLength = 3
)

// Result は認証操作の結果を表す判別型です。
// バリデーション失敗はErrorsに、成功時はUserと新しいセッションのTokenに入ります。
// 両方が同時に設定されることはありません。
type Result struct {
	User   *entity.User
	Token  string
	Errors []entity.FieldError
}

// fail は単一のフィールドエラーを持つResultを生成します。
func fail(field, message string) *Result {
	return &Result{Errors: []entity.FieldError{{Field: field, Message: message}}}
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users       UserRepository
	sessions    SessionRepository
	resetTokens ResetTokenRepository
	notifier    Notifier
	frontendURL string
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
// frontendURLはパスワードリセットリンクの組み立てに使われます。
func NewAuthUsecase(users UserRepository, sessions SessionRepository,
	resetTokens ResetTokenRepository, notifier Notifier, frontendURL string) *authUsecase {
	return &authUsecase{
		users:       users,
		sessions:    sessions,
		resetTokens: resetTokens,
		notifier:    notifier,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

// Register は新規ユーザーを登録し、セッションを確立します。
// バリデーションは順番に実行され、最初に失敗したチェックのフィールドエラーを1件だけ返します。
// 登録レースでユニーク制約に弾かれた場合も同じフィールドエラーにマップします。
func (u *authUsecase) Register(ctx context.Context, email, username, password string) (*Result, error) {
	if !strings.Contains(email, "@") {
		return fail("email", "invalid email"), nil
	}
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return fail("email", "email already in use"), nil
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if strings.Contains(username, "@") {
		return fail("username", "cannot include an @"), nil
	}
	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return fail("username", "username not available"), nil
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}
	if len(username) < minUsernameLength {
		return fail("username", "length must be greater than 2"), nil
	}
	if len(password) < minPasswordLength {
		return fail("password", "length must be greater than 2"), nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, Username: username, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		// 同時登録のレースはストア側のユニークインデックスが解決する
		switch {
		case errors.Is(err, ErrEmailTaken):
			return fail("email", "email already in use"), nil
		case errors.Is(err, ErrUsernameTaken):
			return fail("username", "username not available"), nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := u.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &Result{User: user, Token: token}, nil
}

// Login はユーザーを認証し、成功時にセッションを確立します。
// 識別子に@が含まれる場合はメールアドレスとして、それ以外はユーザー名として検索します。
func (u *authUsecase) Login(ctx context.Context, usernameOrEmail, password string) (*Result, error) {
	var (
		user *entity.User
		err  error
	)
	if strings.Contains(usernameOrEmail, "@") {
		user, err = u.users.FindByEmail(ctx, usernameOrEmail)
	} else {
		user, err = u.users.FindByUsername(ctx, usernameOrEmail)
	}
	if errors.Is(err, ErrUserNotFound) {
		return fail("usernameOrEmail", "not found"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return fail("password", "incorrect password"), nil
	}

	token, err := u.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &Result{User: user, Token: token}, nil
}

// Logout は現在のセッションを破棄します。
// 破棄に失敗しても呼び出し元へはエラーを伝播せず、警告ログを残してfalseを返します。
func (u *authUsecase) Logout(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	if err := u.sessions.Destroy(ctx, token); err != nil {
		slog.Warn("failed to destroy session", "error", err)
		return false
	}
	return true
}

// CurrentUser はセッショントークンからログイン中のユーザーを解決します。
// セッションが存在しない・期限切れ・ユーザーが削除済みの場合はエラーではなくnilを返します。
func (u *authUsecase) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, nil
	}
	userID, err := u.sessions.UserID(ctx, token)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// ForgotPassword はパスワードリセットのリンクをメールで送信します。
// アカウントの存在を漏らさないため、未登録のメールアドレスでも常に成功を返します。
// 配信はベストエフォートで、Notifierの失敗は警告ログに留めます。
func (u *authUsecase) ForgotPassword(ctx context.Context, email string) (bool, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		// 未登録のメールアドレスは黙って成功扱いにする
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up email: %w", err)
	}

	token, err := u.resetTokens.Issue(ctx, user.ID)
	if err != nil {
		return false, fmt.Errorf("failed to issue reset token: %w", err)
	}

	html := fmt.Sprintf(`<a href="%s/change-password/%s">reset password</a>`, u.frontendURL, token)
	if err := u.notifier.Send(ctx, user.Email, html); err != nil {
		slog.Warn("failed to send reset mail", "error", err, "email", user.Email)
	}
	return true, nil
}

// ChangePassword はリセットトークンを消費して新しいパスワードを設定し、セッションを確立します。
// トークンは使い捨てで、成功時にストアから削除されます。
func (u *authUsecase) ChangePassword(ctx context.Context, token, newPassword string) (*Result, error) {
	if len(newPassword) < minPasswordLength {
		return fail("newPassword", "length must be greater than 2"), nil
	}

	userID, err := u.resetTokens.UserID(ctx, token)
	if errors.Is(err, ErrResetTokenNotFound) {
		return fail("token", "token expired"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve reset token: %w", err)
	}

	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return fail("token", "user no longer exists"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := u.users.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}
	user.Password = string(hashed)

	if err := u.resetTokens.Delete(ctx, token); err != nil {
		slog.Warn("failed to delete reset token", "error", err)
	}

	sessionToken, err := u.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &Result{User: user, Token: sessionToken}, nil
}
