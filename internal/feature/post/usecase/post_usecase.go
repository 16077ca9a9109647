// Package usecase はpostフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"readit_backend/internal/feature/post/domain/entity"
)

// ErrPostNotFound is returned when a post cannot be found by ID.
var ErrPostNotFound = errors.New("post not found")

// PostRepository は投稿エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PostRepository interface {
	// List はすべての投稿を新しい順で取得します。
	List(ctx context.Context) ([]*entity.Post, error)

	// FindByID は指定されたIDに一致する投稿を取得します。
	// 投稿が存在しない場合、ErrPostNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Post, error)

	// Create は新しい投稿をストレージに永続化します。
	Create(ctx context.Context, post *entity.Post) error

	// UpdateTitle は投稿のタイトルを更新し、更新後の投稿を返します。
	// 投稿が存在しない場合、ErrPostNotFoundを返します。
	UpdateTitle(ctx context.Context, id uint, title string) (*entity.Post, error)

	// Delete は投稿を削除します。対象が存在しない場合、ErrPostNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// postUsecase は投稿のCRUDロジックを実装します。
type postUsecase struct {
	posts PostRepository
}

// NewPostUsecase はpostUsecaseの新しいインスタンスを生成します。
func NewPostUsecase(posts PostRepository) *postUsecase {
	return &postUsecase{posts: posts}
}

// List はすべての投稿を返します。
func (u *postUsecase) List(ctx context.Context) ([]*entity.Post, error) {
	return u.posts.List(ctx)
}

// Get はIDで投稿を取得します。存在しない場合はエラーではなくnilを返します。
func (u *postUsecase) Get(ctx context.Context, id uint) (*entity.Post, error) {
	post, err := u.posts.FindByID(ctx, id)
	if errors.Is(err, ErrPostNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	return post, nil
}

// Create は新しい投稿を作成し、作成者IDを刻印します。
func (u *postUsecase) Create(ctx context.Context, title, text string, creatorID uint) (*entity.Post, error) {
	post := &entity.Post{Title: title, Text: text, CreatorID: creatorID}
	if err := u.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// UpdateTitle は投稿のタイトルを更新します。存在しない場合はエラーではなくnilを返します。
func (u *postUsecase) UpdateTitle(ctx context.Context, id uint, title string) (*entity.Post, error) {
	post, err := u.posts.UpdateTitle(ctx, id, title)
	if errors.Is(err, ErrPostNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// Delete は投稿を削除し、削除できたかどうかを返します。
func (u *postUsecase) Delete(ctx context.Context, id uint) (bool, error) {
	err := u.posts.Delete(ctx, id)
	if errors.Is(err, ErrPostNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}
	return true, nil
}
