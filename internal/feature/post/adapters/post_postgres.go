// Package adapters はpostフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"readit_backend/internal/feature/post/domain/entity"
	"readit_backend/internal/feature/post/usecase"
)

// postPostgres はPostRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
type postPostgres struct {
	db *gorm.DB
}

// postPostgresがPostRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PostRepository = (*postPostgres)(nil)

// NewPostPostgres は指定されたgorm.DB接続でpostPostgresの新しいインスタンスを生成します。
func NewPostPostgres(db *gorm.DB) *postPostgres {
	return &postPostgres{db: db}
}

// List はすべての投稿を作成日時の降順で取得します。
func (r *postPostgres) List(ctx context.Context) ([]*entity.Post, error) {
	var posts []*entity.Post
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByID はIDで投稿を取得します。
// 投稿が存在しない場合、usecase.ErrPostNotFoundを返します。
func (r *postPostgres) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	var post entity.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create は投稿をデータベースに追加します。
func (r *postPostgres) Create(ctx context.Context, post *entity.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// UpdateTitle は投稿のタイトルを更新し、更新後の形を読み直して返します。
// 投稿が存在しない場合、usecase.ErrPostNotFoundを返します。
func (r *postPostgres) UpdateTitle(ctx context.Context, id uint, title string) (*entity.Post, error) {
	// 先に存在チェック、更新後に読み直して最新の形を返す
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Post{}).
		Where("id = ?", id).
		Update("title", title).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete はIDで投稿を削除します。
// 対象が存在しない場合、usecase.ErrPostNotFoundを返します。
func (r *postPostgres) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrPostNotFound
	}
	return nil
}
