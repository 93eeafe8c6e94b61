package database

import (
	"context"

	"github.com/jonuar/Donacrypto/internal/config"
	"github.com/jonuar/Donacrypto/internal/core/like"
)

// LikeRepositoryDatabase implements the like store over MySQL
type LikeRepositoryDatabase struct{}

func NewLikeRepositoryDatabase() *LikeRepositoryDatabase {
	return &LikeRepositoryDatabase{}
}

func (repo *LikeRepositoryDatabase) Create(ctx context.Context, l *like.Like) error {
	return config.DB.WithContext(ctx).Create(l).Error
}

func (repo *LikeRepositoryDatabase) Delete(ctx context.Context, userID, postID string) (int64, error) {
	res := config.DB.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&like.Like{})
	return res.RowsAffected, res.Error
}

func (repo *LikeRepositoryDatabase) Exists(ctx context.Context, userID, postID string) (bool, error) {
	var count int64
	if err := config.DB.WithContext(ctx).Model(&like.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *LikeRepositoryDatabase) ListByPostIDs(ctx context.Context, postIDs []string) ([]*like.Like, error) {
	likes := make([]*like.Like, 0)
	if len(postIDs) == 0 {
		return likes, nil
	}
	if err := config.DB.WithContext(ctx).
		Where("post_id IN ?", postIDs).
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (repo *LikeRepositoryDatabase) CountByPost(ctx context.Context, postID string) (int64, error) {
	var count int64
	if err := config.DB.WithContext(ctx).Model(&like.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
