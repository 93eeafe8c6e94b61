package database

import (
	"context"

	"github.com/jonuar/Donacrypto/internal/config"
	"github.com/jonuar/Donacrypto/internal/core/post"
)

// PostRepositoryDatabase implements the content store over MySQL
type PostRepositoryDatabase struct{}

func NewPostRepositoryDatabase() *PostRepositoryDatabase {
	return &PostRepositoryDatabase{}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := config.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	if err := config.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) ListByCreator(ctx context.Context, creatorID string, offset, limit int) ([]*post.Post, int64, error) {
	q := config.DB.WithContext(ctx).Model(&post.Post{}).
		Where("creator_id = ?", creatorID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*post.Post
	if err := q.Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (repo *PostRepositoryDatabase) ListByCreators(ctx context.Context, creatorIDs []string, offset, limit int) ([]*post.Post, int64, error) {
	if len(creatorIDs) == 0 {
		return []*post.Post{}, 0, nil
	}

	q := config.DB.WithContext(ctx).Model(&post.Post{}).
		Where("creator_id IN ?", creatorIDs)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*post.Post
	if err := q.Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// DeleteOwned filters by both id and creator in one statement so callers
// cannot probe for other creators' posts.
func (repo *PostRepositoryDatabase) DeleteOwned(ctx context.Context, postID, creatorID string) (int64, error) {
	res := config.DB.WithContext(ctx).
		Where("id = ? AND creator_id = ?", postID, creatorID).
		Delete(&post.Post{})
	return res.RowsAffected, res.Error
}

func (repo *PostRepositoryDatabase) CountByCreator(ctx context.Context, creatorID string) (int64, error) {
	var count int64
	if err := config.DB.WithContext(ctx).Model(&post.Post{}).
		Where("creator_id = ?", creatorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *PostRepositoryDatabase) CountByCreators(ctx context.Context, creatorIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(creatorIDs))
	if len(creatorIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		CreatorID string
		Total     int64
	}
	if err := config.DB.WithContext(ctx).Model(&post.Post{}).
		Select("creator_id, COUNT(*) AS total").
		Where("creator_id IN ?", creatorIDs).
		Group("creator_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.CreatorID] = r.Total
	}
	return counts, nil
}
