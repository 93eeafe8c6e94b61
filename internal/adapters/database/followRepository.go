package database

import (
	"context"

	"github.com/jonuar/Donacrypto/internal/config"
	"github.com/jonuar/Donacrypto/internal/core/follow"
)

// FollowRepositoryDatabase implements the follow graph store over MySQL
type FollowRepositoryDatabase struct{}

func NewFollowRepositoryDatabase() *FollowRepositoryDatabase {
	return &FollowRepositoryDatabase{}
}

func (repo *FollowRepositoryDatabase) Create(ctx context.Context, edge *follow.FollowEdge) (*follow.FollowEdge, error) {
	if err := config.DB.WithContext(ctx).Create(edge).Error; err != nil {
		return nil, err
	}
	return edge, nil
}

func (repo *FollowRepositoryDatabase) Delete(ctx context.Context, followerID, creatorID string) (int64, error) {
	res := config.DB.WithContext(ctx).
		Where("follower_id = ? AND creator_id = ?", followerID, creatorID).
		Delete(&follow.FollowEdge{})
	return res.RowsAffected, res.Error
}

func (repo *FollowRepositoryDatabase) Exists(ctx context.Context, followerID, creatorID string) (bool, error) {
	var count int64
	if err := config.DB.WithContext(ctx).Model(&follow.FollowEdge{}).
		Where("follower_id = ? AND creator_id = ?", followerID, creatorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *FollowRepositoryDatabase) ListFollowing(ctx context.Context, followerID string, offset, limit int) ([]*follow.FollowEdge, int64, error) {
	q := config.DB.WithContext(ctx).Model(&follow.FollowEdge{}).
		Where("follower_id = ?", followerID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var edges []*follow.FollowEdge
	if err := q.Order("created_at DESC, creator_id DESC").
		Offset(offset).Limit(limit).
		Find(&edges).Error; err != nil {
		return nil, 0, err
	}
	return edges, total, nil
}

func (repo *FollowRepositoryDatabase) ListFollowers(ctx context.Context, creatorID string, offset, limit int) ([]*follow.FollowEdge, int64, error) {
	q := config.DB.WithContext(ctx).Model(&follow.FollowEdge{}).
		Where("creator_id = ?", creatorID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var edges []*follow.FollowEdge
	if err := q.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&edges).Error; err != nil {
		return nil, 0, err
	}
	return edges, total, nil
}

func (repo *FollowRepositoryDatabase) FollowingIDs(ctx context.Context, followerID string) ([]string, error) {
	var ids []string
	if err := config.DB.WithContext(ctx).Model(&follow.FollowEdge{}).
		Where("follower_id = ?", followerID).
		Pluck("creator_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (repo *FollowRepositoryDatabase) CountFollowers(ctx context.Context, creatorID string) (int64, error) {
	var count int64
	if err := config.DB.WithContext(ctx).Model(&follow.FollowEdge{}).
		Where("creator_id = ?", creatorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *FollowRepositoryDatabase) CountFollowersByCreators(ctx context.Context, creatorIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(creatorIDs))
	if len(creatorIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		CreatorID string
		Total     int64
	}
	if err := config.DB.WithContext(ctx).Model(&follow.FollowEdge{}).
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
