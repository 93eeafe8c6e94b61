package like

import (
	"context"

	"github.com/jonuar/Donacrypto/internal/core/like"
)

// LikeRepository is the port for the like store.
type LikeRepository interface {
	Create(ctx context.Context, l *like.Like) error
	// Delete removes the (user, post) like and reports affected rows.
	Delete(ctx context.Context, userID, postID string) (int64, error)
	Exists(ctx context.Context, userID, postID string) (bool, error)
	// ListByPostIDs fetches every like touching the given post set in one
	// query; counting and membership happen in memory on the caller's side.
	ListByPostIDs(ctx context.Context, postIDs []string) ([]*like.Like, error)
	CountByPost(ctx context.Context, postID string) (int64, error)
}

type ToggleResult struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

// PostLikesDTO is the per-post annotation BatchAnnotate produces.
type PostLikesDTO struct {
	PostID      string `json:"post_id"`
	LikesCount  int64  `json:"likes_count"`
	ViewerLiked bool   `json:"user_liked"`
}
