package post

import (
	"context"
	"time"

	"github.com/jonuar/Donacrypto/internal/core/post"
)

// PostRepository is the port for the content store.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	// ListByCreator pages a creator's posts newest first (id desc tiebreak)
	// and returns the total matching count independent of the window.
	ListByCreator(ctx context.Context, creatorID string, offset, limit int) ([]*post.Post, int64, error)
	// ListByCreators is the feed query: posts whose creator is in the given
	// set, newest first, with the unpaginated total.
	ListByCreators(ctx context.Context, creatorIDs []string, offset, limit int) ([]*post.Post, int64, error)
	// DeleteOwned deletes the post only when it exists AND belongs to
	// creatorID, in a single statement, and reports affected rows. Callers
	// cannot distinguish a missing post from someone else's post.
	DeleteOwned(ctx context.Context, postID, creatorID string) (int64, error)
	CountByCreator(ctx context.Context, creatorID string) (int64, error)
	// CountByCreators aggregates post counts for an id set in one query.
	CountByCreators(ctx context.Context, creatorIDs []string) (map[string]int64, error)
}

type PostDTO struct {
	ID        string    `json:"id"`
	CreatorID string    `json:"creator_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	MediaRefs []string  `json:"media_refs"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
