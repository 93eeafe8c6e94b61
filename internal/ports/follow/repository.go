package follow

import (
	"context"
	"time"

	"github.com/jonuar/Donacrypto/internal/core/follow"
)

// FollowRepository is the port for the follow graph store.
type FollowRepository interface {
	Create(ctx context.Context, edge *follow.FollowEdge) (*follow.FollowEdge, error)
	// Delete removes the (follower, creator) edge and reports how many rows
	// went away, so the caller can tell "removed" from "was not following".
	Delete(ctx context.Context, followerID, creatorID string) (int64, error)
	Exists(ctx context.Context, followerID, creatorID string) (bool, error)
	// ListFollowing pages the creators a follower follows, newest edge first
	// with creator_id as tiebreak so a page is stable across reads.
	ListFollowing(ctx context.Context, followerID string, offset, limit int) ([]*follow.FollowEdge, int64, error)
	// ListFollowers pages a creator's followers, most recent follower first.
	ListFollowers(ctx context.Context, creatorID string, offset, limit int) ([]*follow.FollowEdge, int64, error)
	// FollowingIDs returns the full, unpaginated set of creator ids the
	// follower follows; the feed composer needs the whole set to filter posts.
	FollowingIDs(ctx context.Context, followerID string) ([]string, error)
	CountFollowers(ctx context.Context, creatorID string) (int64, error)
	// CountFollowersByCreators aggregates follower counts for a whole id set
	// in one GROUP BY query. Ids with no followers are absent from the map.
	CountFollowersByCreators(ctx context.Context, creatorIDs []string) (map[string]int64, error)
}

// Follow outcomes; the idempotent paths are successes, not errors.
const (
	OutcomeCreated          = "created"
	OutcomeAlreadyFollowing = "alreadyFollowing"
	OutcomeRemoved          = "removed"
	OutcomeNotFollowing     = "notFollowing"
)

type FollowingDTO struct {
	CreatorID  string    `json:"creator_id"`
	FollowedAt time.Time `json:"followed_at"`
}

type FollowerDTO struct {
	FollowerID string    `json:"follower_id"`
	FollowedAt time.Time `json:"followed_at"`
}
