package follow

import (
	"time"

	"github.com/gofrs/uuid"
)

// FollowEdge is a directed relationship from a follower account to a creator
// account. The composite unique index is the correctness backstop for the
// check-then-act race in FollowService.Follow.
type FollowEdge struct {
	ID         uuid.UUID `gorm:"primary_key;type:char(36);default:uuid()"`
	FollowerID uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_follower_creator"`
	CreatorID  uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_follower_creator;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}
