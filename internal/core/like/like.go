package like

import (
	"time"

	"github.com/gofrs/uuid"
)

// Like is binary per (user, post); the composite unique index makes sure a
// racing duplicate insert fails instead of double counting.
type Like struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36);default:uuid()"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_user_post"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_user_post;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
