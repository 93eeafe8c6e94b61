package post

import (
	"time"

	"github.com/gofrs/uuid"
)

type Post struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36);default:uuid()"`
	CreatorID uuid.UUID  `gorm:"type:char(36);not null;index"`
	Title     string     `gorm:"not null"`
	Content   string     `gorm:"type:text;not null"`
	MediaRefs []string   `gorm:"serializer:json"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}
