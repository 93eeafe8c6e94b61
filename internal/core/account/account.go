package account

import (
	"time"

	"github.com/gofrs/uuid"
)

const (
	RoleFollower = "follower"
	RoleCreator  = "creator"
)

type Account struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36);default:uuid()"`
	Username  string     `gorm:"unique;not null"`
	Email     string     `gorm:"unique;not null"`
	Role      string     `gorm:"type:varchar(20);not null;index"`
	FirstName string
	LastName  string
	Bio       string `gorm:"type:text"`
	AvatarURL string
	Password  string     `gorm:"not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}

// IsCreator reports whether the account may publish posts and receive donations.
func (a *Account) IsCreator() bool {
	return a.Role == RoleCreator
}
