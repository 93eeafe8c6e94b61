package donation

import (
	"time"

	"github.com/gofrs/uuid"
)

// Donation is an append-only ledger record. Nothing in this service updates or
// deletes rows; the tx hash is stored as-is and never verified here.
type Donation struct {
	ID         uuid.UUID `gorm:"primary_key;type:char(36);default:uuid()"`
	SenderID   uuid.UUID `gorm:"type:char(36);not null;index"`
	ReceiverID uuid.UUID `gorm:"type:char(36);not null;index"`
	Amount     float64   `gorm:"not null"`
	Currency   string    `gorm:"type:varchar(10);not null"`
	TxHash     string    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}
