package donation

import (
	"context"
	"time"

	"github.com/jonuar/Donacrypto/internal/core/donation"
)

// DonationRepository is the port for the append-only donation ledger.
type DonationRepository interface {
	Create(ctx context.Context, d *donation.Donation) (*donation.Donation, error)
	ListBySender(ctx context.Context, senderID string, offset, limit int) ([]*donation.Donation, int64, error)
	ListByReceiver(ctx context.Context, receiverID string, offset, limit int) ([]*donation.Donation, int64, error)
	// AggregateByReceiver sums amounts and counts records for one receiver in
	// a single query; an empty ledger yields (0, 0), not an error.
	AggregateByReceiver(ctx context.Context, receiverID string) (totalAmount float64, totalCount int64, err error)
}

type DonationDTO struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	TxHash     string    `json:"tx_hash"`
	CreatedAt  time.Time `json:"created_at"`
}

type DonationStatsDTO struct {
	TotalAmount float64 `json:"total_amount"`
	TotalCount  int64   `json:"total_count"`
}
