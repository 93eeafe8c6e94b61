package database

import (
	"context"

	"github.com/jonuar/Donacrypto/internal/config"
	"github.com/jonuar/Donacrypto/internal/core/donation"
)

// DonationRepositoryDatabase implements the donation ledger over MySQL
type DonationRepositoryDatabase struct{}

func NewDonationRepositoryDatabase() *DonationRepositoryDatabase {
	return &DonationRepositoryDatabase{}
}

func (repo *DonationRepositoryDatabase) Create(ctx context.Context, d *donation.Donation) (*donation.Donation, error) {
	if err := config.DB.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

func (repo *DonationRepositoryDatabase) ListBySender(ctx context.Context, senderID string, offset, limit int) ([]*donation.Donation, int64, error) {
	return repo.list(ctx, "sender_id = ?", senderID, offset, limit)
}

func (repo *DonationRepositoryDatabase) ListByReceiver(ctx context.Context, receiverID string, offset, limit int) ([]*donation.Donation, int64, error) {
	return repo.list(ctx, "receiver_id = ?", receiverID, offset, limit)
}

func (repo *DonationRepositoryDatabase) list(ctx context.Context, cond, id string, offset, limit int) ([]*donation.Donation, int64, error) {
	q := config.DB.WithContext(ctx).Model(&donation.Donation{}).Where(cond, id)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []*donation.Donation
	if err := q.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (repo *DonationRepositoryDatabase) AggregateByReceiver(ctx context.Context, receiverID string) (float64, int64, error) {
	var row struct {
		TotalAmount float64
		TotalCount  int64
	}
	// COALESCE: SUM over zero rows is NULL
	if err := config.DB.WithContext(ctx).Model(&donation.Donation{}).
		Select("COALESCE(SUM(amount), 0) AS total_amount, COUNT(*) AS total_count").
		Where("receiver_id = ?", receiverID).
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.TotalAmount, row.TotalCount, nil
}
