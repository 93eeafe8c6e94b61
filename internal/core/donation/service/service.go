package donationapp

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonuar/Donacrypto/internal/apperr"
	donationEntity "github.com/jonuar/Donacrypto/internal/core/donation"
	"github.com/jonuar/Donacrypto/internal/core/pagination"
	accountPort "github.com/jonuar/Donacrypto/internal/ports/account"
	donationPort "github.com/jonuar/Donacrypto/internal/ports/donation"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

const defaultCurrency = "ETH"

type DonationService struct {
	DonationRepository donationPort.DonationRepository
	Directory          accountPort.AccountRepository
}

func NewDonationService(repo donationPort.DonationRepository, directory accountPort.AccountRepository) *DonationService {
	return &DonationService{
		DonationRepository: repo,
		Directory:          directory,
	}
}

// Donate appends a record to the ledger. The tx hash is recorded as given;
// verifying it against a chain is someone else's job.
func (s *DonationService) Donate(ctx context.Context, senderID, receiverID string, amount float64, currency, txHash string) (*donationPort.DonationDTO, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperr.ErrValidation)
	}
	if txHash == "" {
		return nil, fmt.Errorf("%w: tx_hash is required", apperr.ErrValidation)
	}
	if currency == "" {
		currency = defaultCurrency
	}

	receiver, err := s.Directory.FindByID(ctx, receiverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: receiver %q", apperr.ErrNotFound, receiverID)
		}
		return nil, err
	}

	d := &donationEntity.Donation{
		ID:         uuid.Must(uuid.NewV4()),
		SenderID:   uuid.FromStringOrNil(senderID),
		ReceiverID: receiver.ID,
		Amount:     amount,
		Currency:   currency,
		TxHash:     txHash,
	}

	created, err := s.DonationRepository.Create(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to record donation: %w", err)
	}
	return toDTO(created), nil
}

func (s *DonationService) ListSent(ctx context.Context, senderID string, page, limit int) ([]*donationPort.DonationDTO, int64, error) {
	page, limit = pagination.Normalize(page, limit, 10)
	records, total, err := s.DonationRepository.ListBySender(ctx, senderID, pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, 0, err
	}
	return toDTOs(records), total, nil
}

func (s *DonationService) ListReceived(ctx context.Context, receiverID string, page, limit int) ([]*donationPort.DonationDTO, int64, error) {
	page, limit = pagination.Normalize(page, limit, 10)
	records, total, err := s.DonationRepository.ListByReceiver(ctx, receiverID, pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, 0, err
	}
	return toDTOs(records), total, nil
}

func toDTO(d *donationEntity.Donation) *donationPort.DonationDTO {
	return &donationPort.DonationDTO{
		ID:         d.ID.String(),
		SenderID:   d.SenderID.String(),
		ReceiverID: d.ReceiverID.String(),
		Amount:     d.Amount,
		Currency:   d.Currency,
		TxHash:     d.TxHash,
		CreatedAt:  d.CreatedAt,
	}
}

func toDTOs(records []*donationEntity.Donation) []*donationPort.DonationDTO {
	dtos := make([]*donationPort.DonationDTO, 0, len(records))
	for _, d := range records {
		dtos = append(dtos, toDTO(d))
	}
	return dtos
}
