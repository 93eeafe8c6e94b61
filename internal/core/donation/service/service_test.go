package donationapp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonuar/Donacrypto/internal/apperr"
	accountEntity "github.com/jonuar/Donacrypto/internal/core/account"
	donationEntity "github.com/jonuar/Donacrypto/internal/core/donation"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type fakeDonationRepo struct {
	records []*donationEntity.Donation
}

func (r *fakeDonationRepo) Create(ctx context.Context, d *donationEntity.Donation) (*donationEntity.Donation, error) {
	d.CreatedAt = time.Now()
	r.records = append(r.records, d)
	return d, nil
}

func (r *fakeDonationRepo) ListBySender(ctx context.Context, senderID string, offset, limit int) ([]*donationEntity.Donation, int64, error) {
	matched := make([]*donationEntity.Donation, 0)
	for _, d := range r.records {
		if d.SenderID.String() == senderID {
			matched = append(matched, d)
		}
	}
	return page(matched, offset, limit), int64(len(matched)), nil
}

func (r *fakeDonationRepo) ListByReceiver(ctx context.Context, receiverID string, offset, limit int) ([]*donationEntity.Donation, int64, error) {
	matched := make([]*donationEntity.Donation, 0)
	for _, d := range r.records {
		if d.ReceiverID.String() == receiverID {
			matched = append(matched, d)
		}
	}
	return page(matched, offset, limit), int64(len(matched)), nil
}

func (r *fakeDonationRepo) AggregateByReceiver(ctx context.Context, receiverID string) (float64, int64, error) {
	var amount float64
	var count int64
	for _, d := range r.records {
		if d.ReceiverID.String() == receiverID {
			amount += d.Amount
			count++
		}
	}
	return amount, count, nil
}

func page(records []*donationEntity.Donation, offset, limit int) []*donationEntity.Donation {
	if offset >= len(records) {
		return nil
	}
	end := offset + limit
	if end > len(records) {
		end = len(records)
	}
	return records[offset:end]
}

type fakeDirectory struct {
	accounts []*accountEntity.Account
}

func (d *fakeDirectory) Create(ctx context.Context, acc *accountEntity.Account) (*accountEntity.Account, error) {
	return acc, nil
}

func (d *fakeDirectory) FindByID(ctx context.Context, id string) (*accountEntity.Account, error) {
	for _, a := range d.accounts {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (d *fakeDirectory) FindByEmail(ctx context.Context, email string) (*accountEntity.Account, error) {
	return nil, gorm.ErrRecordNotFound
}

func (d *fakeDirectory) FindByUsername(ctx context.Context, username string) (*accountEntity.Account, error) {
	return nil, gorm.ErrRecordNotFound
}

func (d *fakeDirectory) FindByIDs(ctx context.Context, ids []string) ([]*accountEntity.Account, error) {
	return nil, nil
}

func (d *fakeDirectory) SearchCreators(ctx context.Context, query string, offset, limit int) ([]*accountEntity.Account, int64, error) {
	return nil, 0, nil
}

func (d *fakeDirectory) ListCreators(ctx context.Context, sort string, offset, limit int) ([]*accountEntity.Account, int64, error) {
	return nil, 0, nil
}

func TestDonateValidation(t *testing.T) {
	receiver := &accountEntity.Account{ID: uuid.Must(uuid.NewV4()), Role: accountEntity.RoleCreator}
	svc := NewDonationService(&fakeDonationRepo{}, &fakeDirectory{accounts: []*accountEntity.Account{receiver}})
	sender := uuid.Must(uuid.NewV4()).String()

	if _, err := svc.Donate(context.Background(), sender, receiver.ID.String(), 0, "", "0xabc"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("zero amount: err = %v, want ErrValidation", err)
	}
	if _, err := svc.Donate(context.Background(), sender, receiver.ID.String(), -1, "", "0xabc"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("negative amount: err = %v, want ErrValidation", err)
	}
	if _, err := svc.Donate(context.Background(), sender, receiver.ID.String(), 1, "", ""); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("missing tx hash: err = %v, want ErrValidation", err)
	}
}

func TestDonateUnknownReceiver(t *testing.T) {
	svc := NewDonationService(&fakeDonationRepo{}, &fakeDirectory{})
	_, err := svc.Donate(context.Background(), uuid.Must(uuid.NewV4()).String(), uuid.Must(uuid.NewV4()).String(), 1, "", "0xabc")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDonateDefaultsCurrency(t *testing.T) {
	receiver := &accountEntity.Account{ID: uuid.Must(uuid.NewV4()), Role: accountEntity.RoleCreator}
	repo := &fakeDonationRepo{}
	svc := NewDonationService(repo, &fakeDirectory{accounts: []*accountEntity.Account{receiver}})

	dto, err := svc.Donate(context.Background(), uuid.Must(uuid.NewV4()).String(), receiver.ID.String(), 0.25, "", "0xabc")
	if err != nil {
		t.Fatalf("Donate: %v", err)
	}
	if dto.Currency != "ETH" {
		t.Fatalf("currency = %q, want default ETH", dto.Currency)
	}
	if len(repo.records) != 1 {
		t.Fatalf("ledger records = %d, want 1", len(repo.records))
	}

	dto, err = svc.Donate(context.Background(), uuid.Must(uuid.NewV4()).String(), receiver.ID.String(), 0.25, "BTC", "0xdef")
	if err != nil {
		t.Fatalf("Donate with currency: %v", err)
	}
	if dto.Currency != "BTC" {
		t.Fatalf("currency = %q, want BTC", dto.Currency)
	}
}

func TestListSentAndReceived(t *testing.T) {
	receiver := &accountEntity.Account{ID: uuid.Must(uuid.NewV4()), Role: accountEntity.RoleCreator}
	repo := &fakeDonationRepo{}
	svc := NewDonationService(repo, &fakeDirectory{accounts: []*accountEntity.Account{receiver}})
	sender := uuid.Must(uuid.NewV4()).String()

	for i := 0; i < 3; i++ {
		if _, err := svc.Donate(context.Background(), sender, receiver.ID.String(), 1, "", "0xabc"); err != nil {
			t.Fatalf("Donate: %v", err)
		}
	}

	sent, total, err := svc.ListSent(context.Background(), sender, 1, 2)
	if err != nil {
		t.Fatalf("ListSent: %v", err)
	}
	if total != 3 || len(sent) != 2 {
		t.Fatalf("sent: items=%d total=%d, want 2/3", len(sent), total)
	}

	received, total, err := svc.ListReceived(context.Background(), receiver.ID.String(), 1, 10)
	if err != nil {
		t.Fatalf("ListReceived: %v", err)
	}
	if total != 3 || len(received) != 3 {
		t.Fatalf("received: items=%d total=%d, want 3/3", len(received), total)
	}
}
