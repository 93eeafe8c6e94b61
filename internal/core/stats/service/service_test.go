package statsapp

import (
	"context"
	"errors"
	"testing"

	"github.com/jonuar/Donacrypto/internal/apperr"
	accountEntity "github.com/jonuar/Donacrypto/internal/core/account"
	donationEntity "github.com/jonuar/Donacrypto/internal/core/donation"
	followEntity "github.com/jonuar/Donacrypto/internal/core/follow"
	postEntity "github.com/jonuar/Donacrypto/internal/core/post"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeDonationRepo struct {
	records []*donationEntity.Donation
	failAll bool
}

func (r *fakeDonationRepo) Create(ctx context.Context, d *donationEntity.Donation) (*donationEntity.Donation, error) {
	r.records = append(r.records, d)
	return d, nil
}

func (r *fakeDonationRepo) ListBySender(ctx context.Context, senderID string, offset, limit int) ([]*donationEntity.Donation, int64, error) {
	return nil, 0, nil
}

func (r *fakeDonationRepo) ListByReceiver(ctx context.Context, receiverID string, offset, limit int) ([]*donationEntity.Donation, int64, error) {
	return nil, 0, nil
}

func (r *fakeDonationRepo) AggregateByReceiver(ctx context.Context, receiverID string) (float64, int64, error) {
	if r.failAll {
		return 0, 0, errors.New("ledger unavailable")
	}
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

type fakeFollowRepo struct {
	counts  map[string]int64
	failAll bool
}

func (r *fakeFollowRepo) Create(ctx context.Context, edge *followEntity.FollowEdge) (*followEntity.FollowEdge, error) {
	return edge, nil
}

func (r *fakeFollowRepo) Delete(ctx context.Context, followerID, creatorID string) (int64, error) {
	return 0, nil
}

func (r *fakeFollowRepo) Exists(ctx context.Context, followerID, creatorID string) (bool, error) {
	return false, nil
}

func (r *fakeFollowRepo) ListFollowing(ctx context.Context, followerID string, offset, limit int) ([]*followEntity.FollowEdge, int64, error) {
	return nil, 0, nil
}

func (r *fakeFollowRepo) ListFollowers(ctx context.Context, creatorID string, offset, limit int) ([]*followEntity.FollowEdge, int64, error) {
	return nil, 0, nil
}

func (r *fakeFollowRepo) FollowingIDs(ctx context.Context, followerID string) ([]string, error) {
	return nil, nil
}

func (r *fakeFollowRepo) CountFollowers(ctx context.Context, creatorID string) (int64, error) {
	if r.failAll {
		return 0, errors.New("graph unavailable")
	}
	return r.counts[creatorID], nil
}

func (r *fakeFollowRepo) CountFollowersByCreators(ctx context.Context, creatorIDs []string) (map[string]int64, error) {
	return r.counts, nil
}

type fakePostRepo struct {
	counts map[string]int64
}

func (r *fakePostRepo) Create(ctx context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	return p, nil
}

func (r *fakePostRepo) FindByID(ctx context.Context, id string) (*postEntity.Post, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePostRepo) ListByCreator(ctx context.Context, creatorID string, offset, limit int) ([]*postEntity.Post, int64, error) {
	return nil, 0, nil
}

func (r *fakePostRepo) ListByCreators(ctx context.Context, creatorIDs []string, offset, limit int) ([]*postEntity.Post, int64, error) {
	return nil, 0, nil
}

func (r *fakePostRepo) DeleteOwned(ctx context.Context, postID, creatorID string) (int64, error) {
	return 0, nil
}

func (r *fakePostRepo) CountByCreator(ctx context.Context, creatorID string) (int64, error) {
	return r.counts[creatorID], nil
}

func (r *fakePostRepo) CountByCreators(ctx context.Context, creatorIDs []string) (map[string]int64, error) {
	return r.counts, nil
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
	for _, a := range d.accounts {
		if a.Username == username {
			return a, nil
		}
	}
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

func newService(donations *fakeDonationRepo, follows *fakeFollowRepo, posts *fakePostRepo, directory *fakeDirectory) *StatsService {
	return NewStatsService(donations, follows, posts, directory, zap.NewNop())
}

func TestGetCreatorStatsEmptyLedger(t *testing.T) {
	svc := newService(&fakeDonationRepo{}, &fakeFollowRepo{}, &fakePostRepo{}, &fakeDirectory{})

	stats, err := svc.GetCreatorStats(context.Background(), uuid.Must(uuid.NewV4()).String())
	if err != nil {
		t.Fatalf("GetCreatorStats: %v", err)
	}
	if stats.TotalAmount != 0 || stats.TotalCount != 0 {
		t.Fatalf("stats = %+v, want zeros", stats)
	}
}

func TestGetCreatorDashboard(t *testing.T) {
	creator := uuid.Must(uuid.NewV4())
	donations := &fakeDonationRepo{records: []*donationEntity.Donation{
		{ID: uuid.Must(uuid.NewV4()), ReceiverID: creator, Amount: 1.5},
		{ID: uuid.Must(uuid.NewV4()), ReceiverID: creator, Amount: 0.5},
	}}
	follows := &fakeFollowRepo{counts: map[string]int64{creator.String(): 7}}
	posts := &fakePostRepo{counts: map[string]int64{creator.String(): 3}}
	svc := newService(donations, follows, posts, &fakeDirectory{})

	dashboard, err := svc.GetCreatorDashboard(context.Background(), creator.String())
	if err != nil {
		t.Fatalf("GetCreatorDashboard: %v", err)
	}
	if dashboard.FollowersCount != 7 || dashboard.PostsCount != 3 {
		t.Fatalf("dashboard = %+v, want 7 followers / 3 posts", dashboard)
	}
	if dashboard.Donations.TotalAmount != 2.0 || dashboard.Donations.TotalCount != 2 {
		t.Fatalf("donations = %+v, want 2.0 over 2 records", dashboard.Donations)
	}
}

func TestDashboardSurvivesPartialFailures(t *testing.T) {
	creator := uuid.Must(uuid.NewV4())
	donations := &fakeDonationRepo{failAll: true}
	follows := &fakeFollowRepo{failAll: true}
	posts := &fakePostRepo{counts: map[string]int64{creator.String(): 3}}
	svc := newService(donations, follows, posts, &fakeDirectory{})

	dashboard, err := svc.GetCreatorDashboard(context.Background(), creator.String())
	if err != nil {
		t.Fatalf("GetCreatorDashboard: %v", err)
	}
	if dashboard.FollowersCount != 0 {
		t.Fatalf("FollowersCount = %d, want zero on failure", dashboard.FollowersCount)
	}
	if dashboard.PostsCount != 3 {
		t.Fatalf("PostsCount = %d, want 3", dashboard.PostsCount)
	}
	if dashboard.Donations == nil || dashboard.Donations.TotalCount != 0 {
		t.Fatalf("Donations = %+v, want zero value on failure", dashboard.Donations)
	}
}

func TestPublicCreatorProfile(t *testing.T) {
	creator := &accountEntity.Account{
		ID:       uuid.Must(uuid.NewV4()),
		Username: "alice",
		Role:     accountEntity.RoleCreator,
		Bio:      "making things",
	}
	follower := &accountEntity.Account{
		ID:       uuid.Must(uuid.NewV4()),
		Username: "bob",
		Role:     accountEntity.RoleFollower,
	}
	donations := &fakeDonationRepo{records: []*donationEntity.Donation{
		{ID: uuid.Must(uuid.NewV4()), ReceiverID: creator.ID, Amount: 4},
	}}
	svc := newService(donations, &fakeFollowRepo{}, &fakePostRepo{}, &fakeDirectory{accounts: []*accountEntity.Account{creator, follower}})

	profile, err := svc.PublicCreatorProfile(context.Background(), "alice")
	if err != nil {
		t.Fatalf("PublicCreatorProfile: %v", err)
	}
	if profile.Username != "alice" || profile.TotalDonationsReceived != 4 || profile.NumberOfDonations != 1 {
		t.Fatalf("profile = %+v", profile)
	}

	if _, err := svc.PublicCreatorProfile(context.Background(), "nobody"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("unknown handle: err = %v, want ErrNotFound", err)
	}
	if _, err := svc.PublicCreatorProfile(context.Background(), "bob"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("follower handle: err = %v, want ErrNotFound", err)
	}
}
