package statsapp

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonuar/Donacrypto/internal/apperr"
	accountPort "github.com/jonuar/Donacrypto/internal/ports/account"
	donationPort "github.com/jonuar/Donacrypto/internal/ports/donation"
	followPort "github.com/jonuar/Donacrypto/internal/ports/follow"
	postPort "github.com/jonuar/Donacrypto/internal/ports/post"
	statsPort "github.com/jonuar/Donacrypto/internal/ports/stats"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StatsService is read-only: it aggregates over the donation ledger, the
// follow graph and the content store and never writes anything.
type StatsService struct {
	DonationRepository donationPort.DonationRepository
	FollowRepository   followPort.FollowRepository
	PostRepository     postPort.PostRepository
	Directory          accountPort.AccountRepository
	Logger             *zap.Logger
}

func NewStatsService(
	donationRepo donationPort.DonationRepository,
	followRepo followPort.FollowRepository,
	postRepo postPort.PostRepository,
	directory accountPort.AccountRepository,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		DonationRepository: donationRepo,
		FollowRepository:   followRepo,
		PostRepository:     postRepo,
		Directory:          directory,
		Logger:             logger,
	}
}

// GetCreatorStats sums the ledger for one receiver. A creator who never
// received anything gets {0, 0}, not an error.
func (s *StatsService) GetCreatorStats(ctx context.Context, creatorID string) (*donationPort.DonationStatsDTO, error) {
	amount, count, err := s.DonationRepository.AggregateByReceiver(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	return &donationPort.DonationStatsDTO{TotalAmount: amount, TotalCount: count}, nil
}

// GetCreatorDashboard composes follower count, post count and donation stats
// into one view. A failing sub-query contributes its zero value and is
// logged; the dashboard itself never fails on a partial outage.
func (s *StatsService) GetCreatorDashboard(ctx context.Context, creatorID string) (*statsPort.DashboardDTO, error) {
	dashboard := &statsPort.DashboardDTO{
		Donations: &donationPort.DonationStatsDTO{},
	}

	followers, err := s.FollowRepository.CountFollowers(ctx, creatorID)
	if err != nil {
		s.Logger.Warn("dashboard: follower count failed", zap.String("creatorID", creatorID), zap.Error(err))
	} else {
		dashboard.FollowersCount = followers
	}

	posts, err := s.PostRepository.CountByCreator(ctx, creatorID)
	if err != nil {
		s.Logger.Warn("dashboard: post count failed", zap.String("creatorID", creatorID), zap.Error(err))
	} else {
		dashboard.PostsCount = posts
	}

	donations, err := s.GetCreatorStats(ctx, creatorID)
	if err != nil {
		s.Logger.Warn("dashboard: donation stats failed", zap.String("creatorID", creatorID), zap.Error(err))
	} else {
		dashboard.Donations = donations
	}

	return dashboard, nil
}

// PublicCreatorProfile is the anonymous profile view for a creator handle,
// including lifetime donation totals.
func (s *StatsService) PublicCreatorProfile(ctx context.Context, username string) (*statsPort.CreatorProfileDTO, error) {
	acc, err := s.Directory.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: creator %q", apperr.ErrNotFound, username)
		}
		return nil, err
	}
	if !acc.IsCreator() {
		return nil, fmt.Errorf("%w: creator %q", apperr.ErrNotFound, username)
	}

	stats, err := s.GetCreatorStats(ctx, acc.ID.String())
	if err != nil {
		return nil, err
	}

	return &statsPort.CreatorProfileDTO{
		Username:               acc.Username,
		Bio:                    acc.Bio,
		AvatarURL:              acc.AvatarURL,
		TotalDonationsReceived: stats.TotalAmount,
		NumberOfDonations:      stats.TotalCount,
	}, nil
}
