package followapp

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonuar/Donacrypto/internal/apperr"
	accountEntity "github.com/jonuar/Donacrypto/internal/core/account"
	followEntity "github.com/jonuar/Donacrypto/internal/core/follow"
	"github.com/jonuar/Donacrypto/internal/core/pagination"
	accountPort "github.com/jonuar/Donacrypto/internal/ports/account"
	followPort "github.com/jonuar/Donacrypto/internal/ports/follow"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type FollowService struct {
	FollowRepository followPort.FollowRepository
	Directory        accountPort.AccountRepository
}

func NewFollowService(repo followPort.FollowRepository, directory accountPort.AccountRepository) *FollowService {
	return &FollowService{
		FollowRepository: repo,
		Directory:        directory,
	}
}

// Follow creates a follow edge from followerID to the creator referenced by
// creatorRef (an account id or a username). It is idempotent: following
// someone twice reports alreadyFollowing and leaves exactly one edge behind.
func (s *FollowService) Follow(ctx context.Context, followerID, creatorRef string) (string, error) {
	creator, err := s.resolveCreator(ctx, creatorRef)
	if err != nil {
		return "", err
	}

	if creator.ID.String() == followerID {
		return "", fmt.Errorf("%w: cannot follow yourself", apperr.ErrInvalidOperation)
	}

	exists, err := s.FollowRepository.Exists(ctx, followerID, creator.ID.String())
	if err != nil {
		return "", err
	}
	if exists {
		return followPort.OutcomeAlreadyFollowing, nil
	}

	edge := &followEntity.FollowEdge{
		ID:         uuid.Must(uuid.NewV4()),
		FollowerID: uuid.FromStringOrNil(followerID),
		CreatorID:  creator.ID,
	}

	if _, err := s.FollowRepository.Create(ctx, edge); err != nil {
		// A racing writer inserted the edge between our check and the write;
		// the unique index caught it, which is the outcome we wanted anyway.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return followPort.OutcomeAlreadyFollowing, nil
		}
		return "", err
	}
	return followPort.OutcomeCreated, nil
}

// Unfollow removes the edge. Removing an edge that does not exist is not an
// error; it reports notFollowing.
func (s *FollowService) Unfollow(ctx context.Context, followerID, creatorID string) (string, error) {
	removed, err := s.FollowRepository.Delete(ctx, followerID, creatorID)
	if err != nil {
		return "", err
	}
	if removed == 0 {
		return followPort.OutcomeNotFollowing, nil
	}
	return followPort.OutcomeRemoved, nil
}

func (s *FollowService) ListFollowing(ctx context.Context, followerID string, page, limit int) ([]*followPort.FollowingDTO, int64, error) {
	page, limit = pagination.Normalize(page, limit, 10)
	edges, total, err := s.FollowRepository.ListFollowing(ctx, followerID, pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, 0, err
	}

	following := make([]*followPort.FollowingDTO, 0, len(edges))
	for _, e := range edges {
		following = append(following, &followPort.FollowingDTO{
			CreatorID:  e.CreatorID.String(),
			FollowedAt: e.CreatedAt,
		})
	}
	return following, total, nil
}

func (s *FollowService) ListFollowers(ctx context.Context, creatorID string, page, limit int) ([]*followPort.FollowerDTO, int64, error) {
	page, limit = pagination.Normalize(page, limit, 20)
	edges, total, err := s.FollowRepository.ListFollowers(ctx, creatorID, pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, 0, err
	}

	followers := make([]*followPort.FollowerDTO, 0, len(edges))
	for _, e := range edges {
		followers = append(followers, &followPort.FollowerDTO{
			FollowerID: e.FollowerID.String(),
			FollowedAt: e.CreatedAt,
		})
	}
	return followers, total, nil
}

// resolveCreator accepts an account id or a username and returns the account,
// failing with NotFound when the target is absent or is not a creator.
func (s *FollowService) resolveCreator(ctx context.Context, creatorRef string) (*accountEntity.Account, error) {
	var (
		acc *accountEntity.Account
		err error
	)
	if _, uuidErr := uuid.FromString(creatorRef); uuidErr == nil {
		acc, err = s.Directory.FindByID(ctx, creatorRef)
	} else {
		acc, err = s.Directory.FindByUsername(ctx, creatorRef)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: creator %q", apperr.ErrNotFound, creatorRef)
		}
		return nil, err
	}
	if !acc.IsCreator() {
		return nil, fmt.Errorf("%w: creator %q", apperr.ErrNotFound, creatorRef)
	}
	return acc, nil
}
