package feedapp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonuar/Donacrypto/internal/apperr"
	accountEntity "github.com/jonuar/Donacrypto/internal/core/account"
	"github.com/jonuar/Donacrypto/internal/core/pagination"
	accountPort "github.com/jonuar/Donacrypto/internal/ports/account"
	feedPort "github.com/jonuar/Donacrypto/internal/ports/feed"
	followPort "github.com/jonuar/Donacrypto/internal/ports/follow"
	likePort "github.com/jonuar/Donacrypto/internal/ports/like"
	postPort "github.com/jonuar/Donacrypto/internal/ports/post"

	"gorm.io/gorm"
)

// LikeAnnotator is the slice of the like service the composer needs.
type LikeAnnotator interface {
	BatchAnnotate(ctx context.Context, postIDs []string, viewerID string) (map[string]*likePort.PostLikesDTO, error)
}

// FeedService joins the follow graph, content store, like store and identity
// directory into paginated feeds and discovery listings. All cross-collection
// joins happen here, as batched id-set lookups, never per row.
type FeedService struct {
	FollowRepository followPort.FollowRepository
	PostRepository   postPort.PostRepository
	Directory        accountPort.AccountRepository
	Likes            LikeAnnotator
}

func NewFeedService(
	followRepo followPort.FollowRepository,
	postRepo postPort.PostRepository,
	directory accountPort.AccountRepository,
	likes LikeAnnotator,
) *FeedService {
	return &FeedService{
		FollowRepository: followRepo,
		PostRepository:   postRepo,
		Directory:        directory,
		Likes:            likes,
	}
}

// BuildFollowerFeed composes the follower's feed: posts from every followed
// creator, newest first, enriched with creator display info and like data.
// Following nobody is a normal empty response, not an error.
func (s *FeedService) BuildFollowerFeed(ctx context.Context, followerID string, page, limit int) (*feedPort.FeedPage, error) {
	page, limit = pagination.Normalize(page, limit, 10)

	creatorIDs, err := s.FollowRepository.FollowingIDs(ctx, followerID)
	if err != nil {
		return nil, err
	}
	if len(creatorIDs) == 0 {
		return &feedPort.FeedPage{
			Posts:   []*feedPort.FeedPostDTO{},
			Message: "You are not following any creators yet. Explore and follow some!",
			Page:    page,
			Limit:   limit,
		}, nil
	}

	posts, total, err := s.PostRepository.ListByCreators(ctx, creatorIDs, pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, err
	}

	// distinct creators on this page, resolved in one directory query
	seen := make(map[string]bool)
	pageCreators := make([]string, 0, len(posts))
	postIDs := make([]string, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID.String())
		cid := p.CreatorID.String()
		if !seen[cid] {
			seen[cid] = true
			pageCreators = append(pageCreators, cid)
		}
	}

	accounts, err := s.Directory.FindByIDs(ctx, pageCreators)
	if err != nil {
		return nil, err
	}
	creators := make(map[string]struct{ username, avatar string }, len(accounts))
	for _, a := range accounts {
		creators[a.ID.String()] = struct{ username, avatar string }{a.Username, a.AvatarURL}
	}

	annotations, err := s.Likes.BatchAnnotate(ctx, postIDs, followerID)
	if err != nil {
		return nil, err
	}

	items := make([]*feedPort.FeedPostDTO, 0, len(posts))
	for _, p := range posts {
		item := &feedPort.FeedPostDTO{
			ID:        p.ID.String(),
			Title:     p.Title,
			Content:   p.Content,
			MediaRefs: p.MediaRefs,
			CreatedAt: p.CreatedAt,
			CreatorID: p.CreatorID.String(),
		}
		if c, ok := creators[item.CreatorID]; ok {
			item.CreatorUsername = c.username
			item.CreatorAvatar = c.avatar
		}
		if ann, ok := annotations[item.ID]; ok {
			item.LikesCount = ann.LikesCount
			item.ViewerLiked = ann.ViewerLiked
		}
		items = append(items, item)
	}

	return &feedPort.FeedPage{
		Posts: items,
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pagination.Pages(total, limit),
	}, nil
}

// SearchCreators matches query against creator usernames and bios. Queries
// shorter than two characters short-circuit with a guidance message and touch
// no store at all.
func (s *FeedService) SearchCreators(ctx context.Context, query string, page, limit int, requesterID string) (*feedPort.CreatorPage, error) {
	page, limit = pagination.Normalize(page, limit, 10)

	query = strings.TrimSpace(query)
	if query == "" {
		return &feedPort.CreatorPage{
			Creators: []*feedPort.CreatorCardDTO{},
			Message:  "Provide a search term",
			Page:     page,
			Limit:    limit,
		}, nil
	}
	if utf8.RuneCountInString(query) < 2 {
		return &feedPort.CreatorPage{
			Creators: []*feedPort.CreatorCardDTO{},
			Message:  "Search term must be at least 2 characters",
			Page:     page,
			Limit:    limit,
		}, nil
	}

	accounts, total, err := s.Directory.SearchCreators(ctx, query, pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, err
	}

	cards, err := s.buildCreatorCards(ctx, accounts, requesterID)
	if err != nil {
		return nil, err
	}

	return &feedPort.CreatorPage{
		Creators: cards,
		Page:     page,
		Limit:    limit,
		Total:    total,
		Pages:    pagination.Pages(total, limit),
	}, nil
}

// ExploreCreators lists all creators. recent and alphabetical are store-level
// sorts applied before pagination. popular sorts only the fetched page by
// follower count, so its ordering is not globally consistent across pages;
// fixing that needs an indexed follower counter or a store-side aggregate
// sort, neither of which the store gives us today.
func (s *FeedService) ExploreCreators(ctx context.Context, sortBy string, page, limit int, requesterID string) (*feedPort.CreatorPage, error) {
	page, limit = pagination.Normalize(page, limit, 12)

	switch sortBy {
	case "recent", "alphabetical", "popular":
	default:
		sortBy = "popular"
	}

	accounts, total, err := s.Directory.ListCreators(ctx, sortBy, pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, err
	}

	cards, err := s.buildCreatorCards(ctx, accounts, requesterID)
	if err != nil {
		return nil, err
	}

	if sortBy == "popular" {
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].FollowersCount > cards[j].FollowersCount
		})
	}

	return &feedPort.CreatorPage{
		Creators: cards,
		Page:     page,
		Limit:    limit,
		Total:    total,
		Pages:    pagination.Pages(total, limit),
	}, nil
}

// CreatorPosts is the public listing of one creator's posts by username,
// newest first, annotated with like data for the (possibly anonymous) viewer.
func (s *FeedService) CreatorPosts(ctx context.Context, username string, page, limit int, viewerID string) (*feedPort.FeedPage, error) {
	page, limit = pagination.Normalize(page, limit, 10)

	creator, err := s.Directory.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: creator %q", apperr.ErrNotFound, username)
		}
		return nil, err
	}
	if !creator.IsCreator() {
		return nil, fmt.Errorf("%w: creator %q", apperr.ErrNotFound, username)
	}

	posts, total, err := s.PostRepository.ListByCreator(ctx, creator.ID.String(), pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, err
	}

	postIDs := make([]string, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID.String())
	}
	annotations, err := s.Likes.BatchAnnotate(ctx, postIDs, viewerID)
	if err != nil {
		return nil, err
	}

	items := make([]*feedPort.FeedPostDTO, 0, len(posts))
	for _, p := range posts {
		item := &feedPort.FeedPostDTO{
			ID:              p.ID.String(),
			Title:           p.Title,
			Content:         p.Content,
			MediaRefs:       p.MediaRefs,
			CreatedAt:       p.CreatedAt,
			CreatorID:       creator.ID.String(),
			CreatorUsername: creator.Username,
			CreatorAvatar:   creator.AvatarURL,
		}
		if ann, ok := annotations[item.ID]; ok {
			item.LikesCount = ann.LikesCount
			item.ViewerLiked = ann.ViewerLiked
		}
		items = append(items, item)
	}

	return &feedPort.FeedPage{
		Posts: items,
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pagination.Pages(total, limit),
	}, nil
}

// buildCreatorCards annotates a page of creator accounts with follower
// counts, post counts and whether the requester follows each one. Three
// batched queries for the whole page, regardless of its size.
func (s *FeedService) buildCreatorCards(ctx context.Context, accounts []*accountEntity.Account, requesterID string) ([]*feedPort.CreatorCardDTO, error) {
	cards := make([]*feedPort.CreatorCardDTO, 0, len(accounts))
	if len(accounts) == 0 {
		return cards, nil
	}

	ids := make([]string, 0, len(accounts))
	for _, a := range accounts {
		ids = append(ids, a.ID.String())
	}

	followerCounts, err := s.FollowRepository.CountFollowersByCreators(ctx, ids)
	if err != nil {
		return nil, err
	}
	postCounts, err := s.PostRepository.CountByCreators(ctx, ids)
	if err != nil {
		return nil, err
	}

	followed := make(map[string]bool)
	if requesterID != "" {
		followingIDs, err := s.FollowRepository.FollowingIDs(ctx, requesterID)
		if err != nil {
			return nil, err
		}
		for _, id := range followingIDs {
			followed[id] = true
		}
	}

	for _, a := range accounts {
		id := a.ID.String()
		cards = append(cards, &feedPort.CreatorCardDTO{
			ID:             id,
			Username:       a.Username,
			Bio:            a.Bio,
			AvatarURL:      a.AvatarURL,
			FollowersCount: followerCounts[id],
			PostsCount:     postCounts[id],
			Following:      followed[id],
		})
	}
	return cards, nil
}
