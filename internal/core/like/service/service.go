package likeapp

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonuar/Donacrypto/internal/apperr"
	likeEntity "github.com/jonuar/Donacrypto/internal/core/like"
	likePort "github.com/jonuar/Donacrypto/internal/ports/like"
	postPort "github.com/jonuar/Donacrypto/internal/ports/post"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type LikeService struct {
	LikeRepository likePort.LikeRepository
	PostRepository postPort.PostRepository
}

func NewLikeService(likeRepo likePort.LikeRepository, postRepo postPort.PostRepository) *LikeService {
	return &LikeService{
		LikeRepository: likeRepo,
		PostRepository: postRepo,
	}
}

// ToggleLike flips the (user, post) like: an existing like is removed, a
// missing one is created. The returned count is recomputed from the store.
func (s *LikeService) ToggleLike(ctx context.Context, userID, postID string) (*likePort.ToggleResult, error) {
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %q", apperr.ErrNotFound, postID)
		}
		return nil, err
	}

	exists, err := s.LikeRepository.Exists(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	var liked bool
	if exists {
		if _, err := s.LikeRepository.Delete(ctx, userID, postID); err != nil {
			return nil, err
		}
		liked = false
	} else {
		l := &likeEntity.Like{
			ID:     uuid.Must(uuid.NewV4()),
			UserID: uuid.FromStringOrNil(userID),
			PostID: uuid.FromStringOrNil(postID),
		}
		if err := s.LikeRepository.Create(ctx, l); err != nil {
			// Someone else liked it between the check and the insert; the
			// unique index on (user, post) means the state is already what
			// this writer wanted.
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, err
			}
		}
		liked = true
	}

	count, err := s.LikeRepository.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &likePort.ToggleResult{Liked: liked, LikesCount: count}, nil
}

// BatchAnnotate computes likes_count and viewer membership for a whole page
// of posts with exactly one store query over the id set. Every requested id
// gets an entry, zero-valued when the post has no likes.
func (s *LikeService) BatchAnnotate(ctx context.Context, postIDs []string, viewerID string) (map[string]*likePort.PostLikesDTO, error) {
	annotations := make(map[string]*likePort.PostLikesDTO, len(postIDs))
	for _, id := range postIDs {
		annotations[id] = &likePort.PostLikesDTO{PostID: id}
	}
	if len(postIDs) == 0 {
		return annotations, nil
	}

	likes, err := s.LikeRepository.ListByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	for _, l := range likes {
		ann, ok := annotations[l.PostID.String()]
		if !ok {
			continue
		}
		ann.LikesCount++
		if viewerID != "" && l.UserID.String() == viewerID {
			ann.ViewerLiked = true
		}
	}
	return annotations, nil
}

// PostLikes is the unbatched read for a single post, used by the public
// post-likes endpoint. viewerID may be empty for anonymous callers.
func (s *LikeService) PostLikes(ctx context.Context, postID, viewerID string) (*likePort.PostLikesDTO, error) {
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %q", apperr.ErrNotFound, postID)
		}
		return nil, err
	}

	count, err := s.LikeRepository.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	viewerLiked := false
	if viewerID != "" {
		viewerLiked, err = s.LikeRepository.Exists(ctx, viewerID, postID)
		if err != nil {
			return nil, err
		}
	}

	return &likePort.PostLikesDTO{PostID: postID, LikesCount: count, ViewerLiked: viewerLiked}, nil
}
