package postapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonuar/Donacrypto/internal/apperr"
	postEntity "github.com/jonuar/Donacrypto/internal/core/post"
	"github.com/jonuar/Donacrypto/internal/core/pagination"
	postPort "github.com/jonuar/Donacrypto/internal/ports/post"

	"github.com/gofrs/uuid"
)

type PostService struct {
	PostRepository postPort.PostRepository
}

func NewPostService(repo postPort.PostRepository) *PostService {
	return &PostService{
		PostRepository: repo,
	}
}

// CreatePost validates and stores a new post for the creator. The id and
// timestamps are assigned here; nothing in this service ever updates a post.
func (s *PostService) CreatePost(ctx context.Context, creatorID, title, content string, mediaRefs []string) (*postPort.PostDTO, error) {
	cid, err := uuid.FromString(creatorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid creator id", apperr.ErrValidation)
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", apperr.ErrValidation)
	}
	if mediaRefs == nil {
		mediaRefs = []string{}
	}

	p := &postEntity.Post{
		ID:        uuid.Must(uuid.NewV4()),
		CreatorID: cid,
		Title:     title,
		Content:   content,
		MediaRefs: mediaRefs,
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return toDTO(created), nil
}

// ListPostsByCreator pages a creator's posts newest first. The returned total
// is the full count matching the creator, independent of the window.
func (s *PostService) ListPostsByCreator(ctx context.Context, creatorID string, page, limit int) ([]*postPort.PostDTO, int64, error) {
	page, limit = pagination.Normalize(page, limit, 10)
	posts, total, err := s.PostRepository.ListByCreator(ctx, creatorID, pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		items = append(items, toDTO(p))
	}
	return items, total, nil
}

// DeletePost removes requesterID's post. The lookup is filtered by both post
// id and requester, so a missing post and another creator's post are the same
// NotFound to the caller.
func (s *PostService) DeletePost(ctx context.Context, postID, requesterID string) error {
	deleted, err := s.PostRepository.DeleteOwned(ctx, postID, requesterID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: post not found or not authorized", apperr.ErrNotFound)
	}
	return nil
}

func toDTO(p *postEntity.Post) *postPort.PostDTO {
	return &postPort.PostDTO{
		ID:        p.ID.String(),
		CreatorID: p.CreatorID.String(),
		Title:     p.Title,
		Content:   p.Content,
		MediaRefs: p.MediaRefs,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
