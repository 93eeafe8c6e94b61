package postapp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonuar/Donacrypto/internal/apperr"
	postEntity "github.com/jonuar/Donacrypto/internal/core/post"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type fakePostRepo struct {
	posts []*postEntity.Post
}

func (r *fakePostRepo) Create(ctx context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.posts = append(r.posts, p)
	return p, nil
}

func (r *fakePostRepo) FindByID(ctx context.Context, id string) (*postEntity.Post, error) {
	for _, p := range r.posts {
		if p.ID.String() == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePostRepo) ListByCreator(ctx context.Context, creatorID string, offset, limit int) ([]*postEntity.Post, int64, error) {
	matched := make([]*postEntity.Post, 0)
	for _, p := range r.posts {
		if p.CreatorID.String() == creatorID {
			matched = append(matched, p)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakePostRepo) ListByCreators(ctx context.Context, creatorIDs []string, offset, limit int) ([]*postEntity.Post, int64, error) {
	return nil, 0, nil
}

func (r *fakePostRepo) DeleteOwned(ctx context.Context, postID, creatorID string) (int64, error) {
	kept := r.posts[:0]
	var removed int64
	for _, p := range r.posts {
		if p.ID.String() == postID && p.CreatorID.String() == creatorID {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	r.posts = kept
	return removed, nil
}

func (r *fakePostRepo) CountByCreator(ctx context.Context, creatorID string) (int64, error) {
	var n int64
	for _, p := range r.posts {
		if p.CreatorID.String() == creatorID {
			n++
		}
	}
	return n, nil
}

func (r *fakePostRepo) CountByCreators(ctx context.Context, creatorIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, id := range creatorIDs {
		n, _ := r.CountByCreator(ctx, id)
		if n > 0 {
			counts[id] = n
		}
	}
	return counts, nil
}

func TestCreatePostValidation(t *testing.T) {
	svc := NewPostService(&fakePostRepo{})
	creatorID := uuid.Must(uuid.NewV4()).String()

	if _, err := svc.CreatePost(context.Background(), "not-a-uuid", "t", "c", nil); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("bad creator id: err = %v, want ErrValidation", err)
	}
	if _, err := svc.CreatePost(context.Background(), creatorID, "  ", "c", nil); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("blank title: err = %v, want ErrValidation", err)
	}
	if _, err := svc.CreatePost(context.Background(), creatorID, "t", "", nil); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("blank content: err = %v, want ErrValidation", err)
	}
}

func TestCreatePostDefaultsMediaRefs(t *testing.T) {
	svc := NewPostService(&fakePostRepo{})
	creatorID := uuid.Must(uuid.NewV4()).String()

	dto, err := svc.CreatePost(context.Background(), creatorID, "hello", "world", nil)
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if dto.MediaRefs == nil || len(dto.MediaRefs) != 0 {
		t.Fatalf("MediaRefs = %v, want empty non-nil slice", dto.MediaRefs)
	}
	if dto.CreatorID != creatorID {
		t.Fatalf("CreatorID = %q, want %q", dto.CreatorID, creatorID)
	}
}

func TestDeletePostOwnership(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	stranger := uuid.Must(uuid.NewV4())
	post := &postEntity.Post{ID: uuid.Must(uuid.NewV4()), CreatorID: owner, Title: "t", Content: "c"}
	repo := &fakePostRepo{posts: []*postEntity.Post{post}}
	svc := NewPostService(repo)

	// someone else's post and a missing post both come back NotFound
	if err := svc.DeletePost(context.Background(), post.ID.String(), stranger.String()); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("stranger delete: err = %v, want ErrNotFound", err)
	}
	if err := svc.DeletePost(context.Background(), uuid.Must(uuid.NewV4()).String(), owner.String()); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("missing post: err = %v, want ErrNotFound", err)
	}

	if err := svc.DeletePost(context.Background(), post.ID.String(), owner.String()); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if len(repo.posts) != 0 {
		t.Fatalf("posts = %d, want 0", len(repo.posts))
	}
}

func TestListPostsByCreatorTotal(t *testing.T) {
	creator := uuid.Must(uuid.NewV4())
	repo := &fakePostRepo{}
	for i := 0; i < 15; i++ {
		repo.posts = append(repo.posts, &postEntity.Post{
			ID:        uuid.Must(uuid.NewV4()),
			CreatorID: creator,
			Title:     "t",
			Content:   "c",
		})
	}
	svc := NewPostService(repo)

	items, total, err := svc.ListPostsByCreator(context.Background(), creator.String(), 2, 10)
	if err != nil {
		t.Fatalf("ListPostsByCreator: %v", err)
	}
	if total != 15 {
		t.Fatalf("total = %d, want 15", total)
	}
	if len(items) != 5 {
		t.Fatalf("page items = %d, want 5", len(items))
	}

	// a page past the end is valid and empty, with the same total
	items, total, err = svc.ListPostsByCreator(context.Background(), creator.String(), 5, 10)
	if err != nil {
		t.Fatalf("ListPostsByCreator past end: %v", err)
	}
	if total != 15 || len(items) != 0 {
		t.Fatalf("past-end page: items=%d total=%d, want 0/15", len(items), total)
	}
}
