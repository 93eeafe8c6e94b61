package account

import (
	"context"
	"time"

	"github.com/jonuar/Donacrypto/internal/core/account"
)

// AccountRepository is the identity directory port: account lookup and
// creator discovery queries.
type AccountRepository interface {
	Create(ctx context.Context, acc *account.Account) (*account.Account, error)
	FindByID(ctx context.Context, id string) (*account.Account, error)
	FindByEmail(ctx context.Context, email string) (*account.Account, error)
	FindByUsername(ctx context.Context, username string) (*account.Account, error)
	// FindByIDs resolves a whole id set in one query; used by the feed
	// composer to enrich a page of posts without per-row lookups.
	FindByIDs(ctx context.Context, ids []string) ([]*account.Account, error)
	// SearchCreators matches query as a case-insensitive substring of the
	// username or bio of role=creator accounts, ordered by username.
	SearchCreators(ctx context.Context, query string, offset, limit int) ([]*account.Account, int64, error)
	// ListCreators lists role=creator accounts ordered per sort
	// ("recent" or "alphabetical"; anything else falls back to username).
	ListCreators(ctx context.Context, sort string, offset, limit int) ([]*account.Account, int64, error)
}

// TokenBlacklist is the persisted revocation store the auth gate consults.
// Keyed by token jti so revocation survives restarts and is shared across
// instances.
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type AccountDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
