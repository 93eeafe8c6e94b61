package httpapi

import (
	"context"

	"github.com/jonuar/Donacrypto/internal/adapters/httpapi/middleware"
	"github.com/jonuar/Donacrypto/internal/core/account"
	accountPort "github.com/jonuar/Donacrypto/internal/ports/account"
	donationPort "github.com/jonuar/Donacrypto/internal/ports/donation"
	feedPort "github.com/jonuar/Donacrypto/internal/ports/feed"
	followPort "github.com/jonuar/Donacrypto/internal/ports/follow"
	likePort "github.com/jonuar/Donacrypto/internal/ports/like"
	postPort "github.com/jonuar/Donacrypto/internal/ports/post"
	statsPort "github.com/jonuar/Donacrypto/internal/ports/stats"

	"github.com/gin-gonic/gin"
)

// Inbound ports: the interfaces the controllers need, implemented by the
// core services and injected from main.

type AccountUseCase interface {
	Register(ctx context.Context, username, email, password, role, firstName, lastName string) (*accountPort.AccountDTO, error)
	Login(ctx context.Context, email, password string) (*accountPort.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	GetProfile(ctx context.Context, accountID string) (*accountPort.AccountDTO, error)
}

type FollowUseCase interface {
	Follow(ctx context.Context, followerID, creatorRef string) (string, error)
	Unfollow(ctx context.Context, followerID, creatorID string) (string, error)
	ListFollowing(ctx context.Context, followerID string, page, limit int) ([]*followPort.FollowingDTO, int64, error)
	ListFollowers(ctx context.Context, creatorID string, page, limit int) ([]*followPort.FollowerDTO, int64, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, creatorID, title, content string, mediaRefs []string) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, postID, requesterID string) error
}

type LikeUseCase interface {
	ToggleLike(ctx context.Context, userID, postID string) (*likePort.ToggleResult, error)
	PostLikes(ctx context.Context, postID, viewerID string) (*likePort.PostLikesDTO, error)
}

type FeedUseCase interface {
	BuildFollowerFeed(ctx context.Context, followerID string, page, limit int) (*feedPort.FeedPage, error)
	SearchCreators(ctx context.Context, query string, page, limit int, requesterID string) (*feedPort.CreatorPage, error)
	ExploreCreators(ctx context.Context, sortBy string, page, limit int, requesterID string) (*feedPort.CreatorPage, error)
	CreatorPosts(ctx context.Context, username string, page, limit int, viewerID string) (*feedPort.FeedPage, error)
}

type StatsUseCase interface {
	GetCreatorDashboard(ctx context.Context, creatorID string) (*statsPort.DashboardDTO, error)
	PublicCreatorProfile(ctx context.Context, username string) (*statsPort.CreatorProfileDTO, error)
}

type DonationUseCase interface {
	Donate(ctx context.Context, senderID, receiverID string, amount float64, currency, txHash string) (*donationPort.DonationDTO, error)
	ListSent(ctx context.Context, senderID string, page, limit int) ([]*donationPort.DonationDTO, int64, error)
	ListReceived(ctx context.Context, receiverID string, page, limit int) ([]*donationPort.DonationDTO, int64, error)
}

// SetupRoutes wires controllers to routes; use cases are injected.
func SetupRoutes(
	auth *middleware.Auth,
	accountUC AccountUseCase,
	followUC FollowUseCase,
	postUC PostUseCase,
	likeUC LikeUseCase,
	feedUC FeedUseCase,
	statsUC StatsUseCase,
	donationUC DonationUseCase,
) *gin.Engine {
	r := gin.Default()
	ac := NewAccountController(accountUC)
	fc := NewFollowController(followUC)
	pc := NewPostController(postUC)
	lc := NewLikeController(likeUC)
	fdc := NewFeedController(feedUC)
	sc := NewStatsController(statsUC)
	dc := NewDonationController(donationUC)

	// public
	r.POST("/register", ac.Register)
	r.POST("/login", ac.Login)
	r.GET("/creators/:username", sc.GetPublicProfile)
	r.GET("/creators/:username/posts", auth.OptionalJWT(), fdc.GetCreatorPosts)
	r.GET("/posts/:id/likes", auth.OptionalJWT(), lc.GetPostLikes)

	// any authenticated account
	r.POST("/logout", auth.JWTAuth(), ac.Logout)
	r.GET("/profile", auth.JWTAuth(), ac.GetProfile)
	r.POST("/like", auth.JWTAuth(), lc.ToggleLike)
	r.POST("/donate", auth.JWTAuth(), dc.Donate)
	r.GET("/donations/sent", auth.JWTAuth(), dc.GetSent)
	r.GET("/donations/received", auth.JWTAuth(), dc.GetReceived)

	// follower role
	follower := r.Group("/", auth.JWTAuth(), auth.RequireRole(account.RoleFollower))
	follower.POST("/follow", fc.Follow)
	follower.POST("/unfollow", fc.Unfollow)
	follower.GET("/following", fc.GetFollowing)
	follower.GET("/feed", fdc.GetFeed)
	follower.GET("/search-creators", fdc.SearchCreators)
	follower.GET("/explore-creators", fdc.ExploreCreators)

	// creator role
	creator := r.Group("/", auth.JWTAuth(), auth.RequireRole(account.RoleCreator))
	creator.POST("/posts", pc.CreatePost)
	creator.DELETE("/posts/:id", pc.DeletePost)
	creator.GET("/followers", fc.GetFollowers)
	creator.GET("/creator/dashboard", sc.GetDashboard)

	return r
}
