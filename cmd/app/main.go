package main

import (
	"os"

	dbadapter "github.com/jonuar/Donacrypto/internal/adapters/database"
	"github.com/jonuar/Donacrypto/internal/adapters/httpapi"
	"github.com/jonuar/Donacrypto/internal/adapters/httpapi/middleware"
	redisadapter "github.com/jonuar/Donacrypto/internal/adapters/redis"
	"github.com/jonuar/Donacrypto/internal/config"
	"github.com/jonuar/Donacrypto/internal/core/account"
	accountapp "github.com/jonuar/Donacrypto/internal/core/account/service"
	"github.com/jonuar/Donacrypto/internal/core/donation"
	donationapp "github.com/jonuar/Donacrypto/internal/core/donation/service"
	feedapp "github.com/jonuar/Donacrypto/internal/core/feed/service"
	"github.com/jonuar/Donacrypto/internal/core/follow"
	followapp "github.com/jonuar/Donacrypto/internal/core/follow/service"
	"github.com/jonuar/Donacrypto/internal/core/like"
	likeapp "github.com/jonuar/Donacrypto/internal/core/like/service"
	"github.com/jonuar/Donacrypto/internal/core/post"
	postapp "github.com/jonuar/Donacrypto/internal/core/post/service"
	statsapp "github.com/jonuar/Donacrypto/internal/core/stats/service"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&account.Account{},
		&follow.FollowEdge{},
		&post.Post{},
		&like.Like{},
		&donation.Donation{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}

	config.Logger.Info("Database migrations completed")

	config.InitRedis()

	defer closeResources(config.Logger)

	config.Logger.Info("App is running...")

	jwtKey := []byte(os.Getenv("JWT_SECRET"))

	accountRepo := dbadapter.NewAccountRepositoryDatabase()
	followRepo := dbadapter.NewFollowRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	likeRepo := dbadapter.NewLikeRepositoryDatabase()
	donationRepo := dbadapter.NewDonationRepositoryDatabase()
	blacklist := redisadapter.NewBlacklistRepositoryRedis(config.RedisClient)

	accountSvc := accountapp.NewAccountService(accountRepo, blacklist, jwtKey)
	followSvc := followapp.NewFollowService(followRepo, accountRepo)
	postSvc := postapp.NewPostService(postRepo)
	likeSvc := likeapp.NewLikeService(likeRepo, postRepo)
	feedSvc := feedapp.NewFeedService(followRepo, postRepo, accountRepo, likeSvc)
	statsSvc := statsapp.NewStatsService(donationRepo, followRepo, postRepo, accountRepo, config.Logger)
	donationSvc := donationapp.NewDonationService(donationRepo, accountRepo)

	auth := middleware.NewAuth(jwtKey, blacklist, accountRepo, config.Logger)

	r := httpapi.SetupRoutes(auth, accountSvc, followSvc, postSvc, likeSvc, feedSvc, statsSvc, donationSvc)

	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
