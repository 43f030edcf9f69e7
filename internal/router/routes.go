package router

import (
	"github.com/ogeoseo/go-api-server/internal/admin"
	"github.com/ogeoseo/go-api-server/internal/auth"
	"github.com/ogeoseo/go-api-server/internal/book"
	"github.com/ogeoseo/go-api-server/internal/bookclub"
	"github.com/ogeoseo/go-api-server/internal/config"
	"github.com/ogeoseo/go-api-server/internal/feed"
	"github.com/ogeoseo/go-api-server/internal/home"
	"github.com/ogeoseo/go-api-server/internal/listening"
	"github.com/ogeoseo/go-api-server/internal/mall"
	"github.com/ogeoseo/go-api-server/internal/meta"
	"github.com/ogeoseo/go-api-server/internal/mypage"
	"github.com/ogeoseo/go-api-server/internal/narration"
	"github.com/ogeoseo/go-api-server/internal/ranking"
	"github.com/ogeoseo/go-api-server/internal/review"
	"github.com/ogeoseo/go-api-server/internal/shared/fixture"
	"github.com/ogeoseo/go-api-server/internal/shared/middleware"
	"github.com/ogeoseo/go-api-server/internal/shared/token"
	"github.com/ogeoseo/go-api-server/internal/writing"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, store *fixture.Store) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, store)
	router.GET("/health", metaHandler.Health)

	// shared services
	tokenManager := token.NewJWTManager(cfg)

	// service
	authService := auth.NewAuthService(store, tokenManager)
	bookService := book.NewBookService(store)
	bookClubService := bookclub.NewBookClubService(store)
	narrationService := narration.NewNarrationService(store)
	listeningService := listening.NewListeningService(store)
	writingService := writing.NewWritingService(store)
	reviewService := review.NewReviewService(store)
	rankingService := ranking.NewRankingService(store)
	mypageService := mypage.NewMypageService(store)
	mallService := mall.NewMallService(store)
	feedService := feed.NewFeedService(store)
	homeService := home.NewHomeService(store)
	adminService := admin.NewAdminService(store, cfg.Campaign.Month)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	bookHandler := book.NewBookHandler(bookService)
	bookClubHandler := bookclub.NewBookClubHandler(bookClubService)
	narrationHandler := narration.NewNarrationHandler(narrationService)
	listeningHandler := listening.NewListeningHandler(listeningService, cfg.Listening.AnalyzeDelay)
	writingHandler := writing.NewWritingHandler(writingService)
	reviewHandler := review.NewReviewHandler(reviewService)
	rankingHandler := ranking.NewRankingHandler(rankingService)
	mypageHandler := mypage.NewMypageHandler(mypageService)
	mallHandler := mall.NewMallHandler(mallService)
	feedHandler := feed.NewFeedHandler(feedService)
	homeHandler := home.NewHomeHandler(homeService)
	adminHandler := admin.NewAdminHandler(adminService)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Identity())
	{
		authV1 := v1.Group("/auth")
		{
			authV1.POST("/login", authHandler.Login)
			authV1.GET("/me", authHandler.Me)
		}

		booksV1 := v1.Group("/books")
		{
			booksV1.GET("", bookHandler.ListBooks)
			booksV1.GET("/:id", bookHandler.GetBook)
		}

		bookClubsV1 := v1.Group("/bookclubs")
		{
			bookClubsV1.GET("", bookClubHandler.ListBookClubs)
			bookClubsV1.GET("/:id", bookClubHandler.GetBookClub)
		}

		narrationsV1 := v1.Group("/narrations")
		{
			narrationsV1.GET("/current", narrationHandler.GetCurrent)
			narrationsV1.GET("/archive", narrationHandler.GetArchive)
		}

		listeningV1 := v1.Group("/listening")
		{
			listeningV1.GET("/playlist", listeningHandler.GetPlaylist)
			listeningV1.POST("/analyze", listeningHandler.Analyze)
		}

		writingsV1 := v1.Group("/writings")
		{
			writingsV1.GET("", writingHandler.ListWritings)
			writingsV1.GET("/:id", writingHandler.GetWriting)
		}

		reviewsV1 := v1.Group("/reviews")
		{
			reviewsV1.GET("", reviewHandler.ListReviews)
			reviewsV1.GET("/:id", reviewHandler.GetReview)
		}

		v1.GET("/ranking", rankingHandler.GetRanking)

		mypageV1 := v1.Group("/mypage")
		{
			mypageV1.GET("", mypageHandler.GetProfile)
			mypageV1.GET("/badges", mypageHandler.GetBadges)
			mypageV1.GET("/points", mypageHandler.GetPoints)
		}

		mallV1 := v1.Group("/mall")
		{
			mallV1.GET("/products", mallHandler.ListProducts)
		}

		v1.GET("/feed", feedHandler.GetFeed)
		v1.GET("/home", homeHandler.GetHome)

		adminV1 := v1.Group("/admin")
		{
			adminV1.GET("/dashboard", adminHandler.GetDashboard)
		}
	}
}
