package wire

import (
	"talkify/internal/api"
	"talkify/internal/api/config"
	"talkify/internal/api/handler"
	"talkify/internal/pkg/oauth"
	"talkify/internal/repository"
	"talkify/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer holds the top-level components of the app.
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *mongo.Database
}

func BuildApplication(db *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	catalogRepo := repository.NewCatalogRepo(db)
	couponRepo := repository.NewCouponRepo(db)

	verifier := oauth.NewGoogleVerifier(cfg.Auth.GoogleClientID)

	authService := service.NewAuthService(verifier, userRepo)
	postService := service.NewPostService(postRepo, userRepo, likeRepo)
	actionService := service.NewPostActionService(postRepo, likeRepo, userRepo)
	catalogService := service.NewCatalogService(catalogRepo, couponRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:       handler.NewAuthHandler(authService),
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(actionService),
		CatalogHandler:    handler.NewCatalogHandler(catalogService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
