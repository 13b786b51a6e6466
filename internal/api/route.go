package api

import (
	"net/http"

	"talkify/internal/api/middleware"
	"talkify/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Talkify API")
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", group.AuthHandler.Login)

			protected := authGroup.Group("")
			protected.Use(middleware.AuthMiddleware())
			{
				protected.POST("/logout", group.AuthHandler.Logout)
				protected.GET("/check", group.AuthHandler.Check)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("", group.PostHandler.ListPosts)
			postGroup.GET("/search", group.PostHandler.SearchPosts)
			postGroup.GET("/slug/:slug", group.PostHandler.GetPostBySlug)
			postGroup.GET("/:post_id", group.PostHandler.GetPost)
			postGroup.GET("/:post_id/comments", group.PostActionHandler.GetComments)

			protected := postGroup.Group("")
			protected.Use(middleware.AuthMiddleware())
			{
				protected.POST("", group.PostHandler.CreatePost)
				protected.PUT("/:post_id", group.PostHandler.UpdatePost)
				protected.DELETE("/:post_id", group.PostHandler.DeletePost)

				protected.POST("/:post_id/comments", group.PostActionHandler.CreateComment)
				protected.DELETE("/:post_id/comments/:comment_id", group.PostActionHandler.DeleteComment)

				protected.POST("/:post_id/like", group.PostActionHandler.LikePost)
				protected.DELETE("/:post_id/like", group.PostActionHandler.UnlikePost)
				protected.GET("/:post_id/like", group.PostActionHandler.GetLikeState)
			}
		}

		userGroup := apiGroup.Group("/users")
		{
			userGroup.GET("/:user_id/posts", group.PostHandler.GetPostsByUser)

			protected := userGroup.Group("")
			protected.Use(middleware.AuthMiddleware())
			{
				protected.GET("/me/posts", group.PostHandler.GetPostsSelf)
			}
		}

		catalogGroup := apiGroup.Group("/catalog")
		{
			catalogGroup.GET("", group.CatalogHandler.GetProducts)
			catalogGroup.GET("/categories", group.CatalogHandler.GetCategories)
			catalogGroup.GET("/category/:category", group.CatalogHandler.GetProductsByCategory)
			catalogGroup.GET("/price/:price", group.CatalogHandler.GetProductsByPrice)
			catalogGroup.GET("/title/:title", group.CatalogHandler.GetProductsByTitle)

			protected := catalogGroup.Group("")
			protected.Use(middleware.AuthMiddleware())
			{
				protected.POST("", group.CatalogHandler.CreateProduct)
			}
		}

		couponGroup := apiGroup.Group("/coupons")
		{
			couponGroup.GET("", group.CatalogHandler.GetCoupons)
			couponGroup.GET("/code/:code", group.CatalogHandler.GetCouponsByCode)

			protected := couponGroup.Group("")
			protected.Use(middleware.AuthMiddleware())
			{
				protected.POST("", group.CatalogHandler.CreateCoupon)
			}
		}
	}

	return r
}
