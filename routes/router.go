package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blogly/config"
	"blogly/controllers"
	"blogly/middleware"
	"blogly/utils"
	"blogly/web"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	if utils.Logger == nil {
		if err := utils.InitLogger(cfg); err != nil {
			panic(err)
		}
	}

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/users")
	})

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	userController := controllers.NewUserController(db)
	postController := controllers.NewPostController(db)
	tagController := controllers.NewTagController(db)

	users := r.Group("/users")
	users.GET("", userController.ListUsers)
	users.GET("/new", userController.NewUserForm)
	users.POST("/new", userController.CreateUser)
	users.GET("/:user_id", userController.GetUser)
	users.GET("/:user_id/edit", userController.EditUserForm)
	users.POST("/:user_id/edit", userController.UpdateUser)
	users.POST("/:user_id/delete", userController.DeleteUser)
	users.GET("/:user_id/posts/new", postController.NewPostForm)
	users.POST("/:user_id/posts/new", postController.CreatePost)

	posts := r.Group("/posts")
	posts.GET("/:post_id", postController.GetPost)
	posts.GET("/:post_id/edit", postController.EditPostForm)
	posts.POST("/:post_id/edit", postController.UpdatePost)
	posts.POST("/:post_id/delete", postController.DeletePost)

	tags := r.Group("/tags")
	tags.GET("", tagController.ListTags)
	tags.GET("/new", tagController.NewTagForm)
	tags.POST("/new", tagController.CreateTag)
	tags.GET("/:tag_id", tagController.GetTag)
	tags.GET("/:tag_id/edit", tagController.EditTagForm)
	tags.POST("/:tag_id/edit", tagController.UpdateTag)
	tags.POST("/:tag_id/delete", tagController.DeleteTag)

	r.NoRoute(func(ctx *gin.Context) {
		web.NotFound(ctx, "page not found")
	})

	return r
}
