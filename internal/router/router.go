package router

import (
	"net/http"
	"sort"
	"time"

	"starfaves/config"
	"starfaves/internal/handler"
	"starfaves/internal/middleware"
	"starfaves/internal/repository"
	"starfaves/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	personRepo := repository.NewPersonRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	favRepo := repository.NewFavoriteRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	catalogHandler := handler.NewCatalogHandler(personRepo, planetRepo)
	userHandler := handler.NewUserHandler(userRepo, favRepo, authSvc)
	favoriteHandler := handler.NewFavoriteHandler(favRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)

	r.POST("/auth/login", authHandler.Login)

	r.GET("/people", catalogHandler.ListPeople)
	r.GET("/people/:people_id", catalogHandler.GetPerson)
	r.GET("/planet", catalogHandler.ListPlanets)
	r.GET("/planet/:planet_id", catalogHandler.GetPlanet)

	r.GET("/users", userHandler.List)
	r.POST("/create_users", userHandler.Create)
	r.GET("/users/favorites", authMw, userHandler.ListFavorites)
	r.GET("/users/:user_id/favorites", userHandler.ListFavoritesByID)

	fav := r.Group("/favorite")
	fav.Use(authMw)
	{
		fav.POST("/planet/:planet_id", favoriteHandler.AddPlanet)
		fav.POST("/people/:people_id", favoriteHandler.AddPerson)
		fav.DELETE("/planet/:planet_id", favoriteHandler.RemovePlanet)
		fav.DELETE("/people/:people_id", favoriteHandler.RemovePerson)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Sitemap of every registered route, like the landing page of the
	// admin-era API this replaces.
	r.GET("/", func(c *gin.Context) {
		infos := r.Routes()
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})
		routes := make([]gin.H, 0, len(infos))
		for _, ri := range infos {
			routes = append(routes, gin.H{"method": ri.Method, "path": ri.Path})
		}
		c.JSON(http.StatusOK, gin.H{"routes": routes})
	})

	return r
}
