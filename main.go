package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Murugavl/RO-Catalog/internal/catalog"
	"github.com/Murugavl/RO-Catalog/internal/config"
	"github.com/Murugavl/RO-Catalog/internal/contact"
	"github.com/Murugavl/RO-Catalog/internal/database"
	"github.com/Murugavl/RO-Catalog/internal/handlers"
	"github.com/Murugavl/RO-Catalog/internal/middleware"
)

func main() {
	config.Load()
	cfg := config.AppEnv

	var repo catalog.Repository

	switch cfg.Backend {
	case config.BackendREST:
		if cfg.APIBaseURL == "" {
			log.Fatal("API_BASE_URL is required when CATALOG_BACKEND=rest")
		}
		repo = catalog.NewRESTRepository(cfg.APIBaseURL, catalog.NewBearerAuth(cfg.APIToken))
		log.Println("catalog backend: rest,", cfg.APIBaseURL)

	case config.BackendMongo:
		client, err := database.Connect(cfg.MongoURI)
		if err != nil {
			log.Fatal(err)
		}
		db := client.Database(cfg.DBName)
		log.Println("catalog backend: mongo, db", db.Name())

		if err := database.EnsureProductIndexes(db); err != nil {
			log.Printf("product index warning: %v", err)
		}

		repo = catalog.NewMongoRepository(db, catalog.NewImageStore(cfg.UploadDir))

	default:
		log.Fatalf("unknown CATALOG_BACKEND %q", cfg.Backend)
	}

	site := handlers.NewSite(
		contact.Info{
			Phone:    cfg.ContactPhone,
			Email:    cfg.ContactEmail,
			WhatsApp: cfg.ContactWhatsApp,
		},
		contact.ParseLocale(cfg.Locale),
		cfg.PublicBaseURL,
	)

	r := gin.Default()

	if cfg.Backend == config.BackendMongo {
		r.Static("/uploads/products", cfg.UploadDir)
	}

	r.GET("/", handlers.Home())

	r.GET("/api/catalog", handlers.GetCatalog(repo, site))
	r.GET("/api/catalog/:id", handlers.GetCatalogItem(repo, site))
	r.GET("/api/contact", handlers.GetContact(site))

	r.GET("/api/compare", handlers.GetCompare(repo, site))
	r.POST("/api/compare/toggle", handlers.ToggleCompare(repo))
	r.POST("/api/compare/clear", handlers.ClearCompare())

	r.POST("/api/admin/login", handlers.AdminLogin(cfg))

	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuth(cfg.JWTSecret))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		admin.GET("/models", handlers.GetAllModels(repo))
		admin.POST("/models", handlers.CreateModel(repo))
		admin.PUT("/models/:id", handlers.UpdateModel(repo))
		admin.DELETE("/models/:id", handlers.DeleteModel(repo))
		admin.PATCH("/models/:id/active", handlers.ToggleModelActive(repo))
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
