package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/cornbelt-mill/cornbelt-site-api/config"
	"github.com/cornbelt-mill/cornbelt-site-api/controllers"
	"github.com/cornbelt-mill/cornbelt-site-api/middleware"
	"github.com/cornbelt-mill/cornbelt-site-api/models"
	"github.com/cornbelt-mill/cornbelt-site-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting Cornbelt Flour Mill site server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(models.All()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Image storage: S3 when a bucket is configured, local disk otherwise
	if cfg.AWSS3Bucket != "" {
		if _, err := services.InitS3Service(); err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
		services.InitImageService(services.GetS3Service())
		log.Printf("Image uploads stored in S3 bucket %s", cfg.AWSS3Bucket)
	} else {
		services.InitLocalImageService(cfg.UploadDir)
		log.Printf("Image uploads stored locally in %s", cfg.UploadDir)
	}

	router := setupRouter(cfg)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires every route of the site API: the bespoke storefront
// endpoints, the generic CRUD endpoint, the typed admin surface and the
// SPA static fallback.
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	// Health check endpoint
	router.GET("/health", healthCheck)

	// Bespoke storefront endpoints
	router.GET("/api/ping", controllers.Ping)
	router.GET("/api/demo", controllers.Demo)
	router.POST("/api/contact", controllers.SubmitContact)
	router.POST("/api/newsletter", controllers.SubscribeNewsletter)
	router.POST("/api/orders", controllers.CreateOrder)
	router.POST("/api/chat", controllers.PostChatMessage)
	router.POST("/api/visitor-tracking", controllers.TrackVisit)

	// Public reads for the storefront
	router.GET("/api/testimonials", controllers.ListPublishedTestimonials)
	router.GET("/api/hero-images", controllers.ListActiveHeroImages)
	router.GET("/api/product-images", controllers.ListProductImages)
	router.GET("/api/footer-settings", controllers.GetFooterSettings)

	// Generic CRUD endpoint, kept path-compatible with the hosted proxy
	router.Any("/api.php", controllers.GenericCRUD)

	// Admin auth
	router.POST("/api/admin/login", controllers.AdminLogin)
	router.POST("/api/admin/setup", controllers.AdminSetup)

	// Typed admin surface
	admin := router.Group("/api/admin")
	admin.Use(middleware.AdminAuth(cfg.JWTSecret))
	{
		admin.GET("/orders", controllers.ListOrders)
		admin.POST("/orders", controllers.CreateOrder)
		admin.GET("/orders/:id", controllers.GetOrder)
		admin.PUT("/orders/:id", controllers.UpdateOrder)
		admin.DELETE("/orders/:id", controllers.DeleteOrder)

		admin.GET("/testimonials", controllers.ListTestimonials)
		admin.POST("/testimonials", controllers.CreateTestimonial)
		admin.PUT("/testimonials/:id", controllers.UpdateTestimonial)
		admin.DELETE("/testimonials/:id", controllers.DeleteTestimonial)

		admin.GET("/hero-images", controllers.ListHeroImages)
		admin.POST("/hero-images", controllers.CreateHeroImage)
		admin.PUT("/hero-images/:id", controllers.UpdateHeroImage)
		admin.DELETE("/hero-images/:id", controllers.DeleteHeroImage)

		admin.GET("/product-images", controllers.ListProductImages)
		admin.POST("/product-images", controllers.CreateProductImage)
		admin.PUT("/product-images/:id", controllers.UpdateProductImage)
		admin.DELETE("/product-images/:id", controllers.DeleteProductImage)

		admin.GET("/footer-settings", controllers.GetFooterSettings)
		admin.PUT("/footer-settings", controllers.UpdateFooterSettings)

		admin.GET("/contact-submissions", controllers.ListContactSubmissions)
		admin.DELETE("/contact-submissions/:id", controllers.DeleteContactSubmission)

		admin.GET("/newsletter", controllers.ListNewsletterRequests)
		admin.DELETE("/newsletter/:id", controllers.DeleteNewsletterRequest)

		admin.GET("/bot-responses", controllers.ListBotResponses)
		admin.POST("/bot-responses", controllers.CreateBotResponse)
		admin.PUT("/bot-responses/:id", controllers.UpdateBotResponse)
		admin.DELETE("/bot-responses/:id", controllers.DeleteBotResponse)

		admin.GET("/chat-sessions", controllers.ListChatSessions)
		admin.GET("/chat/:sessionID", controllers.GetChatSession)
		admin.POST("/chat/:sessionID", controllers.PostAdminChatMessage)

		admin.GET("/visitor-tracking", controllers.ListVisitorRecords)

		admin.GET("/admin-users", controllers.ListAdminUsers)

		admin.POST("/upload", controllers.UploadImage)
	}

	// Locally stored uploads
	router.Static("/uploads", cfg.UploadDir)

	// Everything else is the SPA: serve the built frontend and let the
	// client router handle the path. API misses stay 404s.
	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") || path == "/health" {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Route not found",
				},
			})
			return
		}
		file := filepath.Join(cfg.StaticDir, filepath.Clean(path))
		if path != "/" && fileExists(file) {
			c.File(file)
			return
		}
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})

	return router
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// healthCheck reports liveness and database connectivity
func healthCheck(c *gin.Context) {
	db := config.GetDB()
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_CONNECTION_ERROR",
					"message": "Database connection failed",
				},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cornbelt Flour Mill API is running",
	})
}
