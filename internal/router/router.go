package router

import (
	"net/http"

	"github.com/KunalGarg-PEC/BlogsApi/internal/config"
	"github.com/KunalGarg-PEC/BlogsApi/internal/handler"
	"github.com/KunalGarg-PEC/BlogsApi/internal/mailer"
	"github.com/KunalGarg-PEC/BlogsApi/internal/media"
	"github.com/KunalGarg-PEC/BlogsApi/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine, templates and the route-protection
// policy. One explicit public allow-list, one cookie, one secret: the login
// page and the candidate-facing endpoints are open, everything else needs
// the admin session.
func SetupRouter(cfg *config.Config, db *gorm.DB, up media.Uploader, mail mailer.Mailer) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// static files and templates
	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*")

	jwtSecret := cfg.JWT.Secret
	pageAuth := middleware.RequireAdminPage(jwtSecret)
	apiAuth := middleware.RequireAdminAPI(jwtSecret)

	// ====== Pages ======
	r.GET("/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.GET("/", pageAuth, func(c *gin.Context) {
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"title": "Dashboard",
		})
	})
	r.GET("/jobs", pageAuth, func(c *gin.Context) {
		c.HTML(http.StatusOK, "jobs.html", gin.H{
			"title": "Post a Job",
		})
	})
	r.GET("/upload", pageAuth, func(c *gin.Context) {
		c.HTML(http.StatusOK, "upload.html", gin.H{
			"title": "Publish a Blog Post",
		})
	})
	admin := r.Group("/admin", pageAuth)
	admin.GET("/applications", func(c *gin.Context) {
		c.HTML(http.StatusOK, "applications.html", gin.H{
			"title": "Applications",
		})
	})
	admin.GET("/applications/:id", func(c *gin.Context) {
		c.HTML(http.StatusOK, "application_detail.html", gin.H{
			"title": "Application",
			"id":    c.Param("id"),
		})
	})

	// ====== API ======
	authHandler := handler.NewAuthHandler(cfg)
	jobHandler := handler.NewJobHandler(db)
	appHandler := handler.NewApplicationHandler(db, up, mail, cfg.Cloudinary.ResumeFolder)
	blogHandler := handler.NewBlogHandler(db, up, cfg.Cloudinary.BlogImageFolder)
	uploadHandler := handler.NewUploadHandler(up, cfg.Cloudinary.BlogImageFolder)
	contactHandler := handler.NewContactHandler(mail)
	geoHandler := handler.NewGeonamesHandler(cfg.App.GeonamesUsername)
	logHandler := handler.NewLogHandler(db, cfg.App.PageSize)

	// public API: candidate-facing reads and submissions. These are called
	// from the separate careers site, so they carry permissive CORS; the
	// admin API below deliberately does not.
	public := r.Group("/api")
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	public.Use(cors.New(corsCfg))

	// preflights have no registered route of their own; the cors
	// middleware answers them before this handler runs
	public.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	public.POST("/login", authHandler.Login)
	public.GET("/jobs", jobHandler.ListJobs)
	public.GET("/jobs/:jobId", jobHandler.GetJob)
	public.GET("/blogs", blogHandler.GetBlogs)
	public.GET("/blogs/:id", blogHandler.GetBlog)
	public.POST("/applications", appHandler.CreateApplication)
	public.POST("/check-email", appHandler.CheckEmail)
	public.POST("/contact", contactHandler.Contact)
	public.POST("/partner", contactHandler.Partner)
	public.GET("/geonames", geoHandler.Search)

	// admin API: same-origin, cookie-authenticated, audited
	protected := r.Group("/api", apiAuth, middleware.AuditMiddleware(db))
	protected.POST("/logout", authHandler.Logout)
	protected.GET("/me", authHandler.GetMe)
	protected.POST("/jobs", jobHandler.CreateJob)
	protected.PUT("/jobs/:jobId", jobHandler.UpdateJob)
	protected.DELETE("/jobs/:jobId", jobHandler.DeleteJob)
	protected.GET("/applications", appHandler.ListApplications)
	protected.GET("/applications/:id", appHandler.GetApplication)
	protected.POST("/blogs", blogHandler.CreateBlog)
	protected.POST("/upload", uploadHandler.UploadImage)
	protected.GET("/audit-logs", logHandler.ListLogs)

	return r
}
