package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"talent-mailer/internal/domain/user"
	"talent-mailer/internal/handler/api"
	"talent-mailer/internal/handler/middleware"
	"talent-mailer/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Params struct {
	Config         config.Config
	Logger         *middleware.Logger
	EmailHandler   *api.EmailHandler
	AdminHandler   *api.AdminEmailSendHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.IPRateLimiter
	Metrics        http.Handler
}

func NewRouter(engine *gin.Engine, p Params) {
	setupMiddleware(engine, p)
	setupRoutes(engine, p)
}

func setupMiddleware(engine *gin.Engine, p Params) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	engine.Use(p.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, p Params) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(p.Metrics))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		auth.Use(p.RateLimiter.Middleware())
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/verification-email", Handler: p.EmailHandler.RequestVerificationEmail},
				{Method: http.MethodPost, Path: "/password-reset", Handler: p.EmailHandler.RequestPasswordReset},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(p.AuthMiddleware.RequireAuth(), p.AuthMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/email-sends/current", Handler: p.AdminHandler.GetCurrentWindow},
				{Method: http.MethodGet, Path: "/email-sends", Handler: p.AdminHandler.ListRecent},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
