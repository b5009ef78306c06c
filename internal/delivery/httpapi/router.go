package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/silkroute/order-tracking-service/internal/delivery/ws"
	"github.com/silkroute/order-tracking-service/internal/domain"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/metrics"
	"github.com/silkroute/order-tracking-service/internal/usecase/auth"
	usecase "github.com/silkroute/order-tracking-service/internal/usecase/order"
)

type RouterDeps struct {
	AuthUsecase   *auth.DefaultAuthUsecase
	OrderUsecase  usecase.OrderUsecase
	Users         domain.UserRepository
	Notifications domain.NotificationRepository
	WSHandler     *ws.Handler
	Metrics       *metrics.TrackerMetrics
	Log           *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(deps.Log))
	router.Use(MetricsMiddleware(deps.Metrics))

	authHandler := NewAuthHandler(deps.AuthUsecase, deps.Log)
	userHandler := NewUserHandler(deps.Users)
	orderHandler := NewOrderHandler(deps.OrderUsecase, deps.Log)
	teamHandler := NewTeamHandler(deps.OrderUsecase, deps.Log)
	notificationHandler := NewNotificationHandler(deps.Notifications)

	router.POST("/token", authHandler.Login)
	router.POST("/register", authHandler.Register)
	router.POST("/register-team", authHandler.RegisterTeam)

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// The websocket path carries its own identity check; the browser
	// websocket API cannot set an Authorization header.
	router.GET("/ws/:user_id", deps.WSHandler.Serve)

	api := router.Group("/api", AuthMiddleware(deps.AuthUsecase))
	{
		users := api.Group("/users")
		{
			users.GET("/me", userHandler.Me)
			users.GET("", TeamOnly(), userHandler.List)
		}

		projects := api.Group("/projects")
		{
			projects.POST("", orderHandler.Create)
			projects.GET("", orderHandler.List)
			projects.GET("/:project_id", orderHandler.Get)
			projects.GET("/:project_id/steps", orderHandler.GetSteps)
		}

		team := api.Group("/team", TeamOnly())
		{
			team.GET("/projects", teamHandler.ListProjects)
			team.POST("/projects/:project_id/steps/:step_number/complete", teamHandler.CompleteStep)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationHandler.List)
			notifications.POST("/:notification_id/read", notificationHandler.MarkRead)
		}
	}

	return router
}
