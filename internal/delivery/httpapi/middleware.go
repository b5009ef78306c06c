package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/silkroute/order-tracking-service/internal/domain"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/metrics"
	"github.com/silkroute/order-tracking-service/internal/usecase/auth"
)

const actorContextKey = "actor"

// AuthMiddleware resolves the bearer token into an Actor and stores it on
// the request context.
func AuthMiddleware(authUsecase *auth.DefaultAuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "missing bearer token"})
			return
		}

		actor, err := authUsecase.ActorFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "could not validate credentials"})
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// TeamOnly rejects non-team actors before the handler runs.
func TeamOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentActor(c).IsTeam {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "team membership required"})
			return
		}
		c.Next()
	}
}

func currentActor(c *gin.Context) domain.Actor {
	actor, _ := c.Get(actorContextKey)
	a, _ := actor.(domain.Actor)
	return a
}

// RequestLogger logs one line per request after the handler chain ran.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request handled",
			zap.String("method", c.Request.Method),
			zap.String("endpoint", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// MetricsMiddleware observes request durations per route template.
func MetricsMiddleware(m *metrics.TrackerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

func pagination(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return skip, limit
}
