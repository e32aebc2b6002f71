package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gcbaptista/court-finder/internal/analytics"
	internalErrors "github.com/gcbaptista/court-finder/internal/errors"
	"github.com/gcbaptista/court-finder/internal/metrics"
	"github.com/gcbaptista/court-finder/services"
)

// API holds dependencies for API handlers, primarily the court service.
type API struct {
	courts    services.CourtService
	analytics *analytics.Service
	logger    *zap.Logger
}

// Config carries the dependencies of SetupRoutes. Only Courts is required.
type Config struct {
	Courts       services.CourtService
	Analytics    *analytics.Service
	Metrics      *metrics.Collectors
	Gatherer     prometheus.Gatherer // Serves /metrics when set
	Logger       *zap.Logger
	MaxBodyBytes int64
}

// NewAPI creates a new API handler structure.
func NewAPI(courts services.CourtService, analyticsService *analytics.Service, logger *zap.Logger) *API {
	if analyticsService == nil {
		analyticsService = analytics.NewService()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		courts:    courts,
		analytics: analyticsService,
		logger:    logger,
	}
}

// SetupRoutes defines all the API routes for the court directory.
func SetupRoutes(router *gin.Engine, cfg Config) {
	apiHandler := NewAPI(cfg.Courts, cfg.Analytics, cfg.Logger)

	router.Use(CORSMiddleware())
	router.Use(RequestIDMiddleware())
	if cfg.Logger != nil {
		router.Use(LoggerMiddleware(cfg.Logger))
	}
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
	}
	if cfg.MaxBodyBytes > 0 {
		router.Use(RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	}

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Analytics route
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)

	// Prometheus exposition
	if cfg.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	// Facet values for the filter buttons
	router.GET("/surfaces", apiHandler.ListSurfacesHandler)

	courtRoutes := router.Group("/courts")
	{
		courtRoutes.GET("", apiHandler.ListCourtsHandler)                     // Filter and rank courts
		courtRoutes.GET("/:courtId", apiHandler.GetCourtHandler)              // Court detail with reviews
		courtRoutes.GET("/:courtId/reviews", apiHandler.ListReviewsHandler)   // Reviews of a court
		courtRoutes.POST("/:courtId/reviews", apiHandler.SubmitReviewHandler) // Add a review
	}
}

// handleServiceError maps court service errors to standardized responses
func (api *API) handleServiceError(c *gin.Context, operation string, err error) {
	var notFound *internalErrors.CourtNotFoundError
	var validation internalErrors.ValidationErrors

	switch {
	case errors.As(err, &notFound):
		SendCourtNotFoundError(c, notFound.CourtID)
	case errors.As(err, &validation):
		result := &ValidationResult{Valid: true}
		for _, v := range validation {
			result.AddError(v.Field, v.Message)
		}
		SendValidationError(c, result)
	default:
		api.logger.Error("request failed", zap.String("operation", operation), zap.Error(err))
		SendInternalError(c, operation, err)
	}
}

func statusOK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}
