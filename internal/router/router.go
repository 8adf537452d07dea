package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"

	"github.com/lezerquera/apk-ZIMI/internal/handler"
	appointmenthandler "github.com/lezerquera/apk-ZIMI/internal/handler/appointment"
	authhandler "github.com/lezerquera/apk-ZIMI/internal/handler/auth"
	clinichandler "github.com/lezerquera/apk-ZIMI/internal/handler/clinic"
	contacthandler "github.com/lezerquera/apk-ZIMI/internal/handler/contact"
	flyerhandler "github.com/lezerquera/apk-ZIMI/internal/handler/flyer"
	messagehandler "github.com/lezerquera/apk-ZIMI/internal/handler/message"
	patienthandler "github.com/lezerquera/apk-ZIMI/internal/handler/patient"
	"github.com/lezerquera/apk-ZIMI/internal/middleware"
	apperrors "github.com/lezerquera/apk-ZIMI/pkg/errors"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// Handlers groups every route owner mounted under /api.
type Handlers struct {
	Health      *handler.HealthHandler
	Appointment *appointmenthandler.Handler
	Patient     *patienthandler.Handler
	Auth        *authhandler.Handler
	Message     *messagehandler.Handler
	Flyer       *flyerhandler.Handler
	Clinic      *clinichandler.Handler
	Contact     *contacthandler.Handler
}

type Router struct {
	engine   *gin.Engine
	handlers Handlers
	auth     *middleware.AuthMiddleware
	metrics  *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

type RouterConfig struct {
	RateLimitEnabled bool
	RateLimit        rate.Limit
	RateBurst        int
	RequestTimeout   time.Duration
	CORSConfig       middleware.CORSConfig
	SecurityConfig   middleware.SecurityConfig
	MetricsPrefix    string
	Registerer       prometheus.Registerer
}

func NewRouter(handlers Handlers, auth *middleware.AuthMiddleware, config RouterConfig) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	if config.Registerer == nil {
		config.Registerer = prometheus.NewRegistry()
	}

	r := &Router{
		engine:   engine,
		handlers: handlers,
		auth:     auth,
		metrics:  initRouterMetrics(config.MetricsPrefix, config.Registerer),
	}

	// RequestID runs first so every later middleware can log it.
	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		r.metricsMiddleware(),
		middleware.CORS(config.CORSConfig),
		middleware.SecurityHeaders(config.SecurityConfig),
	)

	if config.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  config.RateLimit,
			Burst: config.RateBurst,
		})
		engine.Use(limiter.RateLimit())
	}

	engine.Use(
		middleware.ErrorHandler(),
		middleware.Timeout(middleware.TimeoutConfig{Duration: config.RequestTimeout}),
	)

	engine.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.NotFound("route", nil))
	})

	return r
}

// Setup mounts every route. Call once.
func (r *Router) Setup() {
	api := r.engine.Group("/api")

	r.handlers.Health.RegisterRoutes(api)
	r.setupPublicRoutes(api)

	guard := r.auth.RequireAdmin()
	admin := api.Group("/admin", guard)
	r.setupAdminRoutes(admin)

	r.handlers.Flyer.RegisterAdminRoutes(api, guard)
}

func (r *Router) setupPublicRoutes(rg *gin.RouterGroup) {
	for _, h := range []Handler{
		r.handlers.Clinic,
		r.handlers.Appointment,
		r.handlers.Patient,
		r.handlers.Auth,
		r.handlers.Message,
		r.handlers.Flyer,
		r.handlers.Contact,
	} {
		h.RegisterRoutes(rg)
	}
}

func (r *Router) setupAdminRoutes(rg *gin.RouterGroup) {
	r.handlers.Appointment.RegisterAdminRoutes(rg)
	r.handlers.Message.RegisterAdminRoutes(rg)
	r.handlers.Clinic.RegisterAdminRoutes(rg)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

func initRouterMetrics(prefix string, reg prometheus.Registerer) *routerMetrics {
	factory := promauto.With(reg)
	return &routerMetrics{
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// unmatched paths share one label to keep cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		switch {
		case c.Writer.Status() >= 500:
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "server").Inc()
		case c.Writer.Status() >= 400:
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "client").Inc()
		}
	}
}
