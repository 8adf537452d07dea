package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	apperrors "github.com/lezerquera/apk-ZIMI/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestErrorHandlerStatusAndMessage(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID(), ErrorHandler())
	engine.GET("/conflict", func(c *gin.Context) {
		_ = c.Error(apperrors.Conflict("Email ya registrado", nil))
	})
	engine.GET("/wrapped", func(c *gin.Context) {
		_ = c.Error(errors.Join(errors.New("ctx"), apperrors.NotFound("patient", nil)))
	})
	engine.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("pq: connection refused"))
	})

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/conflict", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Email ya registrado", resp.Message)
	assert.Equal(t, w.Header().Get(HeaderXRequestID), resp.TraceID)

	w = serve(engine, httptest.NewRequest(http.MethodGet, "/wrapped", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(engine, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "pq:")
}

func TestValidationErrorsListFields(t *testing.T) {
	require.NoError(t, RegisterValidators())

	engine := gin.New()
	engine.Use(ErrorHandler())
	engine.POST("/flyers", func(c *gin.Context) {
		var req model.CreateFlyerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(apperrors.Validation(err))
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/flyers", strings.NewReader(`{"service_id":"reiki"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(engine, req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Fields, 2)
	assert.Equal(t, "service_id", resp.Fields[0].Field)
	assert.Equal(t, fieldMessages["service_type"], resp.Fields[0].Message)
	assert.Equal(t, "title", resp.Fields[1].Field)
}

func TestCORSEchoesOriginWithCredentials(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS(DefaultCORSConfig()))
	engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://app.example")
	w := serve(engine, req)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))

	cfg := DefaultCORSConfig()
	cfg.AllowOrigins = []string{"https://only.example"}
	engine = gin.New()
	engine.Use(CORS(cfg))
	engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	w = serve(engine, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiterIsPerClient(t *testing.T) {
	limiter := NewRateLimiter(RateLimiterConfig{Rate: 0.001, Burst: 1})
	engine := gin.New()
	engine.Use(limiter.RateLimit())
	engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRequest(http.MethodGet, "/x", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, http.StatusOK, serve(engine, first).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(engine, first).Code)

	other := httptest.NewRequest(http.MethodGet, "/x", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	assert.Equal(t, http.StatusOK, serve(engine, other).Code)
}

type stubAuthorizer struct{}

func (stubAuthorizer) Authorize(token string) (*model.TokenClaims, error) {
	if token != "good" {
		return nil, apperrors.Unauthorized(errors.New("bad token"))
	}
	return &model.TokenClaims{Email: "admin@drzerquera.com", Role: model.RoleAdmin}, nil
}

func TestRequireAdmin(t *testing.T) {
	newEngine := func(required bool) *gin.Engine {
		engine := gin.New()
		engine.Use(ErrorHandler())
		engine.GET("/admin", NewAuthMiddleware(stubAuthorizer{}, required).RequireAdmin(), func(c *gin.Context) {
			c.String(http.StatusOK, c.GetString(ContextAdminEmail))
		})
		return engine
	}

	req := func(header string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		return r
	}

	assert.Equal(t, http.StatusUnauthorized, serve(newEngine(true), req("")).Code)
	assert.Equal(t, http.StatusOK, serve(newEngine(false), req("")).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(newEngine(false), req("Bearer bad")).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(newEngine(true), req("Token good")).Code)

	w := serve(newEngine(true), req("Bearer good"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin@drzerquera.com", w.Body.String())
}

func TestTimeoutWritesGatewayTimeout(t *testing.T) {
	engine := gin.New()
	engine.Use(Timeout(TimeoutConfig{Duration: 10 * time.Millisecond}))
	engine.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/slow", nil))
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestSecurityHeadersRejectLargeBodies(t *testing.T) {
	cfg := DefaultSecurityConfig()
	cfg.MaxBodyBytes = 8
	engine := gin.New()
	engine.Use(SecurityHeaders(cfg))
	engine.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(engine, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"too":"large"}`)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
