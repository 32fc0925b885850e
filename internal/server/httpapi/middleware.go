package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/common"
	"github.com/taskvault/taskvault/internal/logging"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
	accountEmailKey = "account_email"
)

// requestID assigns every request a uuid, honoring one supplied by the
// caller, and echoes it back in the response headers.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// requestLogger emits one structured line per request.
func requestLogger(logger logging.Logger) gin.HandlerFunc {
	log := logger.With("module", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info(c.Request.Context(), "Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			requestIDKey, c.GetString(requestIDKey),
		)
	}
}

// recovery converts handler panics into a 500 without killing the process.
func recovery(logger logging.Logger) gin.HandlerFunc {
	log := logger.With("module", "http")
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error(c.Request.Context(), "Handler panic",
					"panic", r,
					"path", c.Request.URL.Path,
					requestIDKey, c.GetString(requestIDKey),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: msgGenericFailure})
			}
		}()
		c.Next()
	}
}

// cors mirrors the deployment's browser contract: one configured origin,
// simple methods, Content-Type and Authorization headers.
func cors(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requireToken guards privileged routes. It extracts the bearer token,
// verifies it through the auth service, and stores the subject email in
// the request context.
func (s *Server) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeader)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: msgInvalidToken})
			return
		}

		token := strings.TrimPrefix(header, common.BearerPrefix)
		subject, err := s.authService.VerifyToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: msgInvalidToken})
			return
		}

		c.Set(accountEmailKey, subject)
		c.Next()
	}
}
