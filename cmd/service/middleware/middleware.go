package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reflectdiary/diary-api/app/core"
	v1 "github.com/reflectdiary/diary-api/app/logic/v1"
	"github.com/reflectdiary/diary-api/app/response"
	"github.com/reflectdiary/diary-api/pkg/errors"
	"github.com/reflectdiary/diary-api/pkg/i18n"
	"github.com/reflectdiary/diary-api/pkg/security"
)

func I18n() gin.HandlerFunc {
	var allowList []string
	for k := range i18n.ALLOW_LANG {
		allowList = append(allowList, k)
	}
	l := i18n.NewLocalizer(allowList...)

	return response.ProvideResponseLocalizer(l)
}

const AUTH_HEADER_KEY = "Authorization"

// Authorization distinguishes a missing token (401) from a token that
// fails verification (403).
func Authorization(core *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenValue := strings.TrimPrefix(c.GetHeader(AUTH_HEADER_KEY), "Bearer ")
		if tokenValue == "" {
			response.APIError(c, errors.New("middleware.Authorization.GetHeader.nil", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized))
			return
		}

		claims, err := security.VerifyUserToken(core.Cfg().Security.JWTSecret, tokenValue)
		if err != nil {
			response.APIError(c, errors.New("middleware.Authorization.VerifyUserToken", i18n.ERROR_INVALID_TOKEN, err).Code(http.StatusForbidden))
			return
		}

		c.Set(v1.TOKEN_CONTEXT_KEY, *claims)
	}
}

func Cors(c *gin.Context) {
	method := c.Request.Method
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization, Accept-Language")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Content-Type")
	}
	if method == "OPTIONS" {
		c.AbortWithStatus(http.StatusNoContent)
	}
	c.Next()
}

func UseLimit(core *core.Core, operation string, genKeyFunc func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !core.UseLimiter(genKeyFunc(c), operation, 20).Allow() {
			response.APIError(c, errors.New("middleware.limiter", i18n.ERROR_TOO_MANY_REQUESTS, nil).Code(http.StatusTooManyRequests))
		}
	}
}

// Metrics records request count and latency against the matched route so
// the label set stays bounded.
func Metrics(core *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		core.Metrics().ObserveRequest(
			c.Request.Method,
			c.FullPath(),
			c.Writer.Status(),
			time.Since(start).Seconds(),
		)
	}
}
