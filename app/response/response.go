package response

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reflectdiary/diary-api/pkg/errors"
	"github.com/reflectdiary/diary-api/pkg/i18n"
)

const LOCALIZER_CONTEXT_KEY = "__response.localizer"

type Meta struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Body struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data"`
}

// ProvideResponseLocalizer makes a localizer available to APIError for
// translating client-facing messages.
func ProvideResponseLocalizer(l *i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LOCALIZER_CONTEXT_KEY, l)
	}
}

func APISuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Body{
		Meta: Meta{
			Code:    http.StatusOK,
			Message: "ok",
		},
		Data: data,
	})
}

func APIError(c *gin.Context, err error) {
	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.New("response.APIError", i18n.ERROR_INTERNAL, err)
	}

	status := appErr.StatusCode()
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()))
	} else {
		slog.Warn("request rejected",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.String("error", err.Error()))
	}

	c.AbortWithStatusJSON(status, Body{
		Meta: Meta{
			Code:    status,
			Message: localizeMessage(c, appErr.MessageKey()),
		},
	})
}

func localizeMessage(c *gin.Context, key string) string {
	val, exist := c.Get(LOCALIZER_CONTEXT_KEY)
	if !exist {
		return key
	}
	localizer, ok := val.(*i18n.Localizer)
	if !ok {
		return key
	}
	return localizer.Get(requestLang(c), key)
}

func requestLang(c *gin.Context) string {
	accept := c.GetHeader("Accept-Language")
	for lang := range i18n.ALLOW_LANG {
		if strings.HasPrefix(accept, lang) {
			return lang
		}
	}
	return i18n.DEFAULT_LANG
}
