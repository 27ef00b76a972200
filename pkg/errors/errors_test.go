package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflectdiary/diary-api/pkg/errors"
	"github.com/reflectdiary/diary-api/pkg/i18n"
)

func Test_DefaultStatusCode(t *testing.T) {
	err := errors.New("trace", i18n.ERROR_INTERNAL, nil)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode())
}

func Test_Code(t *testing.T) {
	err := errors.New("trace", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, err.StatusCode())
	assert.Equal(t, i18n.ERROR_NOTFOUND, err.MessageKey())
}

func Test_Trace(t *testing.T) {
	inner := errors.New("inner", i18n.ERROR_INVALID_PASSWORD, nil).Code(http.StatusUnauthorized)
	outer := errors.Trace("outer", inner)

	appErr, ok := errors.As(outer)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode())
	assert.Equal(t, i18n.ERROR_INVALID_PASSWORD, appErr.MessageKey())
	assert.Contains(t, appErr.Error(), "outer.inner")
}

func Test_TracePassesThroughPlainErrors(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	assert.Equal(t, sentinel, errors.Trace("outer", sentinel))
	assert.NoError(t, errors.Trace("outer", nil))
}

func Test_AsUnwrapsWrapped(t *testing.T) {
	inner := errors.New("inner", i18n.ERROR_EXIST, nil).Code(http.StatusConflict)
	wrapped := fmt.Errorf("handler: %w", inner)

	appErr, ok := errors.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.StatusCode())
}
