package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reflectdiary/diary-api/pkg/i18n"
)

func Test_LocalizerResolvesBothLanguages(t *testing.T) {
	l := i18n.NewLocalizer("en", "ru")

	en := l.Get("en", i18n.ERROR_NOTFOUND)
	ru := l.Get("ru", i18n.ERROR_NOTFOUND)

	assert.NotEqual(t, i18n.ERROR_NOTFOUND, en)
	assert.NotEqual(t, i18n.ERROR_NOTFOUND, ru)
	assert.NotEqual(t, en, ru)
}

func Test_LocalizerFallsBack(t *testing.T) {
	l := i18n.NewLocalizer("en")

	// unknown language falls back to the default catalog
	assert.Equal(t, l.Get("en", i18n.ERROR_INTERNAL), l.Get("fr", i18n.ERROR_INTERNAL))

	// unknown key falls back to the key itself
	assert.Equal(t, "error.nosuchkey", l.Get("en", "error.nosuchkey"))
}
