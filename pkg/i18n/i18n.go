package i18n

import (
	"embed"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Localizer resolves message keys into the request language, falling back
// to DEFAULT_LANG and finally to the raw key.
type Localizer struct {
	localizers map[string]*goi18n.Localizer
}

func NewLocalizer(langs ...string) *Localizer {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range langs {
		if !ALLOW_LANG[lang] {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+lang+".toml"); err != nil {
			panic(err)
		}
	}

	l := &Localizer{
		localizers: make(map[string]*goi18n.Localizer),
	}
	for _, lang := range langs {
		if !ALLOW_LANG[lang] {
			continue
		}
		l.localizers[lang] = goi18n.NewLocalizer(bundle, lang)
	}
	return l
}

func (l *Localizer) Get(lang, key string) string {
	localizer, exist := l.localizers[lang]
	if !exist {
		localizer = l.localizers[DEFAULT_LANG]
	}
	if localizer == nil {
		return key
	}

	msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}
