// Package i18n loads the embedded message catalogs and resolves the
// language of each request.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

type Translator struct {
	bundle      *goi18n.Bundle
	defaultLang string
	languages   []string
}

// New builds a Translator from every locales/active.<lang>.json file.
func New(defaultLang string) (*Translator, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		tag = language.BrazilianPortuguese
	}

	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	t := &Translator{bundle: bundle, defaultLang: tag.String()}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		t.languages = append(t.languages, strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json"))
	}

	return t, nil
}

func (t *Translator) Languages() []string {
	return t.languages
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Localizer picks the first supported language among prefs. Each pref may
// be a tag ("en") or a raw Accept-Language header.
func (t *Translator) Localizer(prefs ...string) *Localizer {
	langs := make([]string, 0, len(prefs)+1)
	for _, p := range prefs {
		if p != "" {
			langs = append(langs, p)
		}
	}
	langs = append(langs, t.defaultLang)

	return &Localizer{
		l:    goi18n.NewLocalizer(t.bundle, langs...),
		lang: t.defaultLang,
	}
}

type Localizer struct {
	l        *goi18n.Localizer
	lang     string
	resolved bool
}

// T translates id, falling back to the id itself when it is missing.
func (l *Localizer) T(id string) string {
	return l.TData(id, nil)
}

func (l *Localizer) TData(id string, data map[string]any) string {
	if l == nil || l.l == nil {
		return id
	}
	msg, tag, err := l.l.LocalizeWithTag(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{"component": "i18n", "key": id}).Debugf("missing translation: %v", err)
		return id
	}
	l.lang = tag.String()
	l.resolved = true
	return msg
}

// Lang is the language of the last resolved message, resolving one
// first if needed.
func (l *Localizer) Lang() string {
	if l == nil {
		return ""
	}
	if !l.resolved {
		l.T(KeyPageScheduleTitle)
	}
	return l.lang
}

func (l *Localizer) MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return m.String()
	}
	return l.T(monthKeys[m-1])
}

// Weekdays returns short labels from Sunday to Saturday.
func (l *Localizer) Weekdays() []string {
	out := make([]string, len(weekdayKeys))
	for i, k := range weekdayKeys {
		out[i] = l.T(k)
	}
	return out
}

type ctxKey struct{}

// WithLocalizer stores l in ctx for code that only receives a context.
func WithLocalizer(ctx context.Context, l *Localizer) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the request localizer or nil.
func FromContext(ctx context.Context) *Localizer {
	l, _ := ctx.Value(ctxKey{}).(*Localizer)
	return l
}

// FromContext returns the request localizer, or one for the default language.
func (t *Translator) FromContext(ctx context.Context) *Localizer {
	if l := FromContext(ctx); l != nil {
		return l
	}
	if t == nil {
		return nil
	}
	return t.Localizer()
}
