package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/middlewares"
	"github.com/dmitrymomot/babel/pkg/i18n"
)

func newStore(t *testing.T, greeting string) *i18n.I18n {
	t.Helper()

	svc, err := i18n.New(
		i18n.WithDefaultLocale("en"),
		i18n.WithTranslations("en", i18n.Translations{
			"common": i18n.Translations{
				"hello": greeting,
				"items": i18n.Translations{"one": "{{count}} item", "other": "{{count}} items"},
			},
		}),
		i18n.WithTranslations("de", i18n.Translations{
			"common": i18n.Translations{
				"hello": "Hallo",
				"items": i18n.Translations{"one": "{{count}} Artikel", "other": "{{count}} Artikel"},
			},
		}),
		i18n.WithTranslations("pt-BR", i18n.Translations{
			"common": i18n.Translations{"hello": "Olá"},
		}),
	)
	require.NoError(t, err)
	return svc
}

func TestI18nNegotiation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		header map[string]string
		cookie string
		want   string
	}{
		{name: "default", target: "/", want: "en"},
		{name: "accept-language", target: "/", header: map[string]string{"Accept-Language": "fr;q=0.9, de;q=0.8"}, want: "de"},
		{name: "accept-language region", target: "/", header: map[string]string{"Accept-Language": "de-AT"}, want: "de"},
		{name: "accept-language unknown", target: "/", header: map[string]string{"Accept-Language": "ja"}, want: "en"},
		{name: "cookie beats header", target: "/", cookie: "de", header: map[string]string{"Accept-Language": "pt-BR"}, want: "de"},
		{name: "x-locale beats cookie", target: "/", cookie: "de", header: map[string]string{"X-Locale": "pt_br"}, want: "pt-BR"},
		{name: "query beats all", target: "/?locale=de", cookie: "pt-BR", header: map[string]string{"X-Locale": "en"}, want: "de"},
		{name: "unknown query", target: "/?locale=xx", want: "en"},
	}

	mw := middlewares.I18n(middlewares.StaticCatalog(newStore(t, "Hello")))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: middlewares.LocaleCookie, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			var got string
			err := mw(func(c internal.Context) error {
				got = middlewares.GetLocale(c)
				return nil
			})(newTestContext(rec, req))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, rec.Header().Get("Content-Language"))
		})
	}
}

func TestI18nTranslatorInContext(t *testing.T) {
	t.Parallel()

	mw := middlewares.I18n(middlewares.StaticCatalog(newStore(t, "Hello")), middlewares.WithI18nScope("common"))

	req := httptest.NewRequest(http.MethodGet, "/?locale=de", nil)
	c := newTestContext(httptest.NewRecorder(), req)

	err := mw(func(c internal.Context) error {
		tr := middlewares.GetTranslator(c)
		require.NotNil(t, tr)
		assert.Equal(t, "Hallo", tr.T("hello"))
		assert.Equal(t, "3 Artikel", tr.Tn("items", 3))
		assert.Equal(t, "1.234,5", tr.FormatNumber(1234.5))
		assert.Equal(t, "de", c.LocaleInfo().Code)
		assert.Equal(t, "März", c.LocaleInfo().Months.Standalone[2])
		return nil
	})(c)
	require.NoError(t, err)

	assert.Nil(t, middlewares.GetTranslator(newTestContext(httptest.NewRecorder(), req)))
	assert.Empty(t, middlewares.GetLocale(newTestContext(httptest.NewRecorder(), req)))
}

func TestI18nOptions(t *testing.T) {
	t.Parallel()

	custom := i18n.NewLocaleFormat(i18n.WithDecimalSeparator(","), i18n.WithThousandSeparator(" "))
	mw := middlewares.I18n(middlewares.StaticCatalog(newStore(t, "Hello")),
		middlewares.WithI18nExtractor(internal.NewExtractor(internal.FromHeader("X-Lang"))),
		middlewares.WithI18nFormats(map[string]*i18n.LocaleFormat{"de": custom}),
		middlewares.WithoutContentLanguage(),
	)

	req := httptest.NewRequest(http.MethodGet, "/?locale=pt-BR", nil)
	req.Header.Set("X-Lang", "de")
	rec := httptest.NewRecorder()

	err := mw(func(c internal.Context) error {
		assert.Equal(t, "de", middlewares.GetLocale(c))
		assert.Same(t, custom, middlewares.GetTranslator(c).Format())
		return nil
	})(newTestContext(rec, req))
	require.NoError(t, err)
	assert.Empty(t, rec.Header().Get("Content-Language"))
}

type swappableCatalog struct{ p atomic.Pointer[i18n.I18n] }

func (s *swappableCatalog) Current() *i18n.I18n { return s.p.Load() }

func TestI18nFollowsCatalogSwap(t *testing.T) {
	t.Parallel()

	src := &swappableCatalog{}
	src.p.Store(newStore(t, "Hello"))

	app := internal.New(
		internal.WithMiddleware(middlewares.I18n(src)),
		internal.WithHandlers(funcHandler(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				return c.String(http.StatusOK, c.T("common.hello")+" "+c.FormatDate(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)))
			})
		})),
	)

	get := func() string {
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		return rec.Body.String()
	}

	assert.Equal(t, "Hello 03/10/2024", get())
	src.p.Store(newStore(t, "Howdy"))
	assert.Equal(t, "Howdy 03/10/2024", get())
}

func TestLocaleExtractor(t *testing.T) {
	t.Parallel()

	ext := middlewares.LocaleExtractor()

	_, ok := ext(context.Background())
	assert.False(t, ok)

	attr, ok := ext(context.WithValue(context.Background(), internal.LocaleKey{}, "de"))
	require.True(t, ok)
	assert.Equal(t, "locale", attr.Key)
	assert.Equal(t, "de", attr.Value.String())
}
