package i18n

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"id":             LocaleID,
		"id-ID":          LocaleID,
		"in":             LocaleID,
		"ID_id":          LocaleID,
		"en":             LocaleEN,
		"en-GB;q=0.9":    LocaleEN,
		" EN-us ":        LocaleEN,
		"zh-CN":          "",
		"fr-FR,en;q=0.5": "",
	}
	for input, want := range cases {
		assert.Equal(t, want, Normalize(input), "input %q", input)
	}
}

func TestCatalogLocalesHaveSameKeys(t *testing.T) {
	id := catalog[LocaleID]
	en := catalog[LocaleEN]
	require.NotEmpty(t, id)
	for key := range id {
		_, ok := en[key]
		assert.True(t, ok, "en-US missing %s", key)
	}
	for key := range en {
		_, ok := id[key]
		assert.True(t, ok, "id-ID missing %s", key)
	}
}

func TestTFallback(t *testing.T) {
	assert.Equal(t, "Produk berhasil ditambahkan ke keranjang.", T(LocaleID, "success.cart_added"))
	assert.Equal(t, "Product added to cart.", T(LocaleEN, "success.cart_added"))
	// 未知语言回退默认语言，未知键回退键本身
	assert.Equal(t, "Profil berhasil diperbarui!", T("xx", "success.profile_updated"))
	assert.Equal(t, "error.never_defined", T(LocaleEN, "error.never_defined"))
}

func TestSprintf(t *testing.T) {
	assert.Equal(t, "Minimal 2 karakter.", Sprintf(LocaleID, "validation.min_length", 2))
	assert.Equal(t, "Must be at most 100 characters.", Sprintf(LocaleEN, "validation.max_length", 100))
	assert.Equal(t, "Wajib diisi.", Sprintf(LocaleID, "validation.required"))
}

func TestSetDefaultLocale(t *testing.T) {
	t.Cleanup(func() { SetDefaultLocale(LocaleID) })

	SetDefaultLocale("unsupported")
	assert.Equal(t, LocaleID, DefaultLocale())

	SetDefaultLocale("en")
	assert.Equal(t, LocaleEN, DefaultLocale())
}

func TestResolveLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resolve := func(target, acceptLanguage string) string {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, target, nil)
		if acceptLanguage != "" {
			c.Request.Header.Set("Accept-Language", acceptLanguage)
		}
		return ResolveLocale(c)
	}

	assert.Equal(t, LocaleID, resolve("/", ""))
	assert.Equal(t, LocaleEN, resolve("/", "fr-FR, en-US;q=0.8"))
	assert.Equal(t, LocaleID, resolve("/?lang=id", "en-US"))
	assert.Equal(t, LocaleID, ResolveLocale(nil))
}

func TestCatalogFormatArgs(t *testing.T) {
	// 带参数的消息需保持与调用方一致的占位符数量
	expected := map[string]int{
		"validation.min_length":       1,
		"validation.max_length":       1,
		"error.too_many_requests":     1,
		"error.login_too_many":        1,
		"email.order_placed.subject":  1,
		"email.order_placed.body":     5,
		"email.contact_received.body": 2,
	}
	for locale, table := range catalog {
		for key, count := range expected {
			assert.Equal(t, count, strings.Count(table[key], "%"), "%s %s", locale, key)
		}
	}
}
