// Package i18n resolves user-facing strings through gettext catalogs
// embedded in the binary.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is the language msgids are written in.
const DefaultLanguage = "en"

//go:embed locales
var localesFS embed.FS

// Catalog translates msgids for one language.
type Catalog struct {
	lang string
	po   *gotext.Po
}

// Load returns the catalog for lang. The default language and the empty
// string return a catalog that echoes msgids.
func Load(lang string) (*Catalog, error) {
	lang = normalize(lang)
	po := gotext.NewPo()
	if lang == DefaultLanguage {
		return &Catalog{lang: lang, po: po}, nil
	}

	data, err := localesFS.ReadFile("locales/" + lang + "/default.po")
	if err != nil {
		return nil, fmt.Errorf("unsupported language %q: %w", lang, err)
	}
	po.Parse(data)
	return &Catalog{lang: lang, po: po}, nil
}

// MustLoad is like Load but falls back to the default language.
func MustLoad(lang string) *Catalog {
	c, err := Load(lang)
	if err != nil {
		c, _ = Load(DefaultLanguage)
	}
	return c
}

// Language returns the catalog language.
func (c *Catalog) Language() string {
	return c.lang
}

// T translates msgid. Extra arguments are applied with fmt verbs.
func (c *Catalog) T(msgid string, vars ...interface{}) string {
	if c == nil || c.po == nil {
		if len(vars) > 0 {
			return fmt.Sprintf(msgid, vars...)
		}
		return msgid
	}
	return c.po.Get(msgid, vars...)
}

// Func returns T as a plain function value.
func (c *Catalog) Func() func(string) string {
	return func(s string) string { return c.T(s) }
}

// Languages lists the available languages, default first.
func Languages() []string {
	langs := []string{DefaultLanguage}
	entries, err := fs.ReadDir(localesFS, "locales")
	if err != nil {
		return langs
	}
	var extra []string
	for _, e := range entries {
		if e.IsDir() {
			extra = append(extra, e.Name())
		}
	}
	sort.Strings(extra)
	return append(langs, extra...)
}

// normalize turns "fr_FR.UTF-8" into "fr".
func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || lang == "c" || lang == "posix" {
		return DefaultLanguage
	}
	if i := strings.IndexAny(lang, "_.-@"); i > 0 {
		lang = lang[:i]
	}
	return lang
}
