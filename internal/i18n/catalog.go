package i18n

import "golang.org/x/text/language"

// Catalog holds messages per language and picks the closest match for a
// requested locale.
type Catalog struct {
	tags     []language.Tag
	matcher  language.Matcher
	messages map[language.Tag]map[Key]string
}

// NewCatalog builds a catalog. The first tag is the fallback language used
// for unknown locales and missing keys.
func NewCatalog(tags []language.Tag, messages map[language.Tag]map[Key]string) *Catalog {
	return &Catalog{
		tags:     tags,
		matcher:  language.NewMatcher(tags),
		messages: messages,
	}
}

// Match returns the supported tag closest to locale. Unparseable locales
// resolve to the fallback language.
func (c *Catalog) Match(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return c.tags[0]
	}
	_, idx, _ := c.matcher.Match(tag)
	return c.tags[idx]
}

// Translator returns a TranslateFunc for locale. A key missing from the
// matched language falls back to the fallback language, then to the key.
func (c *Catalog) Translator(locale string) TranslateFunc {
	tag := c.Match(locale)
	primary := c.messages[tag]
	fallback := c.messages[c.tags[0]]
	return func(k Key) string {
		if msg, ok := primary[k]; ok {
			return msg
		}
		if msg, ok := fallback[k]; ok {
			return msg
		}
		return string(k)
	}
}
