package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
)

//go:embed *.json
var fs embed.FS

const defaultLang = "en"

// Catalog stores flattened keys: "es" -> "month.december" -> "diciembre".
// It is filled once by Load and read-only afterwards.
type Catalog struct {
	translations map[string]map[string]string
}

// Load builds a catalog from the embedded JSON locale files.
func Load() (*Catalog, error) {
	entries, err := fs.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded locales: %w", err)
	}

	c := &Catalog{translations: make(map[string]map[string]string)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		lang := strings.TrimSuffix(entry.Name(), ".json")
		content, err := fs.ReadFile(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", entry.Name(), err)
		}

		var result map[string]interface{}
		if err := json.Unmarshal(content, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal locale %s: %w", entry.Name(), err)
		}

		flat := make(map[string]string)
		flatten("", result, flat)
		c.translations[lang] = flat
		log.Printf("Loaded locale: %s (%d keys)", lang, len(flat))
	}

	return c, nil
}

// flatten recursively flattens a nested map into dot-notation keys.
func flatten(prefix string, nested map[string]interface{}, result map[string]string) {
	for k, v := range nested {
		newKey := k
		if prefix != "" {
			newKey = prefix + "." + k
		}

		switch child := v.(type) {
		case map[string]interface{}:
			flatten(newKey, child, result)
		case string:
			result[newKey] = child
		default:
			result[newKey] = fmt.Sprintf("%v", child)
		}
	}
}

// Match canonicalizes a BCP 47 tag ("FR" -> "fr") and reports whether the
// catalog has a locale for it. Region-qualified tags are not matched.
func (c *Catalog) Match(lang string) (string, bool) {
	if lang == "" {
		return "", false
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	code := tag.String()
	if _, ok := c.translations[code]; !ok {
		return "", false
	}
	return code, true
}

// Languages lists the loaded locale codes, sorted.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.translations))
	for lang := range c.translations {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Translate retrieves a translation for a specific language code.
// If the key is missing in the target language, it falls back to the default
// language, and then to the key itself.
func (c *Catalog) Translate(lang, key string, args ...map[string]interface{}) string {
	if trans, ok := c.translations[lang]; ok {
		if val, ok := trans[key]; ok {
			return format(val, args...)
		}
	}

	if lang != defaultLang {
		if trans, ok := c.translations[defaultLang]; ok {
			if val, ok := trans[key]; ok {
				return format(val, args...)
			}
		}
	}

	return key
}

// FormatLong renders t (in UTC) with the locale's long date-time pattern,
// e.g. "mercredi 25 décembre 2024 00:00".
func (c *Catalog) FormatLong(t time.Time, lang string) string {
	t = t.UTC()

	hour12 := t.Hour() % 12
	if hour12 == 0 {
		hour12 = 12
	}
	meridiem := "meridiem.am"
	if t.Hour() >= 12 {
		meridiem = "meridiem.pm"
	}

	return c.Translate(lang, "format.long", map[string]interface{}{
		"weekday":  c.Translate(lang, "weekday."+strings.ToLower(t.Weekday().String())),
		"month":    c.Translate(lang, "month."+strings.ToLower(t.Month().String())),
		"day":      t.Day(),
		"year":     t.Year(),
		"hour":     t.Hour(),
		"hour2":    fmt.Sprintf("%02d", t.Hour()),
		"hour12":   hour12,
		"minute":   fmt.Sprintf("%02d", t.Minute()),
		"meridiem": c.Translate(lang, meridiem),
	})
}

// format replaces {var} placeholders with values from args if present.
func format(text string, args ...map[string]interface{}) string {
	if len(args) == 0 {
		return text
	}

	vars := args[0]
	for k, v := range vars {
		placeholder := "{" + k + "}"
		valStr := fmt.Sprintf("%v", v)
		text = strings.ReplaceAll(text, placeholder, valStr)
	}
	return text
}

type contextKey string

const LocaleContextKey contextKey = "locale"

// WithLocale returns a copy of ctx carrying lang.
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, LocaleContextKey, lang)
}

// GetLocale extracts the locale stored by the locale middleware. An empty
// string means the request did not select a supported locale.
func GetLocale(ctx context.Context) string {
	if val := ctx.Value(LocaleContextKey); val != nil {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
