package keycodec

import (
	"fmt"
	"strings"

	"github.com/dshills/keycodec/internal/input/key"
)

// Modifier keywords.
const (
	Separator = "+"

	KeywordNone    = "NONE"
	KeywordShift   = "SHIFT"
	KeywordControl = "CONTROL"
	KeywordAlt     = "ALT"
	KeywordSuper   = "SUPER"
	KeywordHyper   = "HYPER"
	KeywordMeta    = "META"
)

// modifierOrder is the canonical emission order.
var modifierOrder = []struct {
	mod     key.Modifier
	keyword string
}{
	{key.ModAlt, KeywordAlt},
	{key.ModCtrl, KeywordControl},
	{key.ModShift, KeywordShift},
	{key.ModSuper, KeywordSuper},
	{key.ModHyper, KeywordHyper},
	{key.ModMeta, KeywordMeta},
}

var modifierKeywords = map[string]key.Modifier{
	KeywordShift:   key.ModShift,
	KeywordControl: key.ModCtrl,
	KeywordSuper:   key.ModSuper,
	KeywordAlt:     key.ModAlt,
	KeywordHyper:   key.ModHyper,
	KeywordMeta:    key.ModMeta,
	KeywordNone:    key.ModNone,
}

// ModifierKeywords returns the keywords of mods in canonical order.
// The empty set yields a single NONE keyword.
func ModifierKeywords(mods key.Modifier) []string {
	var keywords []string
	for _, m := range modifierOrder {
		if mods.Has(m.mod) {
			keywords = append(keywords, m.keyword)
		}
	}
	if len(keywords) == 0 {
		keywords = append(keywords, KeywordNone)
	}
	return keywords
}

// EncodeModifiers returns the text form of a modifier set, e.g. "ALT+CONTROL".
// The order is fixed regardless of how mods was built.
func EncodeModifiers(mods key.Modifier) string {
	return strings.Join(ModifierKeywords(mods), Separator)
}

// DecodeModifiers parses a "+"-separated list of modifier keywords.
// Keywords are case-sensitive; NONE may be combined with other keywords and
// contributes nothing. Repeated keywords are allowed.
func DecodeModifiers(text string) (key.Modifier, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return key.ModNone, &DecodingError{
			Field:   FieldModifiers,
			Input:   text,
			Message: "must provide at least one keyword",
		}
	}

	result := key.ModNone
	for _, token := range strings.Split(trimmed, Separator) {
		mod, ok := modifierKeywords[token]
		if !ok {
			return key.ModNone, &DecodingError{
				Field:   FieldModifiers,
				Input:   text,
				Token:   token,
				Message: fmt.Sprintf("%q is not a valid keyword", token),
			}
		}
		result |= mod
	}
	return result, nil
}
