package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/keycodec/internal/input/key"
	"github.com/dshills/keycodec/internal/input/keycodec"
	"github.com/dshills/keycodec/internal/input/suggest"
)

// modifierKeywords lists every modifier keyword, NONE last.
var modifierKeywords = append(keycodec.ModifierKeywords(key.ModAll), keycodec.KeywordNone)

// Hint returns a "did you mean" line for a decoding error, or "".
func Hint(err error) string {
	var de *keycodec.DecodingError
	if !errors.As(err, &de) {
		return ""
	}

	var query string
	var candidates []string
	switch de.Field {
	case keycodec.FieldCode:
		query, candidates = strings.TrimSpace(de.Input), keycodec.Names()
	case keycodec.FieldModifiers:
		query, candidates = de.Token, modifierKeywords
	}

	best := suggest.Best(query, candidates, 1)
	if len(best) == 0 || best[0] == query {
		return ""
	}
	return fmt.Sprintf("did you mean %q?", best[0])
}
