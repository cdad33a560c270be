package keycodec

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/keycodec/internal/input/key"
)

func TestEncodeModifiers(t *testing.T) {
	tests := []struct {
		mods key.Modifier
		want string
	}{
		{key.ModNone, "NONE"},
		{key.ModAlt, "ALT"},
		{key.ModAlt | key.ModCtrl, "ALT+CONTROL"},
		{key.ModCtrl | key.ModAlt, "ALT+CONTROL"},
		{key.ModShift | key.ModCtrl, "CONTROL+SHIFT"},
		{key.ModHyper | key.ModSuper, "SUPER+HYPER"},
		{key.ModMeta, "META"},
		{key.ModMeta | key.ModAlt, "ALT+META"},
		{key.ModAll, "ALT+CONTROL+SHIFT+SUPER+HYPER+META"},
	}

	for _, tt := range tests {
		if got := EncodeModifiers(tt.mods); got != tt.want {
			t.Errorf("EncodeModifiers(%d) = %q, want %q", tt.mods, got, tt.want)
		}
	}
}

func TestModifierKeywordsEmpty(t *testing.T) {
	got := ModifierKeywords(key.ModNone)
	if len(got) != 1 || got[0] != KeywordNone {
		t.Errorf("ModifierKeywords(ModNone) = %v, want [NONE]", got)
	}
}

func TestDecodeModifiers(t *testing.T) {
	tests := []struct {
		text string
		want key.Modifier
	}{
		{"NONE", key.ModNone},
		{"ALT", key.ModAlt},
		{"ALT+CONTROL", key.ModAlt | key.ModCtrl},
		{"CONTROL+ALT", key.ModAlt | key.ModCtrl},
		{"META+NONE+SUPER", key.ModMeta | key.ModSuper},
		{"ALT+NONE", key.ModAlt},
		{"ALT+ALT", key.ModAlt},
		{"NONE+NONE", key.ModNone},
		{"  SHIFT+HYPER\n", key.ModShift | key.ModHyper},
	}

	for _, tt := range tests {
		got, err := DecodeModifiers(tt.text)
		if err != nil {
			t.Errorf("DecodeModifiers(%q) error = %v", tt.text, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DecodeModifiers(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestDecodeModifiersAbsorbsNone(t *testing.T) {
	withNone, err := DecodeModifiers("ALT+NONE+SUPER")
	if err != nil {
		t.Fatal(err)
	}
	without, err := DecodeModifiers("ALT+SUPER")
	if err != nil {
		t.Fatal(err)
	}
	if withNone != without || withNone != key.ModAlt|key.ModSuper {
		t.Errorf("ALT+NONE+SUPER = %d, ALT+SUPER = %d", withNone, without)
	}
}

func TestDecodeModifiersRejects(t *testing.T) {
	tests := []struct {
		text  string
		token string
	}{
		{"", ""},
		{"   ", ""},
		{"AL", "AL"},
		{"ALT+Z", "Z"},
		{"alt", "alt"},
		{"ALT+", ""},
		{"+ALT", ""},
		{"ALT + CONTROL", "ALT "},
		{"CTRL", "CTRL"},
	}

	for _, tt := range tests {
		_, err := DecodeModifiers(tt.text)
		if err == nil {
			t.Errorf("DecodeModifiers(%q) should fail", tt.text)
			continue
		}
		if !errors.Is(err, ErrDecoding) {
			t.Errorf("DecodeModifiers(%q) error = %v, want ErrDecoding", tt.text, err)
		}
		var decErr *DecodingError
		if !errors.As(err, &decErr) {
			t.Fatalf("DecodeModifiers(%q) error type = %T", tt.text, err)
		}
		if decErr.Field != FieldModifiers {
			t.Errorf("DecodeModifiers(%q) field = %q", tt.text, decErr.Field)
		}
		if decErr.Token != tt.token {
			t.Errorf("DecodeModifiers(%q) token = %q, want %q", tt.text, decErr.Token, tt.token)
		}
	}
}

func TestDecodeModifiersNamesToken(t *testing.T) {
	_, err := DecodeModifiers("ALT+Z")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `"Z" is not a valid keyword`) {
		t.Errorf("error = %q, want it to name Z", err.Error())
	}

	_, err = DecodeModifiers("")
	if err == nil || !strings.Contains(err.Error(), "at least one keyword") {
		t.Errorf("empty input error = %v", err)
	}
}

func TestModifierRoundTripAllSubsets(t *testing.T) {
	for m := key.ModNone; m <= key.ModAll; m++ {
		text := EncodeModifiers(m)
		got, err := DecodeModifiers(text)
		if err != nil {
			t.Fatalf("DecodeModifiers(%q) error = %v", text, err)
		}
		if got != m {
			t.Errorf("round trip of %d via %q = %d", m, text, got)
		}
	}
}
