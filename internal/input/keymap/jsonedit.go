package keymap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/keycodec/internal/input/key"
	"github.com/dshills/keycodec/internal/input/keycodec"
)

// ErrInvalidJSON indicates a JSON keymap document that is not well formed.
var ErrInvalidJSON = errors.New("invalid JSON keymap document")

// pathSpecial holds the characters with meaning in gjson/sjson paths.
const pathSpecial = `\.*?|#@!=<>%:[]{},`

// actionPath escapes an action name so it addresses a single top-level key.
func actionPath(action string) string {
	var sb strings.Builder
	for _, r := range action {
		if strings.ContainsRune(pathSpecial, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func checkDocument(data []byte) ([]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []byte("{}"), nil
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object", ErrInvalidJSON)
	}
	return data, nil
}

// GetJSON decodes the binding of a single action from a JSON keymap
// document without decoding the rest of it.
func GetJSON(data []byte, action string) (key.Event, error) {
	if action == "" {
		return key.Event{}, ErrEmptyAction
	}
	data, err := checkDocument(data)
	if err != nil {
		return key.Event{}, err
	}

	res := gjson.GetBytes(data, actionPath(action))
	if !res.Exists() {
		return key.Event{}, fmt.Errorf("%w: %q", ErrActionNotFound, action)
	}
	if !res.IsObject() {
		return key.Event{}, &BindingError{Action: action, Err: fmt.Errorf("expected an object, got %s", res.Type)}
	}

	var b keycodec.Binding
	dec := json.NewDecoder(strings.NewReader(res.Raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&b); err != nil {
		return key.Event{}, &BindingError{Action: action, Err: err}
	}

	ev, err := keycodec.DecodeEvent(b)
	if err != nil {
		return key.Event{}, &BindingError{Action: action, Err: err}
	}
	return ev, nil
}

// SetJSON stores the binding of one action in a JSON keymap document and
// returns the updated document. Other content, including formatting and
// key order, is preserved. An empty document is treated as {}.
func SetJSON(data []byte, action string, ev key.Event) ([]byte, error) {
	if action == "" {
		return nil, ErrEmptyAction
	}
	data, err := checkDocument(data)
	if err != nil {
		return nil, err
	}

	b, err := keycodec.EncodeEvent(ev)
	if err != nil {
		return nil, &BindingError{Action: action, Err: err}
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, &BindingError{Action: action, Err: err}
	}

	out, err := sjson.SetRawBytes(data, actionPath(action), raw)
	if err != nil {
		return nil, fmt.Errorf("setting %q: %w", action, err)
	}
	return out, nil
}

// DeleteJSON removes one action from a JSON keymap document.
func DeleteJSON(data []byte, action string) ([]byte, error) {
	if action == "" {
		return nil, ErrEmptyAction
	}
	data, err := checkDocument(data)
	if err != nil {
		return nil, err
	}

	path := actionPath(action)
	if !gjson.GetBytes(data, path).Exists() {
		return nil, fmt.Errorf("%w: %q", ErrActionNotFound, action)
	}

	out, err := sjson.DeleteBytes(data, path)
	if err != nil {
		return nil, fmt.Errorf("deleting %q: %w", action, err)
	}
	return out, nil
}
