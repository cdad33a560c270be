package keycodec

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/dshills/keycodec/internal/input/key"
)

var (
	keyEventType = reflect.TypeOf(key.Event{})
	eventType    = reflect.TypeOf(Event{})
)

// DecodeHook returns a mapstructure hook that decodes Binding-shaped maps
// into key.Event and Event values. Fields other than code and modifiers are
// rejected. Other conversions pass through untouched.
func DecodeHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if (to != keyEventType && to != eventType) || from == to {
			return data, nil
		}
		if from.Kind() != reflect.Map {
			return nil, fmt.Errorf("key binding must be a table with code and modifiers, got %s", from)
		}

		var b Binding
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &b,
			ErrorUnused: true,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(data); err != nil {
			return nil, fmt.Errorf("key binding: %w", err)
		}
		ev, err := DecodeEvent(b)
		if err != nil {
			return nil, err
		}
		if to == eventType {
			return Event(ev), nil
		}
		return ev, nil
	}
}
