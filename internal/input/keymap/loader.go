package keymap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"

	"github.com/dshills/keycodec/internal/input/keycodec"
)

// Format is a keymap file format.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat returns the format with the given name (case-insensitive).
// "yml" is accepted as an alias for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath returns the format implied by the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Load reads a keymap file. The format is chosen from the extension.
func Load(path string) (*Keymap, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap file %s: %w", path, err)
	}

	km, err := decode(path, data, format)
	if err != nil {
		return nil, err
	}
	km.Name = path
	return km, nil
}

// Decode reads a keymap in the given format from r.
//
// Every binding is decoded; when any fail the returned error joins one
// *BindingError per failing action, in action order, and no keymap is
// returned.
func Decode(r io.Reader, format Format) (*Keymap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}
	return decode("<reader>", data, format)
}

func decode(source string, data []byte, format Format) (*Keymap, error) {
	records, err := unmarshalRecords(source, data, format)
	if err != nil {
		return nil, err
	}

	km := NewKeymap(source)
	var errs []error
	for _, action := range sortedKeys(records) {
		if action == "" {
			errs = append(errs, &BindingError{Action: action, Err: ErrEmptyAction})
			continue
		}
		ev, err := keycodec.DecodeEvent(records[action])
		if err != nil {
			errs = append(errs, &BindingError{Action: action, Err: err})
			continue
		}
		km.Bindings[action] = ev
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid keymap %s: %w", source, errors.Join(errs...))
	}
	return km, nil
}

func unmarshalRecords(source string, data []byte, format Format) (map[string]keycodec.Binding, error) {
	records := make(map[string]keycodec.Binding)
	if len(bytes.TrimSpace(data)) == 0 {
		return records, nil
	}

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&records); err != nil {
			return nil, jsonParseError(source, data, err)
		}
		end := dec.InputOffset()
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			pe := &ParseError{Path: source, Message: "unexpected data after the top-level object"}
			pe.Line, pe.Column = position(data, end)
			return nil, pe
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&records); err != nil {
			return nil, tomlParseError(source, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return records, nil
}

func jsonParseError(source string, data []byte, err error) error {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return pe
	}
	pe.Line, pe.Column = position(data, offset)
	return pe
}

func tomlParseError(source string, err error) error {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		pe.Line, pe.Column = decodeErr.Position()
	}
	return pe
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, column int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, column = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}

// Encode writes the keymap to w in the given format.
// Actions are written in sorted order. Bindings the codec cannot render are
// all reported in one joined error and nothing is written.
func (k *Keymap) Encode(w io.Writer, format Format) error {
	data, err := k.Marshal(format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Marshal renders the keymap in the given format.
func (k *Keymap) Marshal(format Format) ([]byte, error) {
	records, err := k.records()
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		data, err := json.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("marshaling keymap: %w", err)
		}
		return pretty.Pretty(data), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return nil, fmt.Errorf("marshaling keymap: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("marshaling keymap: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(records); err != nil {
			return nil, fmt.Errorf("marshaling keymap: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func (k *Keymap) records() (map[string]keycodec.Binding, error) {
	records := make(map[string]keycodec.Binding, len(k.Bindings))
	var errs []error
	for _, action := range k.Actions() {
		b, err := keycodec.EncodeEvent(k.Bindings[action])
		if err != nil {
			errs = append(errs, &BindingError{Action: action, Err: err})
			continue
		}
		records[action] = b
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("encoding keymap %s: %w", k.Name, errors.Join(errs...))
	}
	return records, nil
}

// Save writes the keymap to path. The format is chosen from the extension.
func (k *Keymap) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := k.Marshal(format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing keymap file: %w", err)
	}
	return nil
}

func sortedKeys(records map[string]keycodec.Binding) []string {
	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
