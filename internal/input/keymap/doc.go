// Package keymap manages named key bindings stored in configuration files.
//
// A keymap file is a table of action names, each holding one binding record:
//
//	move_up:
//	  code: Up
//	  modifiers: NONE
//	move_left:
//	  code: Left
//	  modifiers: ALT+CONTROL
//
// JSON, YAML and TOML renderings of the same table are supported; the format
// is chosen from the file extension. Records are decoded with package
// keycodec. Loading reports every invalid binding at once.
//
// # Usage
//
//	km, err := keymap.Load("keys.yaml")
//	if err != nil {
//	    // err lists each offending action
//	}
//	if action, ok := km.Lookup(ev); ok {
//	    // dispatch action
//	}
//
// JSON keymaps can also be edited in place with GetJSON, SetJSON and
// DeleteJSON, which leave unrelated content untouched.
package keymap
