package keymap

import "github.com/dshills/keycodec/internal/input/key"

// DefaultName is the name of the built-in keymap.
const DefaultName = "default"

// Default returns the built-in keymap.
func Default() *Keymap {
	return NewKeymap(DefaultName).
		WithSource("default").
		// Movement
		Add("move_up", key.NewSpecialEvent(key.KeyUp, key.ModNone)).
		Add("move_down", key.NewSpecialEvent(key.KeyDown, key.ModNone)).
		Add("move_left", key.NewSpecialEvent(key.KeyLeft, key.ModNone)).
		Add("move_right", key.NewSpecialEvent(key.KeyRight, key.ModNone)).
		Add("word_left", key.NewSpecialEvent(key.KeyLeft, key.ModCtrl)).
		Add("word_right", key.NewSpecialEvent(key.KeyRight, key.ModCtrl)).
		Add("line_start", key.NewSpecialEvent(key.KeyHome, key.ModNone)).
		Add("line_end", key.NewSpecialEvent(key.KeyEnd, key.ModNone)).
		Add("page_up", key.NewSpecialEvent(key.KeyPageUp, key.ModNone)).
		Add("page_down", key.NewSpecialEvent(key.KeyPageDown, key.ModNone)).
		// Editing
		Add("delete_back", key.NewSpecialEvent(key.KeyBackspace, key.ModNone)).
		Add("delete_forward", key.NewSpecialEvent(key.KeyDelete, key.ModNone)).
		Add("newline", key.NewSpecialEvent(key.KeyEnter, key.ModNone)).
		Add("indent", key.NewSpecialEvent(key.KeyTab, key.ModNone)).
		Add("outdent", key.NewSpecialEvent(key.KeyBackTab, key.ModShift)).
		Add("undo", key.NewRuneEvent('z', key.ModCtrl)).
		Add("redo", key.NewRuneEvent('y', key.ModCtrl)).
		// Application
		Add("save", key.NewRuneEvent('s', key.ModCtrl)).
		Add("quit", key.NewRuneEvent('q', key.ModCtrl)).
		Add("help", key.NewRuneEvent('?', key.ModAlt)).
		Add("toggle_overwrite", key.NewSpecialEvent(key.KeyInsert, key.ModNone)).
		Add("cancel", key.NewSpecialEvent(key.KeyEscape, key.ModNone))
}
