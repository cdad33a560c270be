// Package api provides the Lua modules available to keymap scripts.
//
// Two modules are installed as globals:
//
//   - keys: the binding codec (decode, encode, normalize, format, names)
//   - keymap: editing and querying the keymap the script runs against
//
// Each module implements Module and is installed through a Registry:
//
//	reg := api.NewRegistry()
//	_ = reg.Register(api.NewKeysModule())
//	_ = reg.Register(api.NewKeymapModule(km))
//	_ = reg.InjectAll(L)
//
// Codec failures surface as Lua errors carrying the codec message, so a
// script can recover with pcall:
//
//	local ok, err = pcall(keys.decode, "Up", "ALT+WINDOWS")
//	-- ok == false, err mentions "WINDOWS" is not a valid keyword
package api
