// Package plugin runs Lua scripts that inspect and edit keymaps.
//
// A script sees two globals, keys and keymap (see package api), and runs in
// a restricted state without io, os or module loading:
//
//	-- swap.lua
//	local up = keymap.get("move_up")
//	keymap.set("move_up", "k", "NONE")
//	for _, c in ipairs(keymap.conflicts()) do
//	    print(keys.format(c.code, c.modifiers), table.concat(c.actions, ", "))
//	end
//
// Usage:
//
//	host := plugin.NewHost(km, plugin.WithOutput(os.Stdout))
//	if err := host.Run(ctx, "swap.lua"); err != nil {
//	    // *ScriptError
//	}
//	_ = host.Keymap().Save("keys.yaml")
package plugin
