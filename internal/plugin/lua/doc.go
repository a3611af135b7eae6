// Package lua adapts Lua scripts to the tool capability contract.
//
// A script defines a global `tool` table naming the tool and providing any
// subset of the lifecycle and input callbacks. Each activation gets a fresh
// Lua state, closed on deactivation, so script state follows the same
// create-on-activate / drop-on-supersede lifecycle as native tools. All
// callback invocations run under pcall protection; a failing script callback
// is logged and never takes down the dispatch loop.
package lua
