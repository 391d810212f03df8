// internal/tui/keys.go
package tui

// action is a user command, decoupled from the keys that trigger it.
type action int

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionLogs
	actionShell
	actionUp
	actionDown
)

// keyActions maps key events to actions. The Cyrillic entries are the
// same physical keys on a Russian layout.
var keyActions = map[string]action{
	"q":      actionQuit,
	"й":      actionQuit,
	"ctrl+c": actionQuit,
	"p":      actionPause,
	"з":      actionPause,
	"l":      actionLogs,
	"д":      actionLogs,
	"b":      actionShell,
	"и":      actionShell,
	"up":     actionUp,
	"k":      actionUp,
	"down":   actionDown,
	"j":      actionDown,
}
