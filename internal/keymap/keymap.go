// Package keymap defines the key bindings of each part of the screen and
// resolves key presses against the parts currently in play.
package keymap

import "strings"

// Context names the part of the screen a binding belongs to.
type Context string

const (
	Global  Context = "global"
	Search  Context = "search"
	Results Context = "results"
	Grid    Context = "grid"
	Detail  Context = "detail"
	History Context = "history"
)

// Label is the heading the help popup shows for c.
func (c Context) Label() string {
	switch c { //nolint:exhaustive // the rest are capitalized
	case "":
		return ""
	case Search:
		return "Search Bar"
	case Detail:
		return "Details"
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     Context
}

// Bindings contains all key bindings for help generation and resolution.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"ctrl+c"}, "Quit application", Global},
	{ActionHelp, []string{"?"}, "Show help", Global},
	{ActionFocusSearch, []string{"/"}, "Focus search bar", Global},
	{ActionNextCategory, []string{"tab"}, "Next category", Global},
	{ActionPrevCategory, []string{"shift+tab"}, "Previous category", Global},
	{ActionToggleGrid, []string{"ctrl+g"}, "Toggle list/grid", Global},
	{ActionHistoryPicker, []string{"ctrl+r"}, "Search history", Global},
	{ActionChangeCountry, []string{"ctrl+o"}, "Change store country", Global},

	// Search bar
	{ActionSubmitSearch, []string{"enter"}, "Search", Search},
	{ActionHistoryPrev, []string{"ctrl+p"}, "Previous query", Search},
	{ActionHistoryNext, []string{"ctrl+n"}, "Next query", Search},
	{ActionMoveDown, []string{"down"}, "Go to results", Search},
	{ActionClose, []string{"esc"}, "Leave search bar", Search},

	// Results (list)
	{ActionQuit, []string{"q"}, "Quit application", Results},
	{ActionMoveDown, []string{"j", "down"}, "Move down", Results},
	{ActionMoveUp, []string{"k", "up"}, "Move up", Results},
	{ActionJumpStart, []string{"g", "home"}, "First result", Results},
	{ActionJumpEnd, []string{"G", "end"}, "Last result", Results},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "Page down", Results},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "Page up", Results},
	{ActionSelect, []string{"enter"}, "Show details", Results},
	{ActionOpenStore, []string{"o"}, "Open in store", Results},
	{ActionCategoryAll, []string{"1"}, "All", Results},
	{ActionCategoryMusic, []string{"2"}, "Music", Results},
	{ActionCategoryApps, []string{"3"}, "Software", Results},
	{ActionCategoryBooks, []string{"4"}, "E-books", Results},
	{ActionClearHistory, []string{"D"}, "Clear search history", Results},

	// Grid
	{ActionMoveLeft, []string{"h", "left"}, "Move left", Grid},
	{ActionMoveRight, []string{"l", "right"}, "Move right", Grid},
	{ActionMoveDown, []string{"j", "down"}, "Move down", Grid},
	{ActionMoveUp, []string{"k", "up"}, "Move up", Grid},
	{ActionPageDown, []string{"pgdown", "L"}, "Next page", Grid},
	{ActionPageUp, []string{"pgup", "H"}, "Previous page", Grid},

	// Detail popup
	{ActionOpenStore, []string{"o"}, "Open in store", Detail},
	{ActionClose, []string{"esc", "enter"}, "Close", Detail},

	// History picker
	{ActionSelect, []string{"enter"}, "Run query", History},
	{ActionClose, []string{"esc"}, "Close", History},
}

// In returns the bindings of ctx in table order.
func In(ctx Context) []Binding {
	var out []Binding
	for _, b := range Bindings {
		if b.Context == ctx {
			out = append(out, b)
		}
	}
	return out
}

// Map resolves key strings, as reported by tea.KeyMsg.String, to actions.
type Map map[string]Action

// Stack builds the Map for contexts listed innermost first: a key bound in
// an earlier context shadows the same key in a later one, so "q" quits from
// the results but types into the search bar.
func Stack(contexts ...Context) Map {
	m := make(Map)
	for i := len(contexts) - 1; i >= 0; i-- {
		for _, b := range In(contexts[i]) {
			for _, k := range b.Keys {
				m[k] = b.Action
			}
		}
	}
	return m
}

// Action returns the action bound to key, or "" when none is.
func (m Map) Action(key string) Action {
	return m[key]
}
