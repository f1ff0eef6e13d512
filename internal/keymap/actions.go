package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Search bar actions
	ActionSubmitSearch  Action = "submit_search"
	ActionFocusSearch   Action = "focus_search"
	ActionNextCategory  Action = "next_category"
	ActionPrevCategory  Action = "prev_category"
	ActionCategoryAll   Action = "category_all"
	ActionCategoryMusic Action = "category_music"
	ActionCategoryApps  Action = "category_software"
	ActionCategoryBooks Action = "category_ebooks"
	ActionHistoryPrev   Action = "history_prev"
	ActionHistoryNext   Action = "history_next"
	ActionHistoryPicker Action = "history_picker"
	ActionClearHistory  Action = "clear_history"
	ActionChangeCountry Action = "change_country"

	// Presentation
	ActionToggleGrid Action = "toggle_grid"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Result actions
	ActionSelect    Action = "select"     // enter - show detail
	ActionOpenStore Action = "open_store" // o - open store page
	ActionClose     Action = "close"      // esc
)
