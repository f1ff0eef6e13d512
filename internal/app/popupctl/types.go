package popupctl

// Type identifies which popup is currently active.
type Type int

const (
	None Type = iota
	Help
	ClearHistory
	Country
	Error
	Detail
	History
)

// Priority lists popups from the one that takes input first.
var Priority = []Type{
	Error,
	Help,
	ClearHistory,
	Country,
	History,
	Detail,
}

// RenderOrder lists popups from the bottom of the stack up.
var RenderOrder = []Type{
	Detail,
	History,
	Country,
	ClearHistory,
	Help,
	Error,
}
