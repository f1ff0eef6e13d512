// Package popupctl stacks the modals shown over the search screen and
// routes input to the topmost one.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/keymap"
	"github.com/llehouerou/storesearch/internal/state"
	"github.com/llehouerou/storesearch/internal/ui/confirm"
	"github.com/llehouerou/storesearch/internal/ui/countryinput"
	"github.com/llehouerou/storesearch/internal/ui/detail"
	"github.com/llehouerou/storesearch/internal/ui/helpbindings"
	"github.com/llehouerou/storesearch/internal/ui/historypicker"
	"github.com/llehouerou/storesearch/internal/ui/popup"
)

// DefaultErrorTitle titles error popups shown without an explicit title.
const DefaultErrorTitle = "Error"

type alert struct {
	title, msg string
}

// Manager holds the shown popups by type. The error alert is kept apart:
// it has no model and any key closes it.
type Manager struct {
	popups        map[Type]popup.Popup
	alert         alert
	width, height int
}

// New returns a Manager with nothing shown.
func New() *Manager {
	return &Manager{popups: make(map[Type]popup.Popup)}
}

func sizeOf(t Type) popup.Size {
	if t == Detail {
		return popup.Large
	}
	return popup.Fit
}

// SetSize updates the screen size and resizes the popups already shown.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		pop.SetSize(sizeOf(t).Content(width, height))
	}
}

// IsVisible reports whether a popup of type t is up.
func (p *Manager) IsVisible(t Type) bool {
	if t == Error {
		return p.alert.msg != ""
	}
	return p.popups[t] != nil
}

// ActivePopup returns the popup that receives input, or None.
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// HasActive reports whether input goes to a popup.
func (p *Manager) HasActive() bool {
	return p.ActivePopup() != None
}

// Show displays pop as the popup of type t, replacing any shown before.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(sizeOf(t).Content(p.width, p.height))
	p.popups[t] = pop
	return pop.Init()
}

// Hide closes the popup of type t.
func (p *Manager) Hide(t Type) {
	if t == Error {
		p.alert = alert{}
		return
	}
	delete(p.popups, t)
}

// Dismiss hides the topmost popup. Outcomes are only emitted by the popup
// receiving input, so this closes the one that reported, even when an
// error alert went up over it in the meantime.
func (p *Manager) Dismiss() {
	for _, t := range Priority {
		if t != Error && p.IsVisible(t) {
			p.Hide(t)
			return
		}
	}
}

// Get returns the popup of type t, or nil.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// ShowHelp lists the bindings of contexts, innermost first.
func (p *Manager) ShowHelp(contexts []keymap.Context) tea.Cmd {
	return p.Show(Help, helpbindings.New(contexts...))
}

// ShowClearHistory asks before deleting the entries saved searches.
func (p *Manager) ShowClearHistory(entries int) tea.Cmd {
	return p.Show(ClearHistory, confirm.New(entries))
}

// ShowCountryInput prompts for a two-letter store front code.
func (p *Manager) ShowCountryInput(current string) tea.Cmd {
	return p.Show(Country, countryinput.New(current))
}

// ShowDetail displays the detail popup for a copy of item.
func (p *Manager) ShowDetail(item catalog.Result) tea.Cmd {
	return p.Show(Detail, detail.New(item))
}

// ShowHistory displays the history picker over entries, most recent first.
func (p *Manager) ShowHistory(entries []state.HistoryEntry) tea.Cmd {
	return p.Show(History, historypicker.New(entries))
}

// ShowError raises the alert under DefaultErrorTitle.
func (p *Manager) ShowError(msg string) {
	p.ShowAlert(DefaultErrorTitle, msg)
}

// ShowAlert raises the alert, replacing one already up. It sits above
// every other popup until a key is pressed.
func (p *Manager) ShowAlert(title, msg string) {
	p.alert = alert{title: title, msg: msg}
}

func (p *Manager) ErrorMsg() string   { return p.alert.msg }
func (p *Manager) ErrorTitle() string { return p.alert.title }

// Detail returns the detail popup, or nil when it is not shown.
func (p *Manager) Detail() *detail.Model {
	d, _ := p.popups[Detail].(*detail.Model)
	return d
}

// HandleKey routes a key to the active popup and reports whether one
// took it. Any key dismisses an error.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if p.IsVisible(Error) {
		p.Hide(Error)
		return true, nil
	}
	return p.forward(msg)
}

// HandleMsg forwards a non-key message to the active popup.
func (p *Manager) HandleMsg(msg tea.Msg) tea.Cmd {
	_, cmd := p.forward(msg)
	return cmd
}

func (p *Manager) forward(msg tea.Msg) (bool, tea.Cmd) {
	active := p.ActivePopup()
	pop := p.popups[active]
	if pop == nil {
		return false, nil
	}
	updated, cmd := pop.Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// RenderOverlay draws the visible popups over base, bottom first.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}
		var box string
		if t == Error {
			box = popup.Alert(p.alert.title, p.alert.msg, p.width, p.height)
		} else {
			box = popup.Box(p.popups[t].View(), p.width, p.height, sizeOf(t))
		}
		base = popup.Overlay(base, box, p.width)
	}
	return base
}
