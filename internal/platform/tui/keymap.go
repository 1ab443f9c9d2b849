package tui

import tea "github.com/charmbracelet/bubbletea"

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// PlayAction is an in-run action derived from input.
type PlayAction int

const (
	PlayNone PlayAction = iota
	PlayTapCenter
	PlayTapLeft
	PlayTapRight
	PlayPause
	PlayQuitToMenu
	PlayQuit
)

// MenuAction covers the menu and the list screens (store, leaderboard,
// achievements).
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuUp
	MenuDown
	MenuSelect
	MenuBack
	MenuClaimDaily
	MenuQuit
)

// OverAction is a choice on the game-over screen.
type OverAction int

const (
	OverNone OverAction = iota
	OverRestart
	OverWatchAd
	OverToMenu
	OverQuit
)

// MapPlayKey translates a key pressed during a run.
func (KeyMapper) MapPlayKey(msg tea.KeyMsg) PlayAction {
	switch msg.String() {
	case "ctrl+c":
		return PlayQuit
	case " ", "up", "w":
		return PlayTapCenter
	case "left", "a":
		return PlayTapLeft
	case "right", "d":
		return PlayTapRight
	case "p":
		return PlayPause
	case "esc", "q":
		return PlayQuitToMenu
	}
	return PlayNone
}

// MapMenuKey translates a key on the menu and list screens.
func (KeyMapper) MapMenuKey(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuQuit
	case "up", "w", "k":
		return MenuUp
	case "down", "s", "j":
		return MenuDown
	case "enter", " ":
		return MenuSelect
	case "esc", "b":
		return MenuBack
	case "c":
		return MenuClaimDaily
	}
	return MenuNone
}

// MapOverKey translates a key on the game-over screen.
func (KeyMapper) MapOverKey(msg tea.KeyMsg) OverAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return OverQuit
	case "r", "enter", " ":
		return OverRestart
	case "a":
		return OverWatchAd
	case "m", "esc":
		return OverToMenu
	}
	return OverNone
}
