package ui

import (
	"github.com/gdamore/tcell/v2"
)

// Direction is a keyboard paddle nudge
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

// KeyToDirection converts a key event to a movement direction
// For Pong, only up/down movement is allowed
func KeyToDirection(key tcell.Key, r rune) Direction {
	switch key {
	case tcell.KeyUp:
		return DirUp
	case tcell.KeyDown:
		return DirDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return DirUp
		case 's', 'S':
			return DirDown
		}
	}
	return DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsToggleKey returns true for the start/pause control
func IsToggleKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyEnter || (key == tcell.KeyRune && r == ' ')
}

// IsResetKey returns true for the full reset control
func IsResetKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'r' || r == 'R')
}

// KeyToDifficulty maps the number keys onto the difficulty names
func KeyToDifficulty(key tcell.Key, r rune) (string, bool) {
	if key != tcell.KeyRune {
		return "", false
	}
	switch r {
	case '1':
		return "easy", true
	case '2':
		return "medium", true
	case '3':
		return "hard", true
	}
	return "", false
}

// PointerY converts a mouse event to a table y. Events outside the table
// rows are clamped onto it.
func PointerY(ev *tcell.EventMouse, vp Viewport) float64 {
	_, row := ev.Position()
	row = min(max(row, 1), max(vp.TableRows(), 1))
	return vp.TableY(row)
}
