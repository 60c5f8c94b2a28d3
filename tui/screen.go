package tui

import (
	"sync"

	"simonsays/game"
)

// Screen is the simulated LCD glass. The game loop writes into it from
// its own goroutine and the model snapshots it on every render, so access
// goes through a mutex. UpdateChan carries wakeups for the UI; extra
// notifications are dropped while a render is already pending.
type Screen struct {
	mu    sync.Mutex
	cells [game.DisplayRows][game.DisplayCols]rune

	UpdateChan chan struct{}
}

func NewScreen() *Screen {
	s := &Screen{
		UpdateChan: make(chan struct{}, 8),
	}
	s.mu.Lock()
	s.reset()
	s.mu.Unlock()
	return s
}

// reset blanks the grid. Callers hold the mutex.
func (s *Screen) reset() {
	for r := range s.cells {
		for c := range s.cells[r] {
			s.cells[r][c] = ' '
		}
	}
}

// ShowAt writes text starting at the cell, clipping at the row end.
func (s *Screen) ShowAt(row, col int, text string) {
	if row < 0 || row >= game.DisplayRows || col < 0 || col >= game.DisplayCols {
		return
	}

	s.mu.Lock()
	pos := col
	for _, r := range text {
		if pos >= game.DisplayCols {
			break
		}
		s.cells[row][pos] = r
		pos++
	}
	s.mu.Unlock()

	s.Notify()
}

// Clear blanks the whole glass.
func (s *Screen) Clear() {
	s.mu.Lock()
	s.reset()
	s.mu.Unlock()

	s.Notify()
}

// Lines returns a snapshot of the glass contents.
func (s *Screen) Lines() [game.DisplayRows]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lines [game.DisplayRows]string
	for r := range s.cells {
		lines[r] = string(s.cells[r][:])
	}
	return lines
}

// Notify wakes the UI without ever blocking the game loop.
func (s *Screen) Notify() {
	select {
	case s.UpdateChan <- struct{}{}:
	default:
	}
}
