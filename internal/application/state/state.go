package state

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a state change is not allowed
var ErrInvalidTransition = errors.New("invalid state transition")

// GameState represents the current state of the game
type GameState int

const (
	StateLoading GameState = iota
	StatePlaying
	StateMenu
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StateMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

var transitions = map[GameState][]GameState{
	StateLoading: {StatePlaying},
	StatePlaying: {StateMenu},
	StateMenu:    {StatePlaying, StateLoading},
}

// CanTransition reports whether the game may move from one state to another
func CanTransition(from, to GameState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Machine tracks the current game state. The zero value starts in Loading.
type Machine struct {
	current GameState
}

// Current returns the current state
func (m *Machine) Current() GameState {
	return m.current
}

// Transition moves to the next state if the transition table allows it
func (m *Machine) Transition(to GameState) error {
	if !CanTransition(m.current, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, to)
	}
	m.current = to
	return nil
}
