// Package challenge defines the coding-challenge contract and the harness
// that grades implementations: each challenge carries literal JSON test
// inputs and hard-coded expected outputs, and the runner reports
// "Correct!", "Wrong Answer" or "Runtime Error" per case.
package challenge

import (
	"encoding/json"
	"errors"
)

// ErrNotFound indicates an unregistered challenge name.
var ErrNotFound = errors.New("challenge: not found")

// Case is one graded test: a JSON input literal and the JSON literal the
// output must match within the challenge tolerance.
type Case struct {
	Input    string
	Expected string
}

// Challenge is a self-contained graded exercise.
type Challenge interface {
	// Name is the registry key, e.g. "four-term-shift".
	Name() string

	// Title is a one-line human description.
	Title() string

	// Tolerance is the relative tolerance used when comparing outputs.
	Tolerance() float64

	// Cases returns the graded inputs with their expected outputs.
	Cases() []Case

	// Run evaluates the challenge on one input. The returned value is
	// marshalled to JSON and compared against the expected literal.
	Run(input json.RawMessage) (any, error)
}

// Verdict is the graded outcome of one case.
type Verdict int

const (
	Correct Verdict = iota
	WrongAnswer
	RuntimeError
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "Correct!"
	case WrongAnswer:
		return "Wrong Answer"
	case RuntimeError:
		return "Runtime Error"
	}
	return "Unknown"
}

// Outcome reports one graded case.
type Outcome struct {
	Case    int
	Verdict Verdict
	Got     string
	Want    string
	Err     error
}
