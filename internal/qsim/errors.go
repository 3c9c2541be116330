package qsim

import "errors"

// Domain errors for simulator operations.
var (
	// ErrUnknownGate indicates a gate name the simulator does not implement.
	ErrUnknownGate = errors.New("qsim: unknown gate")

	// ErrQubitRange indicates a qubit index outside the register.
	ErrQubitRange = errors.New("qsim: qubit index out of range")

	// ErrDimensionMismatch indicates incompatible matrix or vector shapes.
	ErrDimensionMismatch = errors.New("qsim: dimension mismatch")

	// ErrBadProbability indicates a channel strength outside [0, 1].
	ErrBadProbability = errors.New("qsim: probability out of [0,1]")

	// ErrBadPauliWord indicates an observable word with a non-Pauli letter
	// or the wrong length for the register.
	ErrBadPauliWord = errors.New("qsim: invalid pauli word")
)
