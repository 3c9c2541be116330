// Package qsim is a small dense-matrix quantum circuit simulator.
//
// It provides the two evolution engines the challenges are built on:
//
//   - [State]: pure statevector evolution with in-place gate application
//   - [Density]: density-matrix evolution supporting noise channels
//
// Circuits are built with [Circuit] and its fluent gate helpers, and
// observables are Pauli-string sums ([Observable]). Qubit 0 is the most
// significant bit of a basis-state index, so |q0 q1⟩ = |10⟩ has index 2
// on two qubits.
//
// Everything is exact double-precision linear algebra; there is no shot
// sampling anywhere.
package qsim
