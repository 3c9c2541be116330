package qsim

// Circuit is an ordered list of gate applications on a fixed register.
// The zero value is not usable; create one with NewCircuit.
type Circuit struct {
	Qubits int
	Ops    []Op
}

func NewCircuit(qubits int) *Circuit {
	return &Circuit{Qubits: qubits}
}

// Append adds ops in circuit order.
func (c *Circuit) Append(ops ...Op) *Circuit {
	c.Ops = append(c.Ops, ops...)
	return c
}

func (c *Circuit) add(gate string, qubits []int, params ...float64) *Circuit {
	return c.Append(Op{Gate: gate, Qubits: qubits, Params: params})
}

func (c *Circuit) H(q int) *Circuit   { return c.add(GateH, []int{q}) }
func (c *Circuit) X(q int) *Circuit   { return c.add(GateX, []int{q}) }
func (c *Circuit) Y(q int) *Circuit   { return c.add(GateY, []int{q}) }
func (c *Circuit) Z(q int) *Circuit   { return c.add(GateZ, []int{q}) }
func (c *Circuit) S(q int) *Circuit   { return c.add(GateS, []int{q}) }
func (c *Circuit) Sdg(q int) *Circuit { return c.add(GateSdg, []int{q}) }
func (c *Circuit) T(q int) *Circuit   { return c.add(GateT, []int{q}) }
func (c *Circuit) Tdg(q int) *Circuit { return c.add(GateTdg, []int{q}) }

func (c *Circuit) RX(theta float64, q int) *Circuit { return c.add(GateRX, []int{q}, theta) }
func (c *Circuit) RY(theta float64, q int) *Circuit { return c.add(GateRY, []int{q}, theta) }
func (c *Circuit) RZ(theta float64, q int) *Circuit { return c.add(GateRZ, []int{q}, theta) }

func (c *Circuit) Phase(lambda float64, q int) *Circuit { return c.add(GatePhase, []int{q}, lambda) }

func (c *Circuit) U3(theta, phi, lambda float64, q int) *Circuit {
	return c.add(GateU3, []int{q}, theta, phi, lambda)
}

func (c *Circuit) CNOT(ctrl, tgt int) *Circuit { return c.add(GateCNOT, []int{ctrl, tgt}) }
func (c *Circuit) CZ(ctrl, tgt int) *Circuit   { return c.add(GateCZ, []int{ctrl, tgt}) }
func (c *Circuit) SWAP(a, b int) *Circuit      { return c.add(GateSWAP, []int{a, b}) }

func (c *Circuit) CRX(theta float64, ctrl, tgt int) *Circuit {
	return c.add(GateCRX, []int{ctrl, tgt}, theta)
}

func (c *Circuit) CRY(theta float64, ctrl, tgt int) *Circuit {
	return c.add(GateCRY, []int{ctrl, tgt}, theta)
}

func (c *Circuit) CRZ(theta float64, ctrl, tgt int) *Circuit {
	return c.add(GateCRZ, []int{ctrl, tgt}, theta)
}

// Matrix composes the full 2^n unitary of the circuit.
func (c *Circuit) Matrix() (Matrix, error) {
	m := Identity(1 << c.Qubits)
	for _, op := range c.Ops {
		g, err := op.Matrix(c.Qubits)
		if err != nil {
			return nil, err
		}
		m = g.Mul(m)
	}
	return m, nil
}

// Inverse returns the adjoint circuit: every op daggered, in reverse order.
func (c *Circuit) Inverse() *Circuit {
	inv := NewCircuit(c.Qubits)
	for i := len(c.Ops) - 1; i >= 0; i-- {
		inv.Append(c.Ops[i].Dagger())
	}
	return inv
}

// Run evolves |0...0⟩ through the circuit on the statevector engine.
func (c *Circuit) Run() (*State, error) {
	s := ZeroState(c.Qubits)
	for _, op := range c.Ops {
		if err := s.Apply(op); err != nil {
			return nil, err
		}
	}
	return s, nil
}
