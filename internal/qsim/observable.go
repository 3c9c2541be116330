package qsim

import "fmt"

// PauliTerm is one weighted Pauli word, e.g. 0.39 * "ZI".
// The word has one letter per qubit, qubit 0 first.
type PauliTerm struct {
	Coeff float64
	Word  string
}

// Observable is a real-weighted sum of Pauli words.
type Observable []PauliTerm

// SingleZ returns the Z observable on one wire of an n-qubit register.
func SingleZ(n, q int) Observable {
	w := make([]byte, n)
	for i := range w {
		w[i] = 'I'
	}
	w[q] = 'Z'
	return Observable{{Coeff: 1, Word: string(w)}}
}

func pauliLetter(c byte) (Matrix, error) {
	switch c {
	case 'I':
		return Identity(2), nil
	case 'X':
		return XGate(), nil
	case 'Y':
		return YGate(), nil
	case 'Z':
		return ZGate(), nil
	}
	return nil, fmt.Errorf("%w: letter %q", ErrBadPauliWord, string(c))
}

// Matrix realizes the observable as a dense 2^n Hermitian matrix.
func (o Observable) Matrix(n int) (Matrix, error) {
	out := NewMatrix(1<<n, 1<<n)
	for _, term := range o {
		if len(term.Word) != n {
			return nil, fmt.Errorf("%w: word %q on %d qubits", ErrBadPauliWord, term.Word, n)
		}
		m := Matrix{{1}}
		for i := 0; i < n; i++ {
			p, err := pauliLetter(term.Word[i])
			if err != nil {
				return nil, err
			}
			m = m.Kron(p)
		}
		out = out.Add(m.Scale(complex(term.Coeff, 0)))
	}
	return out, nil
}
