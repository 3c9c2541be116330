package challenge

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
)

// RunCase grades one case. Panics and errors from the challenge code are
// reported as Runtime Error; they never escape.
func RunCase(ch Challenge, idx int) (out Outcome) {
	cases := ch.Cases()
	c := cases[idx]
	out = Outcome{Case: idx, Want: c.Expected}

	defer func() {
		if r := recover(); r != nil {
			log.Debug("challenge panicked", "challenge", ch.Name(), "case", idx, "panic", r)
			out.Verdict = RuntimeError
			out.Err = fmt.Errorf("challenge: panic: %v", r)
		}
	}()

	result, err := ch.Run(json.RawMessage(c.Input))
	if err != nil {
		out.Verdict = RuntimeError
		out.Err = err
		return out
	}

	got, err := json.Marshal(result)
	if err != nil {
		out.Verdict = RuntimeError
		out.Err = err
		return out
	}
	out.Got = string(got)

	if Match(got, []byte(c.Expected), ch.Tolerance()) {
		out.Verdict = Correct
	} else {
		out.Verdict = WrongAnswer
	}
	return out
}

// RunAll grades every case of a challenge.
func RunAll(ch Challenge) []Outcome {
	outcomes := make([]Outcome, len(ch.Cases()))
	for i := range outcomes {
		outcomes[i] = RunCase(ch, i)
	}
	return outcomes
}
