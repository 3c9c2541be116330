package challenge

import (
	"encoding/json"
	"errors"
	"sort"
	"testing"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register("beta", func() Challenge { return stubChallenge{} })
	r.Register("alpha", func() Challenge { return stubChallenge{} })

	names := r.List()
	if !sort.StringsAreSorted(names) {
		t.Errorf("expected sorted names, got %v", names)
	}
	if len(names) != 2 {
		t.Errorf("expected 2 names, got %v", names)
	}

	if _, err := r.Get("alpha"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := r.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistryBuildsFresh(t *testing.T) {
	builds := 0
	r := NewRegistry()
	r.Register("counted", func() Challenge {
		builds++
		return stubChallenge{run: func(json.RawMessage) (any, error) { return nil, nil }}
	})

	if _, err := r.Get("counted"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Get("counted"); err != nil {
		t.Fatal(err)
	}
	if builds != 2 {
		t.Errorf("expected a fresh build per Get, got %d", builds)
	}
}
