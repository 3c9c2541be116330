package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store persists graded runs as JSON files under a data directory.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// CaseRecord is the stored outcome of one graded case.
type CaseRecord struct {
	Case    int    `json:"case"`
	Verdict string `json:"verdict"`
	Got     string `json:"got,omitempty"`
	Want    string `json:"want"`
	Error   string `json:"error,omitempty"`
}

// RunRecord is one graded challenge run.
type RunRecord struct {
	ID        string       `json:"id"`
	Challenge string       `json:"challenge"`
	Timestamp time.Time    `json:"timestamp"`
	Elapsed   float64      `json:"elapsed_seconds"`
	Cases     []CaseRecord `json:"cases"`
	Passed    bool         `json:"passed"`
}

// Save writes the record and returns its generated ID.
func (s *Store) Save(rec RunRecord) (string, error) {
	rec.ID = rec.Challenge + "_" + uuid.NewString()[:8]
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	f, err := os.Create(filepath.Join(s.baseDir, rec.ID+".json"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Load reads one record by ID.
func (s *Store) Load(id string) (*RunRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id+".json"))
	if err != nil {
		return nil, err
	}
	var rec RunRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns all stored records, newest first.
func (s *Store) List() ([]RunRecord, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var recs []RunRecord
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		rec, err := s.Load(strings.TrimSuffix(e.Name(), ".json"))
		if err != nil {
			continue
		}
		recs = append(recs, *rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].Timestamp.After(recs[j].Timestamp)
	})
	return recs, nil
}
