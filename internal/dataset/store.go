package dataset

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/contactkeval/option-quote/internal/logger"
)

var (
	ErrDatasetNotFound = errors.New("dataset not found")
	ErrTooManyRows     = errors.New("dataset exceeds row limit")
	ErrStoreFull       = errors.New("dataset store is full")
)

// Info is the catalog entry for one stored dataset.
type Info struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}

// Store holds parsed datasets in memory, keyed by generated IDs.
// All methods are safe for concurrent use. Limits of zero or below
// mean unbounded.
type Store struct {
	mu          sync.RWMutex
	seq         int
	byID        map[string]*Dataset
	maxRows     int
	maxDatasets int
}

func NewStore(maxRows, maxDatasets int) *Store {
	return &Store{
		byID:        make(map[string]*Dataset),
		maxRows:     maxRows,
		maxDatasets: maxDatasets,
	}
}

// Put parses r and stores the result under a fresh ID.
func (s *Store) Put(name string, r io.Reader) (string, *Dataset, error) {
	ds, err := Parse(name, r)
	if err != nil {
		return "", nil, err
	}
	if s.maxRows > 0 && ds.NumRows() > s.maxRows {
		return "", nil, fmt.Errorf("%w: %d > %d", ErrTooManyRows, ds.NumRows(), s.maxRows)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxDatasets > 0 && len(s.byID) >= s.maxDatasets {
		return "", nil, ErrStoreFull
	}

	s.seq++
	id := fmt.Sprintf("ds-%04d", s.seq)
	s.byID[id] = ds

	logger.Infof("event=dataset_stored id=%s name=%s rows=%d cols=%d", id, name, ds.NumRows(), ds.NumColumns())
	return id, ds, nil
}

func (s *Store) Get(id string) (*Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ds, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, id)
	}
	return ds, nil
}

// List returns catalog entries sorted by ID.
func (s *Store) List() []Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Info, 0, len(s.byID))
	for id, ds := range s.byID {
		out = append(out, Info{ID: id, Name: ds.Name, Rows: ds.NumRows(), Columns: ds.NumColumns()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("%w: %s", ErrDatasetNotFound, id)
	}
	delete(s.byID, id)

	logger.Infof("event=dataset_deleted id=%s", id)
	return nil
}
