package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"favorites-tracker/models"
)

// timeLayout matches the timestamps the app has always written.
const timeLayout = "2006-01-02 15:04:05"

var header = []string{"symbol", "name", "added_at", "note"}

// CSVStore persists the favorites list as a CSV file with a header row.
// The path is fixed at construction time.
type CSVStore struct {
	path string
}

// NewCSVStore creates a store backed by the file at path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Path returns the backing file path.
func (s *CSVStore) Path() string { return s.path }

// Load reads the favorites list from disk. A missing file is an empty
// list, not an error.
func (s *CSVStore) Load() (models.FavoritesList, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.FavoritesList{}, nil
		}
		return nil, fmt.Errorf("open favorites file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	first, err := r.Read()
	if err == io.EOF {
		return models.FavoritesList{}, nil
	}
	if err != nil {
		return nil, s.parseError(err)
	}
	if len(first) < 1 || first[0] != header[0] {
		return nil, &ParseError{Path: s.path, Line: 1, Err: errors.New("missing header row")}
	}

	list := models.FavoritesList{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, s.parseError(err)
		}

		entry := models.StockEntry{
			Symbol: record[0],
			Name:   record[1],
			Note:   record[3],
		}
		if record[2] != "" {
			added, err := time.Parse(timeLayout, record[2])
			if err != nil {
				line, _ := r.FieldPos(0)
				return nil, &ParseError{Path: s.path, Line: line, Err: err}
			}
			entry.AddedAt = added
		}
		list = append(list, entry)
	}
	return list, nil
}

// Save rewrites the whole file with the given list. The write goes to a
// temp file in the same directory which is then renamed over the
// target, so a failed save leaves the previous contents in place.
func (s *CSVStore) Save(list models.FavoritesList) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, entry := range list {
		added := ""
		if !entry.AddedAt.IsZero() {
			added = entry.AddedAt.Format(timeLayout)
		}
		if err := w.Write([]string{entry.Symbol, entry.Name, added, entry.Note}); err != nil {
			tmp.Close()
			return fmt.Errorf("write entry %s: %w", entry.Symbol, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush favorites file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace favorites file: %w", err)
	}
	return nil
}

func (s *CSVStore) parseError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Path: s.path, Line: csvErr.Line, Err: csvErr.Err}
	}
	return &ParseError{Path: s.path, Err: err}
}
