package jsonstore

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Store persists an ordered list of flat records as a JSON array in a single file.
// Reads are corruption tolerant: a store that cannot be read or parsed degrades to
// an empty list, and list elements that are not JSON objects are skipped one by one.
// Writes always overwrite the whole collection.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{
		path: path,
	}
}

// Path returns the file backing this store.
func (s *Store) Path() string {
	return s.path
}

// Load returns every record element of the persisted list, order preserved.
// It never fails: a missing file, an unreadable file, malformed JSON or a
// non-array root all degrade to an empty list with a logged diagnostic.
func (s *Store) Load() []json.RawMessage {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", s.path).Msg("Store file not found, using empty list")
		} else {
			log.Error().Err(err).Str("path", s.path).Msg("Could not read store file, using empty list")
		}

		return nil
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("Store file does not hold a JSON list, using empty list")

		return nil
	}

	records := make([]json.RawMessage, 0, len(rows))
	for idx, row := range rows {
		if !isRecord(row) {
			log.Error().Int("index", idx).Str("path", s.path).Msg("List element is not a record, skipped")

			continue
		}

		records = append(records, row)
	}

	return records
}

// Save overwrites the persisted collection with the given rows, creating the
// parent directory when needed. Unlike Load, a failed write is a hard error.
func (s *Store) Save(rows any) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrapf(err, "creating store directory for %s", s.path)
	}

	payload, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encoding records for %s", s.path)
	}

	payload = append(payload, '\n')

	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return errors.Wrapf(err, "writing store file %s", s.path)
	}

	return nil
}

func isRecord(row json.RawMessage) bool {
	trimmed := bytes.TrimLeft(row, " \t\r\n")

	return len(trimmed) > 0 && trimmed[0] == '{'
}
