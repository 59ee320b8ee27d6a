// Package csvstore persists the lead table as a single CSV file with a
// fixed header row. The file is read once at startup and rewritten
// wholesale on each successful edit; there is no partial-write or
// transactional guarantee.
package csvstore

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/leadstream/leadstream/pkg/errors"
	"github.com/leadstream/leadstream/pkg/leads"
)

// filePermissions is the mode for a newly created store file.
const filePermissions = 0644

// Store reads and writes the lead CSV at a fixed path.
type Store struct {
	path string
}

// New creates a store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the backing file into raw records. A missing or empty file
// is created containing only the header row and yields zero records.
// Parse failures return a ParseError; callers treat it as non-fatal and
// continue with an empty table.
func (s *Store) Load() ([]leads.Record, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, errors.WrapIO("open", s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.WrapParse("csv", s.path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []leads.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", s.path, err)
		}

		rec := make(leads.Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

// Save serializes the full table back to the backing file, all columns
// in schema order, rows in table order, overwriting the previous
// contents. On failure the previous in-memory table stays authoritative.
func (s *Store) Save(table *leads.Table) error {
	file, err := os.Create(s.path)
	if err != nil {
		return errors.WrapIO("create", s.path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(leads.Columns()); err != nil {
		file.Close()
		return errors.WrapIO("write", s.path, err)
	}

	var rowErr error
	table.ForEach(func(l *leads.Lead) bool {
		if err := writer.Write(marshalRow(l)); err != nil {
			rowErr = err
			return false
		}
		return true
	})
	if rowErr != nil {
		file.Close()
		return errors.WrapIO("write", s.path, rowErr)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return errors.WrapIO("write", s.path, err)
	}
	if err := file.Close(); err != nil {
		return errors.WrapIO("write", s.path, err)
	}
	return nil
}

// ensure creates the backing file with only the header row when it does
// not exist or is empty.
func (s *Store) ensure() error {
	info, err := os.Stat(s.path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	if err != nil && !os.IsNotExist(err) {
		return errors.WrapIO("stat", s.path, err)
	}

	header := strings.Join(leads.Columns(), ",") + "\n"
	if err := os.WriteFile(s.path, []byte(header), filePermissions); err != nil {
		return errors.WrapIO("create", s.path, err)
	}
	return nil
}

// marshalRow renders a lead as CSV fields in schema order.
func marshalRow(l *leads.Lead) []string {
	created := ""
	if l.CreatedDate != nil {
		created = l.CreatedDate.Format(time.RFC3339)
	}
	score := ""
	if l.EngagementScore != nil {
		score = strconv.FormatFloat(*l.EngagementScore, 'f', -1, 64)
	}
	return []string{
		strconv.Itoa(l.ID),
		l.FullName,
		l.Location,
		string(l.Status),
		l.Phone,
		l.Email,
		string(l.Source),
		created,
		string(l.InterestStatus),
		l.Notes,
		score,
		l.Owner,
	}
}
