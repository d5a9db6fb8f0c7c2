package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dusk-indust/stockroom/internal/record"
)

// seqSuffix names the sidecar file holding the last issued identifier.
const seqSuffix = ".seq"

// LoadResult is the outcome of reading a store file.
type LoadResult[T any] struct {
	Records []T
	// Skipped counts lines that were present but could not be decoded.
	Skipped int
}

// Store persists an ordered sequence of records to a single text file, one
// record per line, using a record.Codec for the field values.
//
// Writes are full snapshots and replace the file atomically. There is no
// locking: one process is assumed to own the file.
type Store[T any] struct {
	path  string
	codec record.Codec[T]
}

// New returns a Store bound to path.
func New[T any](path string, codec record.Codec[T]) *Store[T] {
	return &Store[T]{path: path, codec: codec}
}

// Path returns the data file location.
func (s *Store[T]) Path() string {
	return s.path
}

// SeqPath returns the location of the identifier sequence sidecar.
func (s *Store[T]) SeqPath() string {
	return s.path + seqSuffix
}

// Load reads every record from the file. A missing file yields an empty
// result, not an error. Blank lines are ignored and lines that fail to decode
// are dropped and counted in LoadResult.Skipped; neighbouring lines are
// unaffected.
func (s *Store[T]) Load(ctx context.Context) (LoadResult[T], error) {
	if err := ctx.Err(); err != nil {
		return LoadResult[T]{}, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return LoadResult[T]{Records: []T{}}, nil
		}
		return LoadResult[T]{}, fmt.Errorf("read %s: %w", s.path, err)
	}
	return s.decode(data), nil
}

// decode treats every physical line as one record, so a damaged line can
// only lose itself.
func (s *Store[T]) decode(data []byte) LoadResult[T] {
	res := LoadResult[T]{Records: []T{}}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := record.DecodeLine(s.codec, line)
		if err != nil {
			res.Skipped++
			continue
		}
		res.Records = append(res.Records, rec)
	}
	return res
}

// Save encodes records in order and atomically replaces the file with the
// result. The file always ends with a newline unless it is empty.
func (s *Store[T]) Save(ctx context.Context, records []T) error {
	data, err := s.encode(records)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *Store[T]) encode(records []T) ([]byte, error) {
	var buf bytes.Buffer
	for i, rec := range records {
		line, err := record.EncodeLine(s.codec, rec)
		if err != nil {
			return nil, fmt.Errorf("encode record %d for %s: %w", i, s.path, err)
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// LoadSeq returns the last identifier recorded in the sidecar. A missing or
// malformed sidecar yields 0 so the caller falls back to the data itself.
func (s *Store[T]) LoadSeq() (int, error) {
	data, err := os.ReadFile(s.SeqPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read %s: %w", s.SeqPath(), err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0, nil
	}
	return n, nil
}

// SaveSeq records n as the last issued identifier.
func (s *Store[T]) SaveSeq(ctx context.Context, n int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data := []byte(strconv.Itoa(n) + "\n")
	if err := writeFileAtomic(s.SeqPath(), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.SeqPath(), err)
	}
	return nil
}
