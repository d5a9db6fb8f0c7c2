package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Codec translates between a record and its delimited fields. Framing
// (delimiter, quoting, line breaks) is handled by EncodeLine/DecodeLine and
// by the file store, so codecs only deal with field values.
type Codec[T any] interface {
	// Fields returns the exact number of fields a record occupies.
	Fields() int
	Encode(rec T) ([]string, error)
	Decode(fields []string) (T, error)
}

// Compile-time assertions.
var (
	_ Codec[Product] = ProductCodec{}
	_ Codec[User]    = UserCodec{}
)

// ProductCodec encodes products as id,name,yyyy-MM-dd.
type ProductCodec struct{}

// Fields implements Codec.
func (ProductCodec) Fields() int { return 3 }

// Encode implements Codec.
func (ProductCodec) Encode(p Product) ([]string, error) {
	if p.ID <= 0 {
		return nil, fmt.Errorf("encode product: id must be positive, got %d", p.ID)
	}
	if p.Expiry.IsZero() {
		return nil, fmt.Errorf("encode product %d: expiry date is not set", p.ID)
	}
	if err := CheckText(p.Name); err != nil {
		return nil, fmt.Errorf("encode product %d: name: %w", p.ID, err)
	}
	return []string{strconv.Itoa(p.ID), p.Name, p.Expiry.Format(DateLayout)}, nil
}

// Decode implements Codec.
func (c ProductCodec) Decode(fields []string) (Product, error) {
	if len(fields) != c.Fields() {
		return Product{}, fmt.Errorf("%w: product wants %d fields, got %d", ErrMalformed, c.Fields(), len(fields))
	}
	id, err := parseID(fields[0])
	if err != nil {
		return Product{}, err
	}
	expiry, err := ParseDate(fields[2])
	if err != nil {
		return Product{}, fmt.Errorf("%w: expiry %q: %v", ErrMalformed, fields[2], err)
	}
	return Product{ID: id, Name: fields[1], Expiry: expiry}, nil
}

// UserCodec encodes users as id,name.
type UserCodec struct{}

// Fields implements Codec.
func (UserCodec) Fields() int { return 2 }

// Encode implements Codec.
func (UserCodec) Encode(u User) ([]string, error) {
	if u.ID <= 0 {
		return nil, fmt.Errorf("encode user: id must be positive, got %d", u.ID)
	}
	if err := CheckText(u.Name); err != nil {
		return nil, fmt.Errorf("encode user %d: name: %w", u.ID, err)
	}
	return []string{strconv.Itoa(u.ID), u.Name}, nil
}

// Decode implements Codec.
func (c UserCodec) Decode(fields []string) (User, error) {
	if len(fields) != c.Fields() {
		return User{}, fmt.Errorf("%w: user wants %d fields, got %d", ErrMalformed, c.Fields(), len(fields))
	}
	id, err := parseID(fields[0])
	if err != nil {
		return User{}, err
	}
	return User{ID: id, Name: fields[1]}, nil
}

// ErrLineBreak is returned for text fields that would span more than one
// line on disk.
var ErrLineBreak = errors.New("record: text contains a line break")

// CheckText rejects values that cannot be stored on a single line.
func CheckText(s string) error {
	if strings.ContainsAny(s, "\r\n") {
		return ErrLineBreak
	}
	return nil
}

// parseID accepts only plain positive decimal integers.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 || strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("%w: id %q", ErrMalformed, s)
	}
	return id, nil
}

// EncodeLine renders rec as one delimited line without a trailing newline.
// Fields are quoted only when they contain the delimiter or a quote, so plain
// records keep the bare id,name,... form. Text with line breaks is rejected
// by the codecs, so the result never spans lines.
func EncodeLine[T any](c Codec[T], rec T) (string, error) {
	fields, err := c.Encode(rec)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(fields); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// DecodeLine parses a single physical line into a record. Quotes are read
// leniently: a bare quote inside an unquoted field is kept as text, and an
// unterminated quoted field only spoils its own line. Any framing or field
// error is reported as ErrMalformed.
func DecodeLine[T any](c Codec[T], line string) (T, error) {
	var zero T
	if strings.ContainsAny(line, "\r\n") {
		return zero, fmt.Errorf("%w: line break inside line", ErrMalformed)
	}
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	fields, err := r.Read()
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return c.Decode(fields)
}
