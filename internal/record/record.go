package record

import (
	"errors"
	"time"
)

// DateLayout is the calendar format used for every date field on disk.
const DateLayout = "2006-01-02"

// ErrMalformed is returned by Decode when a line cannot be turned into a
// record. Loaders treat it as "skip this line".
var ErrMalformed = errors.New("record: malformed")

// Entity is implemented by every record type that carries a sequential
// identifier. WithID returns a copy with the identifier replaced.
type Entity[T any] interface {
	RecordID() int
	WithID(id int) T
}

// Product is a stocked item with an expiry date.
type Product struct {
	ID     int
	Name   string
	Expiry time.Time
}

// RecordID returns the product identifier.
func (p Product) RecordID() int { return p.ID }

// WithID returns a copy of p carrying id.
func (p Product) WithID(id int) Product {
	p.ID = id
	return p
}

// Expired reports whether the product's expiry date lies strictly before the
// calendar day of now.
func (p Product) Expired(now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return p.Expiry.Before(today)
}

// User is a person known to the inventory.
type User struct {
	ID   int
	Name string
}

// RecordID returns the user identifier.
func (u User) RecordID() int { return u.ID }

// WithID returns a copy of u carrying id.
func (u User) WithID(id int) User {
	u.ID = id
	return u
}

// Category groups products by name. Categories live in memory only.
type Category struct {
	ID   int
	Name string
}

// RecordID returns the category identifier.
func (c Category) RecordID() int { return c.ID }

// WithID returns a copy of c carrying id.
func (c Category) WithID(id int) Category {
	c.ID = id
	return c
}

// ParseDate parses s strictly in DateLayout and returns the date at UTC
// midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
