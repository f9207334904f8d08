package datemath

import (
	"fmt"
	"time"
)

// Parser binds Extract to a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a Parser for the IANA timezone name.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %s: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Now returns t in the parser's timezone.
func (p *Parser) Now(t time.Time) time.Time {
	return t.In(p.location)
}

// Extract runs Extract with now moved into the parser's timezone.
func (p *Parser) Extract(text string, now time.Time) (time.Time, bool) {
	return Extract(text, now.In(p.location))
}

// StartOfDay returns local midnight of the day containing t.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	return startOfDay(t.In(p.location))
}
