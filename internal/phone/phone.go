// Package phone normalizes user-entered phone numbers into canonical E.164 form.
package phone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// ErrInvalid indicates a string cannot be parsed as a plausible phone number.
var ErrInvalid = errors.New("invalid phone number")

// ErrUnknownRegion indicates a default region that libphonenumber does not know.
var ErrUnknownRegion = errors.New("phone: unknown region")

// unknownRegion is libphonenumber's region code for "international format only".
const unknownRegion = "ZZ"

// Number is a phone number in canonical international format: a leading '+',
// the country code and the national number, without separators.
type Number string

// String returns the canonical form.
func (n Number) String() string { return string(n) }

// Normalizer converts raw input into a Number, assuming a default region for
// numbers written in national format.
type Normalizer struct {
	region string
}

// New creates a Normalizer for the given ISO 3166-1 alpha-2 region (e.g. "UA").
func New(region string) (*Normalizer, error) {
	region = strings.ToUpper(strings.TrimSpace(region))
	if phonenumbers.GetCountryCodeForRegion(region) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	return &Normalizer{region: region}, nil
}

// Region returns the default region used for national-format numbers.
func (n *Normalizer) Region() string {
	return n.region
}

// Normalize parses raw and returns its canonical form.
// Normalizing an already canonical number returns it unchanged.
func (n *Normalizer) Normalize(raw string) (Number, error) {
	return parse(raw, n.region)
}

// Canonical accepts only numbers already written in international form
// ("+" followed by the country code), e.g. values read back from storage.
func Canonical(s string) (Number, error) {
	if !strings.HasPrefix(strings.TrimSpace(s), "+") {
		return "", fmt.Errorf("%w: %q (missing country code)", ErrInvalid, s)
	}
	return parse(s, unknownRegion)
}

func parse(raw, region string) (Number, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalid)
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalid, raw)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: %q", ErrInvalid, raw)
	}
	return Number(phonenumbers.Format(num, phonenumbers.E164)), nil
}
