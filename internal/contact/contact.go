// Package contact holds the address book record model: contacts, the book
// that owns them, and the searches and birthday reminders computed over it.
package contact

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/smileynet/abook/internal/phone"
)

var validate = validator.New()

// Contact is a single address book entry. Name is immutable once created.
type Contact struct {
	name     string
	Phones   []phone.Number
	Emails   []string
	Address  string
	Birthday *Date
	Note     string
}

// New creates a contact with the given name. Surrounding whitespace is trimmed.
func New(name string) (*Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}
	return &Contact{name: name}, nil
}

// Name returns the contact's unique name.
func (c *Contact) Name() string {
	return c.name
}

// HasPhone reports whether n is recorded for the contact.
func (c *Contact) HasPhone(n phone.Number) bool {
	return slices.Contains(c.Phones, n)
}

// AddPhone appends n unless it is already recorded.
func (c *Contact) AddPhone(n phone.Number) error {
	if c.HasPhone(n) {
		return fmt.Errorf("phone %s %w for %s", n, ErrDuplicate, c.name)
	}
	c.Phones = append(c.Phones, n)
	return nil
}

// RemovePhone removes n from the contact's phones.
func (c *Contact) RemovePhone(n phone.Number) error {
	i := slices.Index(c.Phones, n)
	if i < 0 {
		return fmt.Errorf("phone %s %w for %s", n, ErrNotFound, c.name)
	}
	c.Phones = slices.Delete(c.Phones, i, i+1)
	return nil
}

// EditPhone replaces old with replacement in place, keeping the list order.
func (c *Contact) EditPhone(old, replacement phone.Number) error {
	i := slices.Index(c.Phones, old)
	if i < 0 {
		return fmt.Errorf("phone %s %w for %s", old, ErrNotFound, c.name)
	}
	if old != replacement && c.HasPhone(replacement) {
		return fmt.Errorf("phone %s %w for %s", replacement, ErrDuplicate, c.name)
	}
	c.Phones[i] = replacement
	return nil
}

// NormalizeEmail trims and lowercases raw and checks that it is a well-formed address.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if err := validate.Var(email, "required,email"); err != nil {
		return "", fmt.Errorf("%w: %q (e.g. user@domain.com)", ErrInvalidEmail, raw)
	}
	return email, nil
}

// HasEmail reports whether email (in any letter case) is recorded for the contact.
func (c *Contact) HasEmail(email string) bool {
	return c.emailIndex(email) >= 0
}

func (c *Contact) emailIndex(email string) int {
	email = strings.ToLower(strings.TrimSpace(email))
	return slices.Index(c.Emails, email)
}

// AddEmail validates raw and appends it unless it is already recorded.
func (c *Contact) AddEmail(raw string) error {
	email, err := NormalizeEmail(raw)
	if err != nil {
		return err
	}
	if slices.Contains(c.Emails, email) {
		return fmt.Errorf("email %s %w for %s", email, ErrDuplicate, c.name)
	}
	c.Emails = append(c.Emails, email)
	return nil
}

// RemoveEmail removes email from the contact's emails.
func (c *Contact) RemoveEmail(email string) error {
	i := c.emailIndex(email)
	if i < 0 {
		return fmt.Errorf("email %s %w for %s", email, ErrNotFound, c.name)
	}
	c.Emails = slices.Delete(c.Emails, i, i+1)
	return nil
}

// EditEmail replaces old with a validated replacement in place.
func (c *Contact) EditEmail(old, replacement string) error {
	i := c.emailIndex(old)
	if i < 0 {
		return fmt.Errorf("email %s %w for %s", old, ErrNotFound, c.name)
	}
	email, err := NormalizeEmail(replacement)
	if err != nil {
		return err
	}
	if j := slices.Index(c.Emails, email); j >= 0 && j != i {
		return fmt.Errorf("email %s %w for %s", email, ErrDuplicate, c.name)
	}
	c.Emails[i] = email
	return nil
}

// SetAddress replaces the postal address.
func (c *Contact) SetAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return fmt.Errorf("%w: address cannot be empty", ErrInvalidAddress)
	}
	c.Address = address
	return nil
}

// RemoveAddress clears the postal address.
func (c *Contact) RemoveAddress() {
	c.Address = ""
}

// SetBirthday records d as the contact's birthday.
// A birthday later than today is rejected.
func (c *Contact) SetBirthday(d Date, today Date) error {
	if d.After(today) {
		return fmt.Errorf("%w: birthday %s is in the future", ErrInvalidDate, d)
	}
	c.Birthday = &d
	return nil
}

// SetNote replaces the note text.
func (c *Contact) SetNote(note string) {
	c.Note = strings.TrimSpace(note)
}

// ClearNote removes the note.
func (c *Contact) ClearNote() {
	c.Note = ""
}

// Tags returns the hashtags in the note, without '#', in order of appearance.
func (c *Contact) Tags() []string {
	return ParseTags(c.Note)
}
