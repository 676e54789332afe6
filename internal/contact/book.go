package contact

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Book is the in-memory address book: contacts keyed by name, listed in
// insertion order. It is not safe for concurrent use.
type Book struct {
	order    []string
	contacts map[string]*Contact
}

// NewBook creates an empty Book.
func NewBook() *Book {
	return &Book{contacts: make(map[string]*Contact)}
}

// Len returns the number of contacts.
func (b *Book) Len() int {
	return len(b.order)
}

// Add inserts c. Names are unique and case-sensitive.
func (b *Book) Add(c *Contact) error {
	if _, ok := b.contacts[c.Name()]; ok {
		return fmt.Errorf("contact %s %w", c.Name(), ErrDuplicate)
	}
	b.contacts[c.Name()] = c
	b.order = append(b.order, c.Name())
	return nil
}

// Find returns the contact with the given name, or nil.
func (b *Book) Find(name string) *Contact {
	return b.contacts[strings.TrimSpace(name)]
}

// Get returns the contact with the given name or an ErrNotFound error.
func (b *Book) Get(name string) (*Contact, error) {
	c := b.Find(name)
	if c == nil {
		return nil, fmt.Errorf("contact %s %w", name, ErrNotFound)
	}
	return c, nil
}

// Delete removes the contact with the given name.
func (b *Book) Delete(name string) error {
	name = strings.TrimSpace(name)
	if _, ok := b.contacts[name]; !ok {
		return fmt.Errorf("contact %s %w", name, ErrNotFound)
	}
	delete(b.contacts, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
	return nil
}

// All returns every contact in insertion order.
func (b *Book) All() []*Contact {
	out := make([]*Contact, len(b.order))
	for i, name := range b.order {
		out[i] = b.contacts[name]
	}
	return out
}

// Names returns contact names in insertion order.
func (b *Book) Names() []string {
	return slices.Clone(b.order)
}

// Search returns contacts whose name contains query, ignoring letter case.
func (b *Book) Search(query string) ([]*Contact, error) {
	q, err := searchQuery(query)
	if err != nil {
		return nil, err
	}
	return b.filter(func(c *Contact) bool {
		return strings.Contains(strings.ToLower(c.Name()), q)
	}), nil
}

// SearchNotes returns contacts whose note contains query, ignoring letter case.
func (b *Book) SearchNotes(query string) ([]*Contact, error) {
	q, err := searchQuery(query)
	if err != nil {
		return nil, err
	}
	return b.filter(func(c *Contact) bool {
		return strings.Contains(strings.ToLower(c.Note), q)
	}), nil
}

// SearchTag returns contacts whose note carries #tag, ignoring letter case.
func (b *Book) SearchTag(tag string) ([]*Contact, error) {
	if _, err := searchQuery(strings.TrimPrefix(strings.TrimSpace(tag), "#")); err != nil {
		return nil, err
	}
	return b.filter(func(c *Contact) bool {
		return HasTag(c.Note, tag)
	}), nil
}

// SortedByTag returns the contacts that have at least one hashtag, ordered by
// their first hashtag (case-insensitive) and then by name.
func (b *Book) SortedByTag() []*Contact {
	tagged := b.filter(func(c *Contact) bool { return len(c.Tags()) > 0 })
	slices.SortStableFunc(tagged, func(x, y *Contact) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(x.Tags()[0]), strings.ToLower(y.Tags()[0])),
			cmp.Compare(x.Name(), y.Name()),
		)
	})
	return tagged
}

func (b *Book) filter(keep func(*Contact) bool) []*Contact {
	var out []*Contact
	for _, name := range b.order {
		if c := b.contacts[name]; keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func searchQuery(query string) (string, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", fmt.Errorf("%w: search query cannot be empty", ErrInvalidArgument)
	}
	return q, nil
}
