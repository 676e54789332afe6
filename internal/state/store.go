// Package state persists the address book to a single versioned YAML file.
package state

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/abook/internal/contact"
	"github.com/smileynet/abook/internal/phone"
)

// FormatVersion is the version written to, and required of, the book file.
const FormatVersion = 1

// Sentinel errors for caller-checkable conditions.
var (
	ErrCorrupt            = errors.New("state: corrupt address book file")
	ErrUnsupportedVersion = errors.New("state: unsupported address book format version")
)

// document is the on-disk layout of the book file.
type document struct {
	Version  int      `yaml:"version"`
	Contacts []record `yaml:"contacts"`
}

// record is the on-disk layout of a single contact. Optional fields are
// omitted when empty.
type record struct {
	Name     string   `yaml:"name"`
	Phones   []string `yaml:"phones,omitempty"`
	Emails   []string `yaml:"emails,omitempty"`
	Address  string   `yaml:"address,omitempty"`
	Birthday string   `yaml:"birthday,omitempty"`
	Note     string   `yaml:"note,omitempty"`
}

// FileStore loads and saves the whole address book at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the address book. A missing or empty file yields an empty book.
// Any unreadable or malformed content is an error; nothing is partially recovered.
func (s *FileStore) Load() (*contact.Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return contact.NewBook(), nil
		}
		return nil, fmt.Errorf("state: reading %s: %w", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return contact.NewBook(), nil
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return contact.NewBook(), nil
		}
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrCorrupt, s.path, err)
	}

	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %s has version %d, want %d", ErrUnsupportedVersion, s.path, doc.Version, FormatVersion)
	}

	book := contact.NewBook()
	for i, r := range doc.Contacts {
		c, err := r.toContact()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: contact %d: %v", ErrCorrupt, s.path, i+1, err)
		}
		if err := book.Add(c); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
		}
	}
	return book, nil
}

// Save writes the whole book, replacing the previous file. The data is
// written to a temporary file in the same directory and renamed over the
// target, so an interrupted save leaves the previous file intact.
func (s *FileStore) Save(book *contact.Book) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("state: creating directory: %w", err)
	}

	doc := document{Version: FormatVersion, Contacts: make([]record, 0, book.Len())}
	for _, c := range book.All() {
		doc.Contacts = append(doc.Contacts, fromContact(c))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("state: marshaling: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("state: marshaling: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("state: creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("state: writing %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("state: syncing %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("state: closing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("state: replacing %s: %w", s.path, err)
	}
	return nil
}

func fromContact(c *contact.Contact) record {
	r := record{
		Name:    c.Name(),
		Emails:  c.Emails,
		Address: c.Address,
		Note:    c.Note,
	}
	for _, p := range c.Phones {
		r.Phones = append(r.Phones, p.String())
	}
	if c.Birthday != nil {
		r.Birthday = c.Birthday.ISO()
	}
	return r
}

func (r record) toContact() (*contact.Contact, error) {
	c, err := contact.New(r.Name)
	if err != nil {
		return nil, err
	}
	for _, raw := range r.Phones {
		n, err := phone.Canonical(raw)
		if err != nil {
			return nil, err
		}
		if err := c.AddPhone(n); err != nil {
			return nil, err
		}
	}
	for _, email := range r.Emails {
		if err := c.AddEmail(email); err != nil {
			return nil, err
		}
	}
	if r.Address != "" {
		if err := c.SetAddress(r.Address); err != nil {
			return nil, err
		}
	}
	if r.Birthday != "" {
		d, err := contact.ParseISODate(r.Birthday)
		if err != nil {
			return nil, err
		}
		c.Birthday = &d
	}
	c.Note = r.Note
	return c, nil
}
