package contact

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/smileynet/abook/internal/phone"
)

func mustNew(t *testing.T, name string) *Contact {
	t.Helper()
	c, err := New(name)
	if err != nil {
		t.Fatalf("New(%q) error = %v", name, err)
	}
	return c
}

func TestNew(t *testing.T) {
	c := mustNew(t, "  John  ")
	if c.Name() != "John" {
		t.Errorf("Name() = %q, want %q", c.Name(), "John")
	}

	for _, name := range []string{"", "   "} {
		if _, err := New(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("New(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestContact_Phones(t *testing.T) {
	// Given a contact with one phone
	c := mustNew(t, "John")
	if err := c.AddPhone("+380671111111"); err != nil {
		t.Fatalf("AddPhone() error = %v", err)
	}

	// When the same number is added again
	err := c.AddPhone("+380671111111")

	// Then it is rejected as a duplicate
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("AddPhone(dup) error = %v, want ErrDuplicate", err)
	}
	if len(c.Phones) != 1 {
		t.Errorf("Phones = %v, want exactly one", c.Phones)
	}

	// When a second number is added and the first edited
	if err := c.AddPhone("+380672222222"); err != nil {
		t.Fatalf("AddPhone() error = %v", err)
	}
	if err := c.EditPhone("+380671111111", "+380673333333"); err != nil {
		t.Fatalf("EditPhone() error = %v", err)
	}

	// Then order is preserved
	want := []phone.Number{"+380673333333", "+380672222222"}
	if !slices.Equal(c.Phones, want) {
		t.Errorf("Phones = %v, want %v", c.Phones, want)
	}
}

func TestContact_EditPhoneErrors(t *testing.T) {
	c := mustNew(t, "John")
	_ = c.AddPhone("+380671111111")
	_ = c.AddPhone("+380672222222")

	if err := c.EditPhone("+380679999999", "+380673333333"); !errors.Is(err, ErrNotFound) {
		t.Errorf("EditPhone(missing) error = %v, want ErrNotFound", err)
	}
	if err := c.EditPhone("+380671111111", "+380672222222"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("EditPhone(onto existing) error = %v, want ErrDuplicate", err)
	}
	// Replacing a number with itself is a no-op, not a duplicate.
	if err := c.EditPhone("+380671111111", "+380671111111"); err != nil {
		t.Errorf("EditPhone(same) error = %v, want nil", err)
	}
}

func TestContact_RemovePhone(t *testing.T) {
	c := mustNew(t, "John")
	_ = c.AddPhone("+380671111111")

	if err := c.RemovePhone("+380671111111"); err != nil {
		t.Fatalf("RemovePhone() error = %v", err)
	}
	if len(c.Phones) != 0 {
		t.Errorf("Phones = %v, want empty", c.Phones)
	}
	if err := c.RemovePhone("+380671111111"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemovePhone(missing) error = %v, want ErrNotFound", err)
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "trim and lowercase", in: "  John@Example.COM ", want: "john@example.com"},
		{name: "plus addressing", in: "john+work@example.com", want: "john+work@example.com"},
		{name: "missing at", in: "john.example.com", wantErr: true},
		{name: "missing domain", in: "john@", wantErr: true},
		{name: "empty", in: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeEmail(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEmail) {
					t.Fatalf("NormalizeEmail(%q) error = %v, want ErrInvalidEmail", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeEmail(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestContact_Emails(t *testing.T) {
	c := mustNew(t, "John")

	if err := c.AddEmail("john@example.com"); err != nil {
		t.Fatalf("AddEmail() error = %v", err)
	}
	if err := c.AddEmail("JOHN@example.com"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("AddEmail(dup, other case) error = %v, want ErrDuplicate", err)
	}
	if err := c.AddEmail("not-an-email"); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("AddEmail(invalid) error = %v, want ErrInvalidEmail", err)
	}

	if err := c.EditEmail("John@Example.com", "j@work.org"); err != nil {
		t.Fatalf("EditEmail() error = %v", err)
	}
	if !slices.Equal(c.Emails, []string{"j@work.org"}) {
		t.Errorf("Emails = %v, want [j@work.org]", c.Emails)
	}
	if err := c.EditEmail("gone@example.com", "x@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("EditEmail(missing) error = %v, want ErrNotFound", err)
	}
	if err := c.EditEmail("j@work.org", "bad"); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("EditEmail(invalid) error = %v, want ErrInvalidEmail", err)
	}

	if err := c.RemoveEmail("j@work.org"); err != nil {
		t.Fatalf("RemoveEmail() error = %v", err)
	}
	if err := c.RemoveEmail("j@work.org"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveEmail(missing) error = %v, want ErrNotFound", err)
	}
}

func TestContact_Address(t *testing.T) {
	c := mustNew(t, "John")

	if err := c.SetAddress("  Kyiv,  Khreshchatyk 1 "); err != nil {
		t.Fatalf("SetAddress() error = %v", err)
	}
	if c.Address != "Kyiv,  Khreshchatyk 1" {
		t.Errorf("Address = %q", c.Address)
	}
	if err := c.SetAddress(" "); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("SetAddress(blank) error = %v, want ErrInvalidAddress", err)
	}
	c.RemoveAddress()
	if c.Address != "" {
		t.Errorf("Address = %q after RemoveAddress, want empty", c.Address)
	}
}

func TestContact_SetBirthday(t *testing.T) {
	c := mustNew(t, "John")
	today := NewDate(2024, time.March, 10)

	if err := c.SetBirthday(NewDate(1990, time.March, 15), today); err != nil {
		t.Fatalf("SetBirthday() error = %v", err)
	}
	if got := c.Birthday.String(); got != "15.03.1990" {
		t.Errorf("Birthday = %s, want 15.03.1990", got)
	}

	if err := c.SetBirthday(NewDate(2030, time.January, 1), today); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("SetBirthday(future) error = %v, want ErrInvalidDate", err)
	}
	if got := c.Birthday.String(); got != "15.03.1990" {
		t.Errorf("Birthday mutated to %s by rejected update", got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "15.03.1990", want: NewDate(1990, time.March, 15)},
		{in: "5.3.1990", want: NewDate(1990, time.March, 5)},
		{in: " 29.02.2000 ", want: NewDate(2000, time.February, 29)},
		{in: "29.02.2001", wantErr: true},
		{in: "31.04.1990", wantErr: true},
		{in: "1990-03-15", wantErr: true},
		{in: "15/03/1990", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("ParseDate(%q) error = %v, want ErrInvalidDate", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDate_ISORoundTrip(t *testing.T) {
	d := NewDate(1985, time.January, 2)
	got, err := ParseISODate(d.ISO())
	if err != nil {
		t.Fatalf("ParseISODate(%q) error = %v", d.ISO(), err)
	}
	if got != d {
		t.Errorf("ParseISODate(%q) = %v, want %v", d.ISO(), got, d)
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{text: "call #Urgent later", want: []string{"Urgent"}},
		{text: "#work and #family_time", want: []string{"work", "family_time"}},
		{text: "#робота дзвонити", want: []string{"робота"}},
		{text: "no tags here", want: nil},
		{text: "# alone", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ParseTags(tt.text); !slices.Equal(got, tt.want) {
				t.Errorf("ParseTags(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestHasTag(t *testing.T) {
	if !HasTag("call #Urgent later", "urgent") {
		t.Error("HasTag should match case-insensitively")
	}
	if !HasTag("call #Urgent later", "#urgent") {
		t.Error("HasTag should ignore a leading '#' in the query")
	}
	if HasTag("call urgent later", "urgent") {
		t.Error("HasTag should not match a bare word")
	}
	if HasTag("#urgently", "urgent") {
		t.Error("HasTag should match whole tags only")
	}
}
