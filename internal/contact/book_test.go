package contact

import (
	"errors"
	"slices"
	"testing"
)

func names(cs []*Contact) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name()
	}
	return out
}

func newBook(t *testing.T, people map[string]string, order ...string) *Book {
	t.Helper()
	b := NewBook()
	for _, name := range order {
		c := mustNew(t, name)
		c.SetNote(people[name])
		if err := b.Add(c); err != nil {
			t.Fatalf("Add(%q) error = %v", name, err)
		}
	}
	return b
}

func TestBook_AddFindDelete(t *testing.T) {
	b := NewBook()
	_ = b.Add(mustNew(t, "Zed"))
	_ = b.Add(mustNew(t, "Amy"))

	if err := b.Add(mustNew(t, "Amy")); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Add(dup) error = %v, want ErrDuplicate", err)
	}
	if got := names(b.All()); !slices.Equal(got, []string{"Zed", "Amy"}) {
		t.Errorf("All() = %v, want insertion order [Zed Amy]", got)
	}
	if b.Find("amy") != nil {
		t.Error("Find should be case-sensitive")
	}

	if err := b.Delete("Unknown"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(unknown) error = %v, want ErrNotFound", err)
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d after failed delete, want 2", b.Len())
	}

	if err := b.Delete("Zed"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got := b.Names(); !slices.Equal(got, []string{"Amy"}) {
		t.Errorf("Names() = %v, want [Amy]", got)
	}
	if _, err := b.Get("Zed"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(deleted) error = %v, want ErrNotFound", err)
	}
}

func TestBook_Search(t *testing.T) {
	b := newBook(t, nil, "John", "Johanna", "Mary")

	got, err := b.Search("JOH")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if !slices.Equal(names(got), []string{"John", "Johanna"}) {
		t.Errorf("Search(JOH) = %v", names(got))
	}

	got, err = b.Search("zzz")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Search(zzz) = %v, want empty", names(got))
	}

	if _, err := b.Search("  "); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Search(blank) error = %v, want ErrInvalidArgument", err)
	}
}

func TestBook_SearchNotes(t *testing.T) {
	b := newBook(t, map[string]string{
		"John": "Met at the Conference in Lviv",
		"Mary": "neighbour",
	}, "John", "Mary", "Bob")

	got, err := b.SearchNotes("conference")
	if err != nil {
		t.Fatalf("SearchNotes() error = %v", err)
	}
	if !slices.Equal(names(got), []string{"John"}) {
		t.Errorf("SearchNotes(conference) = %v, want [John]", names(got))
	}
}

func TestBook_SearchTag(t *testing.T) {
	// Given one note with a hashtag and one with the bare word
	b := newBook(t, map[string]string{
		"John": "call #Urgent later",
		"Mary": "call urgent later",
	}, "John", "Mary")

	// When searching by tag
	got, err := b.SearchTag("urgent")

	// Then only the hashtag matches
	if err != nil {
		t.Fatalf("SearchTag() error = %v", err)
	}
	if !slices.Equal(names(got), []string{"John"}) {
		t.Errorf("SearchTag(urgent) = %v, want [John]", names(got))
	}

	if _, err := b.SearchTag("#"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SearchTag(#) error = %v, want ErrInvalidArgument", err)
	}
}

func TestBook_SortedByTag(t *testing.T) {
	b := newBook(t, map[string]string{
		"Zoe":  "#work stuff",
		"Adam": "#Work too",
		"Bob":  "#family first #work",
		"Carl": "no tags",
	}, "Zoe", "Adam", "Bob", "Carl", "Dana")

	got := names(b.SortedByTag())
	want := []string{"Bob", "Adam", "Zoe"}
	if !slices.Equal(got, want) {
		t.Errorf("SortedByTag() = %v, want %v", got, want)
	}
}
