package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smileynet/abook/internal/contact"
	"github.com/smileynet/abook/internal/phone"
)

// placeholder is shown for an absent field in tables.
const placeholder = "-"

var contactHeaders = []string{"Name", "Phones", "Emails", "Address", "Birthday", "Note"}

func hello(s *Session, _ []string) error {
	s.Display.Message("Hello! How can I help you?")
	return nil
}

func help(s *Session, _ []string) error {
	s.showHelp()
	return nil
}

func goodbye(s *Session, _ []string) error {
	s.Display.Message("Good bye!")
	return nil
}

func addContact(s *Session, args []string) error {
	name, raw := args[0], args[1]
	n, err := s.Phones.Normalize(raw)
	if err != nil {
		return err
	}

	c := s.Book.Find(name)
	created := c == nil
	if created {
		if c, err = contact.New(name); err != nil {
			return err
		}
		if err := s.Book.Add(c); err != nil {
			return err
		}
	}
	if err := c.AddPhone(n); err != nil {
		return err
	}

	if created {
		s.Display.Message("Contact added.")
	} else {
		s.Display.Message("Contact updated.")
	}
	return nil
}

func showPhone(s *Session, args []string) error {
	c, err := s.Book.Get(args[0])
	if err != nil {
		return err
	}
	if len(c.Phones) == 0 {
		s.Display.Message(fmt.Sprintf("No phones for %s.", c.Name()))
		return nil
	}
	s.Display.Message(joinPhones(c.Phones))
	return nil
}

func removePhone(s *Session, args []string) error {
	c, err := s.Book.Get(args[0])
	if err != nil {
		return err
	}
	n, err := s.Phones.Normalize(args[1])
	if err != nil {
		return err
	}
	if err := c.RemovePhone(n); err != nil {
		return err
	}
	s.Display.Message("Phone removed.")
	return nil
}

func deleteContact(s *Session, args []string) error {
	if err := s.Book.Delete(args[0]); err != nil {
		return err
	}
	s.Display.Message("Contact deleted.")
	return nil
}

func showAll(s *Session, _ []string) error {
	if s.Book.Len() == 0 {
		s.Display.Message("Address book is empty.")
		return nil
	}
	s.showContacts("Contacts", s.Book.All())
	return nil
}

func editContact(s *Session, args []string) error {
	c, err := s.Book.Get(args[0])
	if err != nil {
		return err
	}
	field, value := strings.ToLower(args[1]), args[2]

	switch field {
	case "phone":
		old, replacement, err := pair(value, "<name> phone <old_phone> <new_phone>")
		if err != nil {
			return err
		}
		oldN, err := s.Phones.Normalize(old)
		if err != nil {
			return err
		}
		newN, err := s.Phones.Normalize(replacement)
		if err != nil {
			return err
		}
		if err := c.EditPhone(oldN, newN); err != nil {
			return err
		}
		s.Display.Message("Phone changed.")
	case "email":
		old, replacement, err := pair(value, "<name> email <old_email> <new_email>")
		if err != nil {
			return err
		}
		if err := c.EditEmail(old, replacement); err != nil {
			return err
		}
		s.Display.Message("Email changed.")
	case "address":
		if err := c.SetAddress(value); err != nil {
			return err
		}
		s.Display.Message("Address changed.")
	case "birthday":
		d, err := contact.ParseDate(value)
		if err != nil {
			return err
		}
		if err := c.SetBirthday(d, s.Today()); err != nil {
			return err
		}
		s.Display.Message("Birthday changed.")
	case "note":
		c.SetNote(value)
		s.Display.Message("Note changed.")
	default:
		return fmt.Errorf("%w: unknown field %q (use phone, email, address, birthday or note)",
			contact.ErrInvalidArgument, args[1])
	}
	return nil
}

// pair splits value into exactly two fields.
func pair(value, usage string) (string, string, error) {
	f := strings.Fields(value)
	if len(f) != 2 {
		return "", "", &UsageError{Name: "edit", Args: usage}
	}
	return f[0], f[1], nil
}

func addBirthday(s *Session, args []string) error {
	c, err := s.Book.Get(args[0])
	if err != nil {
		return err
	}
	d, err := contact.ParseDate(args[1])
	if err != nil {
		return err
	}
	existed := c.Birthday != nil
	if err := c.SetBirthday(d, s.Today()); err != nil {
		return err
	}
	if existed {
		s.Display.Message("Birthday updated.")
	} else {
		s.Display.Message("Birthday added.")
	}
	return nil
}

func showBirthday(s *Session, args []string) error {
	c, err := s.Book.Get(args[0])
	if err != nil {
		return err
	}
	if c.Birthday == nil {
		s.Display.Message(fmt.Sprintf("No birthday set for %s.", c.Name()))
		return nil
	}
	s.Display.Message(c.Birthday.String())
	return nil
}

func birthdays(s *Session, args []string) error {
	days := s.DefaultDays
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: days must be a whole number, got %q", contact.ErrInvalidArgument, args[0])
		}
		days = n
	}

	upcoming, err := s.Book.UpcomingBirthdays(s.Today(), days)
	if err != nil {
		return err
	}
	if len(upcoming) == 0 {
		s.Display.Message(fmt.Sprintf("No birthdays in the next %d days.", days))
		return nil
	}

	rows := make([][]string, len(upcoming))
	for i, u := range upcoming {
		rows[i] = []string{u.Name, u.Birthday.String(), u.CongratulateDate.String()}
	}
	s.Display.Table("Upcoming birthdays", []string{"Name", "Birthday", "Congratulation date"}, rows)
	return nil
}

func addEmail(s *Session, args []string) error {
	c, err := s.Book.Get(args[0])
	if err != nil {
		return err
	}
	if err := c.AddEmail(args[1]); err != nil {
		return err
	}
	s.Display.Message("Email added.")
	return nil
}

func editEmail(s *Session, args []string) error {
	c, err := s.Book.Get(args[0])
	if err != nil {
		return err
	}
	if err := c.EditEmail(args[1], args[2]); err != nil {
		return err
	}
	s.Display.Message("Email changed.")
	return nil
}

func removeEmail(s *Session, args []string) error {
	c, err := s.Book.Get(args[0])
	if err != nil {
		return err
	}
	if err := c.RemoveEmail(args[1]); err != nil {
		return err
	}
	s.Display.Message("Email removed.")
	return nil
}

func showEmail(s *Session, args []string) error {
	c, err := s.Book.Get(args[0])
	if err != nil {
		return err
	}
	if len(c.Emails) == 0 {
		s.Display.Message(fmt.Sprintf("No emails for %s.", c.Name()))
		return nil
	}
	s.Display.Message(strings.Join(c.Emails, "; "))
	return nil
}

func addAddress(s *Session, args []string) error {
	c, err := s.Book.Get(args[0])
	if err != nil {
		return err
	}
	if c.Address != "" {
		return fmt.Errorf("address for %s %w (use edit-address)", c.Name(), contact.ErrDuplicate)
	}
	if err := c.SetAddress(args[1]); err != nil {
		return err
	}
	s.Display.Message("Address added.")
	return nil
}

func editAddress(s *Session, args []string) error {
	c, err := s.Book.Get(args[0])
	if err != nil {
		return err
	}
	if c.Address == "" {
		return fmt.Errorf("address for %s %w (use add-address)", c.Name(), contact.ErrNotFound)
	}
	if err := c.SetAddress(args[1]); err != nil {
		return err
	}
	s.Display.Message("Address changed.")
	return nil
}

func removeAddress(s *Session, args []string) error {
	c, err := s.Book.Get(args[0])
	if err != nil {
		return err
	}
	if c.Address == "" {
		return fmt.Errorf("address for %s %w", c.Name(), contact.ErrNotFound)
	}
	c.RemoveAddress()
	s.Display.Message("Address removed.")
	return nil
}

func showAddress(s *Session, args []string) error {
	c, err := s.Book.Get(args[0])
	if err != nil {
		return err
	}
	if c.Address == "" {
		s.Display.Message(fmt.Sprintf("No address for %s.", c.Name()))
		return nil
	}
	s.Display.Message(c.Address)
	return nil
}

func addNote(s *Session, args []string) error {
	c, err := s.Book.Get(args[0])
	if err != nil {
		return err
	}
	if c.Note != "" {
		return fmt.Errorf("note for %s %w (use edit-note)", c.Name(), contact.ErrDuplicate)
	}
	c.SetNote(args[1])
	s.Display.Message("Note added.")
	return nil
}

func editNote(s *Session, args []string) error {
	c, err := s.Book.Get(args[0])
	if err != nil {
		return err
	}
	if c.Note == "" {
		return fmt.Errorf("note for %s %w (use add-note)", c.Name(), contact.ErrNotFound)
	}
	c.SetNote(args[1])
	s.Display.Message("Note changed.")
	return nil
}

func deleteNote(s *Session, args []string) error {
	c, err := s.Book.Get(args[0])
	if err != nil {
		return err
	}
	if c.Note == "" {
		return fmt.Errorf("note for %s %w", c.Name(), contact.ErrNotFound)
	}
	c.ClearNote()
	s.Display.Message("Note deleted.")
	return nil
}

func search(s *Session, args []string) error {
	found, err := s.Book.Search(args[0])
	if err != nil {
		return err
	}
	s.showMatches(found)
	return nil
}

func searchNotes(s *Session, args []string) error {
	found, err := s.Book.SearchNotes(args[0])
	if err != nil {
		return err
	}
	s.showMatches(found)
	return nil
}

func searchTags(s *Session, args []string) error {
	found, err := s.Book.SearchTag(args[0])
	if err != nil {
		return err
	}
	s.showMatches(found)
	return nil
}

func sortTags(s *Session, _ []string) error {
	tagged := s.Book.SortedByTag()
	if len(tagged) == 0 {
		s.Display.Message("No contacts with tags.")
		return nil
	}
	rows := make([][]string, len(tagged))
	for i, c := range tagged {
		rows[i] = []string{"#" + c.Tags()[0], c.Name(), c.Note}
	}
	s.Display.Table("Contacts by tag", []string{"Tag", "Name", "Note"}, rows)
	return nil
}

func (s *Session) showMatches(found []*contact.Contact) {
	if len(found) == 0 {
		s.Display.Message("No contacts found.")
		return
	}
	s.showContacts(fmt.Sprintf("Found %d", len(found)), found)
}

func (s *Session) showContacts(title string, cs []*contact.Contact) {
	rows := make([][]string, len(cs))
	for i, c := range cs {
		birthday := placeholder
		if c.Birthday != nil {
			birthday = c.Birthday.String()
		}
		rows[i] = []string{
			c.Name(),
			orPlaceholder(joinPhones(c.Phones)),
			orPlaceholder(strings.Join(c.Emails, "; ")),
			orPlaceholder(c.Address),
			birthday,
			orPlaceholder(c.Note),
		}
	}
	s.Display.Table(title, contactHeaders, rows)
}

func joinPhones(ns []phone.Number) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = n.String()
	}
	return strings.Join(parts, "; ")
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
