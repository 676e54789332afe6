package contact

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

// DefaultBirthdayDays is the look-ahead window used when none is given.
const DefaultBirthdayDays = 7

// Upcoming is a birthday reminder: the contact and the date to congratulate them.
type Upcoming struct {
	Name             string
	Birthday         Date
	CongratulateDate Date
}

// NextOccurrence returns the first anniversary of birthday on or after today.
// February 29 is observed on March 1 in non-leap years.
func NextOccurrence(birthday, today Date) Date {
	next := NewDate(today.Year, birthday.Month, birthday.Day)
	if next.Before(today) {
		next = NewDate(today.Year+1, birthday.Month, birthday.Day)
	}
	return next
}

// CongratulationDate moves a weekend date forward to the following Monday.
func CongratulationDate(d Date) Date {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDays(2)
	case time.Sunday:
		return d.AddDays(1)
	default:
		return d
	}
}

// UpcomingBirthdays returns the contacts whose next birthday falls within
// [today, today+days], sorted by congratulation date and then by name.
func (b *Book) UpcomingBirthdays(today Date, days int) ([]Upcoming, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: days must be non-negative, got %d", ErrInvalidArgument, days)
	}
	end := today.AddDays(days)

	var out []Upcoming
	for _, c := range b.All() {
		if c.Birthday == nil {
			continue
		}
		next := NextOccurrence(*c.Birthday, today)
		if next.After(end) {
			continue
		}
		out = append(out, Upcoming{
			Name:             c.Name(),
			Birthday:         *c.Birthday,
			CongratulateDate: CongratulationDate(next),
		})
	}

	slices.SortFunc(out, func(x, y Upcoming) int {
		return cmp.Or(
			x.CongratulateDate.Time().Compare(y.CongratulateDate.Time()),
			cmp.Compare(x.Name, y.Name),
		)
	})
	return out, nil
}
