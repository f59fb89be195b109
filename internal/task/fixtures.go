package task

import (
	"fmt"
	"time"
)

type fixture struct {
	Text    string
	DueDays int
	Status  Status
}

var fixtures = []fixture{
	// Errands
	{Text: "Buy milk", DueDays: 0, Status: NotStarted},
	{Text: "Pick up dry cleaning", DueDays: 2, Status: NotStarted},
	{Text: "Return library books", DueDays: 5, Status: InProgress},

	// Bills
	{Text: "Pay rent", DueDays: 1, Status: Done},
	{Text: "Renew car insurance", DueDays: 14, Status: NotStarted},

	// Work
	{Text: "Draft Q3 planning doc", DueDays: 3, Status: InProgress},
	{Text: "Review Sam's pull request", DueDays: 1, Status: NotStarted},
	{Text: "Book flights for offsite", DueDays: 21, Status: NotStarted},

	// Home
	{Text: "Fix the leaky kitchen tap", DueDays: 7, Status: NotStarted},
	{Text: "Call the plumber <urgent>", DueDays: 0, Status: Done},
}

// SeedFixtures appends a set of realistic sample tasks through the normal
// Add path, then moves some of them along.
func SeedFixtures(s *Store, today time.Time) error {
	for _, f := range fixtures {
		due := today.AddDate(0, 0, f.DueDays).Format(DateLayout)
		if err := s.Add(f.Text, due, today); err != nil {
			return fmt.Errorf("adding fixture %q: %w", f.Text, err)
		}
		if f.Status != NotStarted {
			if err := s.SetStatus(s.Len()-1, f.Status); err != nil {
				return fmt.Errorf("setting fixture status %q: %w", f.Text, err)
			}
		}
	}
	return nil
}
