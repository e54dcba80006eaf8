package cli

import (
	"context"
	"fmt"
	"time"
)

// Month prints a day-by-day view of one month, with holidays matched by
// month and day regardless of their stored year. arg is "yyyy-mm"; empty
// means the current month.
func (a *App) Month(ctx context.Context, arg string) error {
	var first time.Time
	if arg == "" {
		now := time.Now()
		first = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	} else {
		parsed, err := time.Parse("2006-01", arg)
		if err != nil {
			return fmt.Errorf("bad month (want yyyy-mm): %w", err)
		}
		first = parsed
	}

	events, err := a.store.Events(ctx)
	if err != nil {
		return err
	}
	holidays, err := a.store.Holidays(ctx)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("%s %d", first.Month(), first.Year()))

	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		var lines []string

		for _, h := range holidays {
			if h.Matches(day) {
				lines = append(lines, fmt.Sprintf("* %s", h.Name))
			}
		}

		for _, e := range events {
			if e.Start.Year() == day.Year() && e.Start.YearDay() == day.YearDay() {
				lines = append(lines, fmt.Sprintf("%s-%s %s (%s)",
					e.Start.Format("15:04"), e.End.Format("15:04"), e.Title, e.CreatedBy))
			}
		}

		if len(lines) == 0 {
			continue
		}

		printlnFn(fmt.Sprintf("%s %s", day.Format("2006-01-02"), day.Weekday()))
		for _, l := range lines {
			printlnFn("    " + l)
		}
	}

	return nil
}
