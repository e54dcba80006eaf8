package cli

import (
	"context"
	"fmt"
	"os"
)

// ListHolidays prints the mirrored holidays.
func (a *App) ListHolidays(ctx context.Context) error {
	holidays, err := a.store.Holidays(ctx)
	if err != nil {
		return err
	}

	if len(holidays) == 0 {
		fmt.Println("No holidays.")
		return nil
	}
	for _, h := range holidays {
		// The stored year is a placeholder; show month and day only.
		md := h.Date
		if len(md) > 5 {
			md = md[5:]
		}
		fmt.Printf("%s  %s  %s\n", h.ID, md, h.Name)
	}
	return nil
}

// AddHoliday prompts for a name and date and submits a create.
func (a *App) AddHoliday(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter holiday name", os.Stdout)
	if err != nil {
		return err
	}

	date, err := getSimpleText(a.reader, "Enter date (yyyy-mm-dd, year is ignored)", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.store.CreateHoliday(ctx, name, date)
	if err != nil {
		return err
	}

	fmt.Printf("Created holiday %s\n", created.ID)
	return nil
}

// DeleteHoliday prompts for an id and deletes the holiday.
func (a *App) DeleteHoliday(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter holiday id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.DeleteHoliday(ctx, id); err != nil {
		return err
	}

	fmt.Println("Deleted.")
	return nil
}
