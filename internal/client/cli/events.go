package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"teamcal/internal/client/api"
)

// eventTimeFormat is the input format for event times in the CLI.
const eventTimeFormat = "2006-01-02 15:04"

func (a *App) promptEvent(defaults api.EventRequest) (api.EventRequest, error) {
	req := defaults

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return req, err
	}
	if title != "" {
		req.Title = title
	}

	description, err := getSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return req, err
	}
	if description != "" {
		req.Description = description
	}

	startText, err := getSimpleText(a.reader, "Enter start (yyyy-mm-dd hh:mm)", os.Stdout)
	if err != nil {
		return req, err
	}
	if startText != "" {
		if req.Start, err = time.Parse(eventTimeFormat, startText); err != nil {
			return req, fmt.Errorf("bad start time: %w", err)
		}
	}

	endText, err := getSimpleText(a.reader, "Enter end (yyyy-mm-dd hh:mm)", os.Stdout)
	if err != nil {
		return req, err
	}
	if endText != "" {
		if req.End, err = time.Parse(eventTimeFormat, endText); err != nil {
			return req, fmt.Errorf("bad end time: %w", err)
		}
	}

	color, err := getSimpleText(a.reader, "Enter color (e.g. #336699)", os.Stdout)
	if err != nil {
		return req, err
	}
	if color != "" {
		req.Color = color
	}

	return req, nil
}

// ListEvents prints the mirrored events ordered by start time.
func (a *App) ListEvents(ctx context.Context) error {
	events, err := a.store.Events(ctx)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Println("No events.")
		return nil
	}
	for _, e := range events {
		fmt.Printf("%s  %s - %s  %-25s by %s\n",
			e.ID, e.Start.Format(eventTimeFormat), e.End.Format("15:04"), e.Title, e.CreatedBy)
	}
	return nil
}

// AddEvent prompts for event fields and submits a create.
func (a *App) AddEvent(ctx context.Context) error {
	req, err := a.promptEvent(api.EventRequest{})
	if err != nil {
		return err
	}

	created, err := a.store.CreateEvent(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("Created event %s\n", created.ID)
	return nil
}

// EditEvent prompts for an id and replacement fields. Empty answers keep
// the current values.
func (a *App) EditEvent(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter event id", os.Stdout)
	if err != nil {
		return err
	}

	events, err := a.store.Events(ctx)
	if err != nil {
		return err
	}

	defaults := api.EventRequest{}
	for _, e := range events {
		if e.ID == id {
			defaults = api.EventRequest{
				Title:       e.Title,
				Description: e.Description,
				Start:       e.Start,
				End:         e.End,
				Color:       e.Color,
			}
			break
		}
	}

	req, err := a.promptEvent(defaults)
	if err != nil {
		return err
	}

	if _, err := a.store.UpdateEvent(ctx, id, req); err != nil {
		return err
	}

	fmt.Println("Updated.")
	return nil
}

// DeleteEvent prompts for an id and deletes the event.
func (a *App) DeleteEvent(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter event id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.DeleteEvent(ctx, id); err != nil {
		return err
	}

	fmt.Println("Deleted.")
	return nil
}
