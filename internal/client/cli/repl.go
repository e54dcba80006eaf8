package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	Month(ctx context.Context, arg string) error
	ListEvents(ctx context.Context) error
	AddEvent(ctx context.Context) error
	EditEvent(ctx context.Context) error
	DeleteEvent(ctx context.Context) error
	ListUsers(ctx context.Context) error
	AddUser(ctx context.Context) error
	GrantAdmin(ctx context.Context, targetID string) error
	RevokeAdmin(ctx context.Context, targetID string) error
	DeleteUser(ctx context.Context, targetID string) error
	ListHolidays(ctx context.Context) error
	AddHoliday(ctx context.Context) error
	DeleteHoliday(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the calendar CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help            — show available commands
//	  - login           — authenticate
//	  - exit | quit     — leave the program
//
//	Logged in:
//	  - help            — show available commands
//	  - month [yyyy-mm] — show a month view with events and holidays
//	  - events          — list events
//	  - addevent        — add an event
//	  - editevent       — edit an event
//	  - delevent        — delete an event
//	  - users           — list users
//	  - adduser         — create a user (admin)
//	  - grant <id>      — grant admin rights (super-user)
//	  - revoke <id>     — revoke admin rights (super-user)
//	  - deluser <id>    — delete a user and their events (super-user)
//	  - holidays        — list holidays
//	  - addholiday      — add a holiday (admin)
//	  - delholiday      — delete a holiday (admin)
//	  - refresh         — re-pull everything from the server
//	  - logout          — log out and drop local state
//	  - exit | quit     — leave the program
//
// Errors returned by command handlers are printed and the loop continues;
// no command failure ever terminates the REPL.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	report := func(err error) {
		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}

	for {
		printlnFn(fmt.Sprintf("cal> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: month, events, addevent, editevent, delevent, users, adduser, grant, revoke, deluser, holidays, addholiday, delholiday, refresh, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "refresh":
			report(a.Refresh(ctx))

		case "m", "month":
			report(a.Month(ctx, arg))

		case "events":
			report(a.ListEvents(ctx))

		case "addevent":
			report(a.AddEvent(ctx))

		case "editevent":
			report(a.EditEvent(ctx))

		case "delevent":
			report(a.DeleteEvent(ctx))

		case "users":
			report(a.ListUsers(ctx))

		case "adduser":
			report(a.AddUser(ctx))

		case "grant":
			if arg == "" {
				printlnFn("Usage: grant <user id>")
				continue
			}
			report(a.GrantAdmin(ctx, arg))

		case "revoke":
			if arg == "" {
				printlnFn("Usage: revoke <user id>")
				continue
			}
			report(a.RevokeAdmin(ctx, arg))

		case "deluser":
			if arg == "" {
				printlnFn("Usage: deluser <user id>")
				continue
			}
			report(a.DeleteUser(ctx, arg))

		case "holidays":
			report(a.ListHolidays(ctx))

		case "addholiday":
			report(a.AddHoliday(ctx))

		case "delholiday":
			report(a.DeleteHoliday(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
