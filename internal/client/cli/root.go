package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	if a.userID != "" {
		return fmt.Sprintf("(%s)", a.userID)
	}
	return "(not logged in)"
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the team calendar CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if err := a.Login(ctx); err != nil {
		printlnFn("Error:", err.Error())
	}

	runREPL(ctx, a, a.getStatus, scanner)
}
