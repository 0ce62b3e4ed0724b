package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"time"
)

// nowFn is a test seam for the session-expiry check in the prompt.
var nowFn = time.Now

func (a *App) getStatus() string {
	ctx := context.Background()
	if !a.authService.IsAuthenticated(ctx) {
		return ""
	}
	s := "signed in"
	if email, ok := a.authService.CurrentUser(ctx); ok {
		s = email
	}
	if exp, ok := a.authService.SessionExpiry(ctx); ok {
		if exp.Before(nowFn()) {
			s += ", session expired"
		} else {
			s += fmt.Sprintf(", until %s", exp.Local().Format("15:04"))
		}
	}
	return fmt.Sprintf("(%s)", s)
}

// Root runs the interactive loop on stdin until the user exits.
func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to the fashion dashboard CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if !a.isLoggedIn() {
		a.Login(ctx)
	}

	runREPL(ctx, a, a.getStatus, scanner)
}
