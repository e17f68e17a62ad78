package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if current, err := a.authService.Current(context.Background()); err == nil && current != nil {
		s = current.User.Name
		if current.Role != "" {
			s += " " + string(current.Role)
		}
	}
	if flagged, _ := a.suspended(); flagged {
		s += " [suspended]"
	}
	if a.inFlight.Load() > 0 {
		s += " …"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to Ledgerline CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
