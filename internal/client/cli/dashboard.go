package cli

import (
	"context"
	"fmt"
	"log"
)

// Dashboard fetches and prints the account summary and recent transactions.
// Read-only: available even while the account is suspended.
func (a *App) Dashboard(ctx context.Context) error {
	snap, err := a.gateway.Dashboard(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	// Every snapshot reports the current suspension state; an active account
	// means an earlier suspension has been lifted.
	if snap.Account == nil || !snap.Account.Suspended {
		a.clearSuspended()
	}

	fmt.Printf("Welcome back, %s <%s>\n", snap.User.Name, snap.User.Email)

	if snap.Account != nil {
		fmt.Printf("Account %s, balance %.2f\n", snap.Account.AccountNumber, snap.Account.Balance)
	} else {
		fmt.Println("No account has been provisioned yet.")
	}

	if len(snap.Transactions) == 0 {
		fmt.Println("No transactions.")
		return nil
	}

	fmt.Println("Recent transactions:")
	for _, tx := range snap.Transactions {
		fmt.Printf("  %s  %-10s %10.2f  %s\n", tx.CreatedAt.Local().Format("2006-01-02 15:04"), tx.Type, tx.Amount, tx.Status)
	}
	return nil
}
