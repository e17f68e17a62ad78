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
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Deposit(ctx context.Context) error
	Withdraw(ctx context.Context) error
	Transfer(ctx context.Context) error
	Users(ctx context.Context) error
	EditUser(ctx context.Context) error
	RemoveUser(ctx context.Context) error
	SetRole(ctx context.Context) error
	Transactions(ctx context.Context) error
	Credit(ctx context.Context) error
	Suspend(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Ledgerline CLI.
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
//	  - help           - show available commands
//	  - register       - create an account
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - help           - show available commands
//	  - dashboard      - account summary and recent transactions
//	  - deposit        - deposit funds
//	  - withdraw       - withdraw funds
//	  - transfer       - transfer funds to another account
//	  - logout         - log out
//	  - exit | quit    - leave the program
//
//	Logged in as ADMIN, additionally:
//	  - users          - list users and accounts
//	  - edituser       - update a user's profile
//	  - rmuser         - delete a user
//	  - role           - change a user's access level
//	  - transactions   - list all transactions
//	  - credit         - credit a customer account
//	  - suspend        - suspend or reactivate a user
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("llc> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				if a.isAdmin() {
					printlnFn("Available commands: (d)ashboard, deposit, withdraw, transfer, users, edituser, rmuser, role, transactions, credit, suspend, logout, exit")
				} else {
					printlnFn("Available commands: (d)ashboard, deposit, withdraw, transfer, logout, exit")
				}
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "deposit":
			_ = a.Deposit(ctx)

		case "withdraw":
			_ = a.Withdraw(ctx)

		case "transfer":
			_ = a.Transfer(ctx)

		case "users":
			_ = a.Users(ctx)

		case "edituser":
			_ = a.EditUser(ctx)

		case "rmuser":
			_ = a.RemoveUser(ctx)

		case "role":
			_ = a.SetRole(ctx)

		case "transactions", "tx":
			_ = a.Transactions(ctx)

		case "credit":
			_ = a.Credit(ctx)

		case "suspend":
			_ = a.Suspend(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
