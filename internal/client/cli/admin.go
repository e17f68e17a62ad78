package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ledgerline/ledgerline-cli/internal/client/models"
)

// Users lists all users with their account state. ADMIN only; the server
// enforces the role, this is just the entry point.
func (a *App) Users(ctx context.Context) error {
	users, err := a.gateway.ListUsers(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, u := range users {
		status := "active"
		if u.Suspended {
			status = "suspended"
		}
		fmt.Printf("%-24s %-28s %-8s %-12s %10.2f  %s\n", u.Name, u.Email, u.Role, u.AccountNumber, u.Balance, status)
	}
	return nil
}

// EditUser updates a user's profile fields. Blank input keeps the current
// value.
func (a *App) EditUser(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "User id", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "New name (blank to keep)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email (blank to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" && email == "" {
		fmt.Println("Nothing to change.")
		return nil
	}

	user, err := a.gateway.UpdateUser(ctx, id, models.UpdateUserRequest{Name: name, Email: email})
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("User updated: %s <%s>\n", user.Name, user.Email)
	return nil
}

// RemoveUser deletes a user after an explicit confirmation.
func (a *App) RemoveUser(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "User id", os.Stdout)
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, "Delete this user? (yes/no)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := a.gateway.DeleteUser(ctx, id); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("User deleted.")
	return nil
}

// SetRole changes a user's access level.
func (a *App) SetRole(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "User id", os.Stdout)
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, "New role (CUSTOMER/ADMIN)", os.Stdout)
	if err != nil {
		return err
	}

	role := models.Role(strings.ToUpper(strings.TrimSpace(answer)))
	if role != models.RoleCustomer && role != models.RoleAdmin {
		fmt.Println("Unknown role:", answer)
		return nil
	}

	user, err := a.gateway.SetUserRole(ctx, id, role)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("User %s is now %s.\n", user.Email, user.Role)
	return nil
}

// Transactions lists all transactions across accounts.
func (a *App) Transactions(ctx context.Context) error {
	txs, err := a.gateway.ListTransactions(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if len(txs) == 0 {
		fmt.Println("No transactions.")
		return nil
	}
	for _, tx := range txs {
		fmt.Printf("%-36s %s  %-10s %10.2f  %s\n", tx.ID, tx.CreatedAt.Local().Format("2006-01-02 15:04"), tx.Type, tx.Amount, tx.Status)
	}
	return nil
}

// Credit adds funds to a customer account by account number.
func (a *App) Credit(ctx context.Context) error {
	accountNumber, err := getSimpleText(a.reader, "Account number to credit", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := GetAmount(a.reader, "Enter amount", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	message, err := a.gateway.CreditAccount(ctx, accountNumber, amount)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println(message)
	return nil
}

// Suspend toggles a user's suspension flag.
func (a *App) Suspend(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "User id", os.Stdout)
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, "Suspend? (true/false)", os.Stdout)
	if err != nil {
		return err
	}
	suspend, err := strconv.ParseBool(strings.TrimSpace(answer))
	if err != nil {
		fmt.Println("Expected true or false.")
		return nil
	}

	user, err := a.gateway.SuspendUser(ctx, id, suspend)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if user.Suspended {
		fmt.Printf("User %s suspended.\n", user.Email)
	} else {
		fmt.Printf("User %s reactivated.\n", user.Email)
	}
	return nil
}
