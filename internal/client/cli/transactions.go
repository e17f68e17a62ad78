package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ledgerline/ledgerline-cli/internal/client/models"
)

// Deposit prompts for an amount and submits it. Deposits remain allowed
// while the account is suspended.
func (a *App) Deposit(ctx context.Context) error {
	amount, err := GetAmount(a.reader, "Enter amount to deposit", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	tx, err := a.gateway.Deposit(ctx, amount)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Deposit accepted, reference %s\n", tx.ReferenceID)
	return nil
}

// Withdraw prompts for an amount and submits it. Refused client-side while
// the account is suspended.
func (a *App) Withdraw(ctx context.Context) error {
	if flagged, note := a.suspended(); flagged {
		fmt.Printf("Withdrawals are blocked: %s\n", note)
		return nil
	}

	amount, err := GetAmount(a.reader, "Enter amount to withdraw", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if _, err := a.gateway.Withdraw(ctx, amount); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Withdrawal successful.")
	return nil
}

// Transfer walks through the transfer form: amount, transfer type, and the
// recipient fields that type requires. Refused client-side while the account
// is suspended.
func (a *App) Transfer(ctx context.Context) error {
	if flagged, note := a.suspended(); flagged {
		fmt.Printf("Transfers are blocked: %s\n", note)
		return nil
	}

	amount, err := GetAmount(a.reader, "Enter amount to transfer", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	transferType, err := getSimpleText(a.reader, "Transfer type (LOCAL/INTL)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.TransferRequest{Amount: amount, TransferType: transferType}

	switch transferType {
	case models.TransferLocal:
		if req.RecipientEmail, err = getSimpleText(a.reader, "Recipient email", os.Stdout); err != nil {
			return err
		}
		if req.AccountNumber, err = getSimpleText(a.reader, "Recipient account number", os.Stdout); err != nil {
			return err
		}
		if req.BankName, err = getSimpleText(a.reader, "Recipient bank name", os.Stdout); err != nil {
			return err
		}
	case models.TransferIntl:
		if req.RecipientName, err = getSimpleText(a.reader, "Recipient name", os.Stdout); err != nil {
			return err
		}
		if req.IBAN, err = getSimpleText(a.reader, "IBAN", os.Stdout); err != nil {
			return err
		}
		if req.SwiftCode, err = getSimpleText(a.reader, "SWIFT code", os.Stdout); err != nil {
			return err
		}
		if req.BankName, err = getSimpleText(a.reader, "Recipient bank name", os.Stdout); err != nil {
			return err
		}
	default:
		fmt.Println("Unknown transfer type:", transferType)
		return nil
	}

	tx, err := a.gateway.Transfer(ctx, req)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Transfer submitted, reference %s\n", tx.ReferenceID)
	return nil
}
