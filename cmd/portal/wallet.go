package main

import (
	"flag"
	"fmt"

	"github.com/omdehgostar/portal/internal/api"
	"github.com/omdehgostar/portal/internal/forms"
	"github.com/omdehgostar/portal/internal/jalali"
	"github.com/omdehgostar/portal/internal/labels"
	"github.com/omdehgostar/portal/internal/screens"
	"github.com/omdehgostar/portal/internal/session"
)

func (a *app) cmdWallet(args []string) error {
	fs := flag.NewFlagSet("wallet", flag.ContinueOnError)
	customer := fs.Int("customer", 0, "customer id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	screen := screens.NewWalletScreen(a.client, a.store)
	if err := screen.Load(a.ctx(), *customer); err != nil {
		return err
	}

	if screen.AfterTopup {
		fmt.Println("شارژ کیف پول نهایی شد؛ موجودی به‌روز است")
	}
	w := screen.Wallet
	kv(
		[2]string{"موجودی", labels.Rial(w.Balance)},
		[2]string{"موجودی واقعی", labels.Rial(w.ActualBalance)},
		[2]string{"سقف اعتبار", labels.Rial(w.CreditCap)},
		[2]string{"اعتبار واقعی", labels.Rial(w.ActualCreditOrDerive())},
		[2]string{"چک‌های در جریان", fmt.Sprintf("%d (%s)", w.PendingChecks, labels.Rial(w.PendingAmount))},
	)

	fmt.Println("\nگردش حساب:")
	rows := make([][]string, 0, len(screen.Transactions.Items))
	for _, tx := range screen.Transactions.Items {
		rows = append(rows, []string{
			jalali.FormatTime(tx.CreatedAt), tx.Direction, labels.Rial(tx.Amount), tx.Description,
		})
	}
	table([]string{"تاریخ", "جهت", "مبلغ", "شرح"}, rows)
	pageLine(screen.Transactions.Page, screen.Transactions.Pages(), screen.Transactions.Total)
	return nil
}

func (a *app) cmdCreditCap(args []string) error {
	fs := flag.NewFlagSet("credit-cap", flag.ContinueOnError)
	customer := fs.Int("customer", 0, "customer id")
	cap := fs.Int64("cap", 0, "credit cap in rial")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := &forms.CreditCapForm{CustomerID: *customer, Cap: *cap}
	return form.Submit(a.ctx(), a.client.Wallets, func() {
		fmt.Println("سقف اعتبار ثبت شد")
	})
}

func (a *app) cmdTopup(args []string) error {
	fs := flag.NewFlagSet("topup", flag.ContinueOnError)
	customer := fs.Int("customer", 0, "customer id")
	amount := fs.Int64("amount", 0, "amount in rial")
	gateway := fs.String("gateway", "zarinpal", "zarinpal or zibal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := &forms.TopupForm{CustomerID: *customer, Amount: *amount, Gateway: *gateway}
	if err := form.Submit(a.ctx(), a.client.Wallets, nil); err != nil {
		return err
	}

	fmt.Println("برای پرداخت این نشانی را باز کنید:")
	fmt.Println(form.Redirect.RedirectURL)
	fmt.Printf("پس از بازگشت: portal topup-verify -track %s ...\n", form.Redirect.TrackID)
	return nil
}

func (a *app) cmdTopupVerify(args []string) error {
	fs := flag.NewFlagSet("topup-verify", flag.ContinueOnError)
	success := fs.Bool("success", false, "gateway success flag")
	message := fs.String("message", "", "gateway message")
	ref := fs.String("ref", "", "gateway reference id")
	track := fs.String("track", "", "track id from topup")
	amount := fs.Int64("amount", 0, "amount in rial")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.client.Wallets.VerifyTopup(a.ctx(), api.TopupCallback{
		Success:     *success,
		Message:     *message,
		ReferenceID: *ref,
		TrackID:     *track,
		Amount:      *amount,
	})
	if err != nil {
		return err
	}

	if !result.Finalized {
		fmt.Println("پرداخت نهایی نشد")
		return nil
	}
	// signal the next wallet view that a refetch is due
	if err := a.store.SetFlag(session.FlagWalletRefresh); err != nil {
		return err
	}
	fmt.Printf("شارژ %s با کد پیگیری %s نهایی شد\n", labels.Rial(result.Amount), result.ReferenceID)
	return nil
}
