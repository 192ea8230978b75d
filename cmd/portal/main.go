package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/omdehgostar/portal/internal/api"
	"github.com/omdehgostar/portal/internal/config"
	"github.com/omdehgostar/portal/internal/forms"
	"github.com/omdehgostar/portal/internal/labels"
	"github.com/omdehgostar/portal/internal/logger"
	"github.com/omdehgostar/portal/internal/session"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		msg := forms.Localize(err)
		fmt.Fprintln(os.Stderr, msg)
		if msg == labels.MsgGenericError {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

type app struct {
	cfg    *config.Config
	store  *session.FileStore
	client *api.Client
	zaplog *zap.Logger
	stdin  *bufio.Reader
}

type command struct {
	name string
	help string
	fn   func(a *app, args []string) error
}

var commands = []command{
	{"login", "sign in with phone and password", (*app).cmdLogin},
	{"logout", "revoke the session", (*app).cmdLogout},
	{"whoami", "show the signed-in identity", (*app).cmdWhoami},
	{"customers", "list customers", (*app).cmdCustomers},
	{"customer", "customer details with wallet and payments", (*app).cmdCustomer},
	{"customer-lock", "lock or unlock a customer", (*app).cmdCustomerLock},
	{"orders", "list orders", (*app).cmdOrders},
	{"order", "order details with cargoes", (*app).cmdOrder},
	{"order-step", "move an order along the pipeline", (*app).cmdOrderStep},
	{"payments", "list payments of a customer", (*app).cmdPayments},
	{"pay", "register a payment", (*app).cmdPay},
	{"pay-delete", "soft-delete a payment", (*app).cmdPayDelete},
	{"wallet", "wallet details and transactions", (*app).cmdWallet},
	{"credit-cap", "set a wallet credit cap", (*app).cmdCreditCap},
	{"topup", "start a gateway top-up", (*app).cmdTopup},
	{"topup-verify", "finalize a gateway callback", (*app).cmdTopupVerify},
	{"checks", "list checks", (*app).cmdChecks},
	{"check", "check details", (*app).cmdCheck},
	{"check-status", "change a check's custody status", (*app).cmdCheckStatus},
	{"check-delete", "delete a check", (*app).cmdCheckDelete},
	{"requests", "list customer requests", (*app).cmdRequests},
	{"request-decide", "approve or reject a request", (*app).cmdRequestDecide},
	{"request-convert", "convert an approved request to orders", (*app).cmdRequestConvert},
	{"tickets", "list support tickets", (*app).cmdTickets},
	{"ticket", "ticket thread", (*app).cmdTicket},
	{"ticket-new", "open a ticket, optionally with attachments", (*app).cmdTicketNew},
	{"ticket-reply", "reply to a ticket", (*app).cmdTicketReply},
	{"stats", "the seven-report dashboard", (*app).cmdStats},
	{"catalog", "browse the public catalogue", (*app).cmdCatalog},
	{"cart", "show the cart", (*app).cmdCart},
	{"cart-add", "add a product to the cart", (*app).cmdCartAdd},
	{"cart-remove", "remove a product from the cart", (*app).cmdCartRemove},
	{"cart-checkout", "turn the cart into a request", (*app).cmdCartCheckout},
}

func run(args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage()
		return nil
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	zaplog, err := logger.NewZapLog(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer zaplog.Sync()

	sessionPath := cfg.SessionPath
	if sessionPath == "" {
		sessionPath, err = session.DefaultPath()
		if err != nil {
			return err
		}
	}
	store, err := session.NewFileStore(sessionPath)
	if err != nil {
		return err
	}

	a := &app{
		cfg:    cfg,
		store:  store,
		zaplog: zaplog,
		stdin:  bufio.NewReader(os.Stdin),
	}
	a.client = api.New(api.Config{
		BaseURL:     cfg.BaseURL,
		FileBaseURL: cfg.FileBaseURL,
		Version:     cfg.Version,
		Branch:      cfg.Branch,
		IPEchoURL:   cfg.IPEchoURL,
		Timeout:     cfg.Timeout,
	}, store, zaplog, api.WithSessionExpired(func() {
		fmt.Fprintln(os.Stderr, labels.MsgSessionExpired)
		fmt.Fprintln(os.Stderr, "portal login -phone ... -password ...")
	}))

	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.fn(a, args[1:])
		}
	}
	usage()
	return fmt.Errorf("unknown command %q", args[0])
}

func usage() {
	fmt.Println("usage: portal <command> [flags]")
	fmt.Println()
	sorted := make([]command, len(commands))
	copy(sorted, commands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })
	for _, cmd := range sorted {
		fmt.Printf("  %-16s %s\n", cmd.name, cmd.help)
	}
}

func (a *app) ctx() context.Context {
	return context.Background()
}

// confirm guards destructive actions behind a y/N prompt.
func (a *app) confirm(prompt string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s [y/N] ", prompt)
	line, err := a.stdin.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
