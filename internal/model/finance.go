package model

import "time"

// Wallet balances come from the server as-is; the only derived value the
// portal ever fills in is ActualCredit when the server omits it (see
// ActualCreditOrDerive).
type Wallet struct {
	ID             int    `json:"id"`
	CustomerID     int    `json:"customerId"`
	Balance        int64  `json:"balance"`
	ActualBalance  int64  `json:"actualBalance"`
	CreditCap      int64  `json:"creditCap"`
	ActualCredit   *int64 `json:"actualCredit,omitempty"`
	PendingChecks  int    `json:"pendingChecks"`
	PendingAmount  int64  `json:"pendingAmount"`
	Description    string `json:"description"`
}

// ActualCreditOrDerive returns the server-supplied actual credit, falling
// back to actualBalance - creditCap for display only.
func (w Wallet) ActualCreditOrDerive() int64 {
	if w.ActualCredit != nil {
		return *w.ActualCredit
	}
	return w.ActualBalance - w.CreditCap
}

type WalletTransaction struct {
	ID          int       `json:"id"`
	WalletID    int       `json:"walletId"`
	Amount      int64     `json:"amount"`
	Direction   string    `json:"direction"`
	Reference   string    `json:"reference"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

const (
	TxDirectionIn  = "IN"
	TxDirectionOut = "OUT"
)

type Payment struct {
	ID          int        `json:"id"`
	Code        string     `json:"code"`
	CustomerID  int        `json:"customerId"`
	Amount      int64      `json:"amount"`
	Method      string     `json:"method"`
	Date        time.Time  `json:"date"`
	ChequeDue   *time.Time `json:"chequeDue,omitempty"`
	Description string     `json:"description,omitempty"`
	Deleted     bool       `json:"deleted"`
}

const (
	PaymentMethodCash    = "CASH"
	PaymentMethodDeposit = "DEPOSIT_TO_ACCOUNT"
	PaymentMethodCheque  = "CHEQUE"
	PaymentMethodOnline  = "ONLINE"
	PaymentMethodCredit  = "CREDIT"
	PaymentMethodWallet  = "WALLET"
)

// PaymentMethods lists every accepted method, in display order.
var PaymentMethods = []string{
	PaymentMethodCash,
	PaymentMethodDeposit,
	PaymentMethodCheque,
	PaymentMethodOnline,
	PaymentMethodCredit,
	PaymentMethodWallet,
}

type Check struct {
	ID         int       `json:"id"`
	Number     string    `json:"number"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	IssuerBank string    `json:"issuerBank"`
	DestBank   string    `json:"destBank"`
	CustomerID *int      `json:"customerId,omitempty"`
	ImageID    *string   `json:"imageId,omitempty"`
	DueDate    time.Time `json:"dueDate"`
}

// Check custody states. Legal transitions are enforced server-side; the
// portal offers all five as a flat choice.
const (
	CheckStatusReceived    = "RECEIVED_BY_ACCOUNTING"
	CheckStatusProcurement = "DELIVERED_TO_PROCUREMENT"
	CheckStatusBank        = "DELIVERED_TO_BANK"
	CheckStatusCleared     = "CLEARED"
	CheckStatusReturned    = "RETURNED"
)

var CheckStatuses = []string{
	CheckStatusReceived,
	CheckStatusProcurement,
	CheckStatusBank,
	CheckStatusCleared,
	CheckStatusReturned,
}

const (
	GatewayZarinpal = "zarinpal"
	GatewayZibal    = "zibal"
)
