package model

// Report payloads for the stats dashboard. Each maps to one /stats endpoint.

type SalesSummary struct {
	TotalAmount int64 `json:"totalAmount"`
	OrderCount  int   `json:"orderCount"`
	AvgOrder    int64 `json:"avgOrder"`
}

type StepCount struct {
	Step  string `json:"step"`
	Count int    `json:"count"`
}

type MethodTotal struct {
	Method string `json:"method"`
	Amount int64  `json:"amount"`
	Count  int    `json:"count"`
}

type CustomerTotal struct {
	CustomerID int    `json:"customerId"`
	Title      string `json:"title"`
	Amount     int64  `json:"amount"`
}

type WalletTotals struct {
	BalanceSum   int64 `json:"balanceSum"`
	CreditCapSum int64 `json:"creditCapSum"`
	NegativeCnt  int   `json:"negativeCount"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Amount int64  `json:"amount,omitempty"`
}

type TicketLoad struct {
	Open       int `json:"open"`
	Waiting    int `json:"waiting"`
	ClosedWeek int `json:"closedWeek"`
}

// Dashboard aggregates the seven reports; it is only ever populated whole.
type Dashboard struct {
	Sales          SalesSummary
	OrdersByStep   []StepCount
	PaymentsByMeth []MethodTotal
	TopCustomers   []CustomerTotal
	Wallets        WalletTotals
	ChecksByStatus []StatusCount
	Tickets        TicketLoad
}
