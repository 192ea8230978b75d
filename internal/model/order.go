package model

import "time"

type Order struct {
	ID             int         `json:"id"`
	Code           string      `json:"code"`
	CustomerID     int         `json:"customerId"`
	Step           string      `json:"step"`
	PaymentStatus  string      `json:"paymentStatus"`
	DeliveryMethod string      `json:"deliveryMethod"`
	DeliveryDate   time.Time   `json:"deliveryDate"`
	Basket         []OrderLine `json:"basket"`
	FailedLines    []OrderLine `json:"failedLines,omitempty"`
}

type OrderLine struct {
	ProductID       int     `json:"productId"`
	ProductTitle    string  `json:"productTitle"`
	RequestedWeight float64 `json:"requestedWeight"`
	FulfilledWeight float64 `json:"fulfilledWeight"`
	Price           int64   `json:"price"`
}

// Order pipeline positions, seller intake through delivery.
const (
	OrderStepSeller       = "SELLER"
	OrderStepSalesManager = "SALES_MANAGER"
	OrderStepProcessing   = "PROCESSING"
	OrderStepInventory    = "INVENTORY"
	OrderStepAccounting   = "ACCOUNTING"
	OrderStepCargo        = "CARGO"
	OrderStepDelivered    = "DELIVERED"
	OrderStepReturned     = "RETURNED"
)

var OrderSteps = []string{
	OrderStepSeller,
	OrderStepSalesManager,
	OrderStepProcessing,
	OrderStepInventory,
	OrderStepAccounting,
	OrderStepCargo,
	OrderStepDelivered,
	OrderStepReturned,
}

const (
	OrderPaymentUnpaid  = "UNPAID"
	OrderPaymentPartial = "PARTIAL"
	OrderPaymentPaid    = "PAID"
)

// Cargo is a dispatch unit carrying fulfilled goods for one or more orders.
type Cargo struct {
	ID       int       `json:"id"`
	Code     string    `json:"code"`
	Driver   string    `json:"driver"`
	Plate    string    `json:"plate"`
	OrderIDs []int     `json:"orderIds"`
	SentAt   time.Time `json:"sentAt"`
}

// CustomerRequest is a pre-order expression of interest.
type CustomerRequest struct {
	ID       int           `json:"id"`
	Code     string        `json:"code"`
	Status   string        `json:"status"`
	Items    []RequestItem `json:"items"`
	OrderIDs []int         `json:"orderIds,omitempty"`
}

type RequestItem struct {
	ProductID int     `json:"productId"`
	Title     string  `json:"title"`
	Weight    float64 `json:"weight"`
}

const (
	RequestStatusPending   = "PENDING"
	RequestStatusApproved  = "APPROVED"
	RequestStatusRejected  = "REJECTED"
	RequestStatusConverted = "CONVERTED_TO_ORDER"
)

type CartItem struct {
	ProductID int     `json:"productId"`
	Title     string  `json:"title"`
	Weight    float64 `json:"weight"`
	UnitPrice int64   `json:"unitPrice"`
}

type Cart struct {
	Items []CartItem `json:"items"`
	Total int64      `json:"total"`
}

type Product struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	CategoryID int    `json:"categoryId"`
	UnitPrice  int64  `json:"unitPrice"`
	Available  bool   `json:"available"`
}

type Category struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}
