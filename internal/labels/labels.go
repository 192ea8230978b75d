// Package labels maps enum values to Persian display strings. Unknown
// values fall back to the raw value so a new server-side enum member never
// renders as an empty cell.
package labels

import (
	"strconv"

	"github.com/omdehgostar/portal/internal/model"
)

var paymentMethods = map[string]string{
	model.PaymentMethodCash:    "نقدی",
	model.PaymentMethodDeposit: "واریز به حساب",
	model.PaymentMethodCheque:  "چک",
	model.PaymentMethodOnline:  "پرداخت آنلاین",
	model.PaymentMethodCredit:  "اعتباری",
	model.PaymentMethodWallet:  "کیف پول",
}

var checkStatuses = map[string]string{
	model.CheckStatusReceived:    "دریافت توسط حسابداری",
	model.CheckStatusProcurement: "تحویل به تدارکات",
	model.CheckStatusBank:        "تحویل به بانک",
	model.CheckStatusCleared:     "وصول شده",
	model.CheckStatusReturned:    "برگشت خورده",
}

var orderSteps = map[string]string{
	model.OrderStepSeller:       "فروشنده",
	model.OrderStepSalesManager: "مدیر فروش",
	model.OrderStepProcessing:   "در حال پردازش",
	model.OrderStepInventory:    "انبار",
	model.OrderStepAccounting:   "حسابداری",
	model.OrderStepCargo:        "ارسال بار",
	model.OrderStepDelivered:    "تحویل شده",
	model.OrderStepReturned:     "مرجوع شده",
}

var ticketStatuses = map[string]string{
	model.TicketStatusOpen:           "باز",
	model.TicketStatusWaitingCust:    "در انتظار مشتری",
	model.TicketStatusWaitingSupport: "در انتظار پشتیبانی",
	model.TicketStatusClosed:         "بسته شده",
	model.TicketStatusResolved:       "حل شده",
	model.TicketStatusReopened:       "باز شده مجدد",
}

var ticketPriorities = map[string]string{
	model.TicketPriorityLow:    "کم",
	model.TicketPriorityNormal: "عادی",
	model.TicketPriorityHigh:   "زیاد",
	model.TicketPriorityUrgent: "فوری",
}

var requestStatuses = map[string]string{
	model.RequestStatusPending:   "در انتظار بررسی",
	model.RequestStatusApproved:  "تأیید شده",
	model.RequestStatusRejected:  "رد شده",
	model.RequestStatusConverted: "تبدیل به سفارش",
}

var customerTypes = map[string]string{
	model.CustomerTypePersonal:  "حقیقی",
	model.CustomerTypeCorporate: "حقوقی",
}

// Fallback messages shown when the server supplies none.
const (
	MsgGenericError     = "خطایی رخ داد. دوباره تلاش کنید"
	MsgPermissionDenied = "شما دسترسی لازم برای این عملیات را ندارید"
	MsgSessionExpired   = "نشست شما منقضی شده است. دوباره وارد شوید"
)

func lookup(dict map[string]string, value string) string {
	if label, ok := dict[value]; ok {
		return label
	}
	return value
}

func PaymentMethod(v string) string  { return lookup(paymentMethods, v) }
func CheckStatus(v string) string    { return lookup(checkStatuses, v) }
func OrderStep(v string) string      { return lookup(orderSteps, v) }
func TicketStatus(v string) string   { return lookup(ticketStatuses, v) }
func TicketPriority(v string) string { return lookup(ticketPriorities, v) }
func RequestStatus(v string) string  { return lookup(requestStatuses, v) }
func CustomerType(v string) string   { return lookup(customerTypes, v) }

// Rial renders an amount with thousand separators and the currency unit.
func Rial(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	raw := strconv.FormatInt(amount, 10)

	var grouped []byte
	for i, digit := range []byte(raw) {
		if i > 0 && (len(raw)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, digit)
	}
	return sign + string(grouped) + " ریال"
}
