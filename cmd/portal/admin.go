package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/omdehgostar/portal/internal/api"
	"github.com/omdehgostar/portal/internal/forms"
	"github.com/omdehgostar/portal/internal/jalali"
	"github.com/omdehgostar/portal/internal/labels"
	"github.com/omdehgostar/portal/internal/model"
	"github.com/omdehgostar/portal/internal/screens"
)

func (a *app) cmdCustomers(args []string) error {
	fs := flag.NewFlagSet("customers", flag.ContinueOnError)
	page := fs.Int("page", 1, "page number")
	search := fs.String("search", "", "search text")
	ctype := fs.String("type", "", "PERSONAL or CORPORATE")
	category := fs.String("category", "", "business category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := api.CustomerFilter{Search: *search, Type: *ctype, Category: *category}
	pager := screens.NewPager(func(ctx context.Context, page int) (api.List[model.Customer], error) {
		return a.client.Customers.List(ctx, filter, page)
	})
	if err := pager.Load(a.ctx(), *page); err != nil {
		return err
	}

	rows := make([][]string, 0, len(pager.Items))
	for _, c := range pager.Items {
		rows = append(rows, []string{
			strconv.Itoa(c.ID), c.Code, c.Title,
			labels.CustomerType(c.Type), c.Phone, yesNo(c.Locked),
		})
	}
	table([]string{"ID", "کد", "عنوان", "نوع", "تلفن", "قفل"}, rows)
	pageLine(pager.Page, pager.Pages(), pager.Total)
	return nil
}

func (a *app) cmdCustomer(args []string) error {
	fs := flag.NewFlagSet("customer", flag.ContinueOnError)
	id := fs.Int("id", 0, "customer id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	screen := screens.NewCustomerScreen(a.client)
	if err := screen.Load(a.ctx(), *id); err != nil {
		return err
	}

	c := screen.Customer
	kv(
		[2]string{"عنوان", c.Title},
		[2]string{"کد", c.Code},
		[2]string{"نوع", labels.CustomerType(c.Type)},
		[2]string{"تلفن", c.Phone},
		[2]string{"آدرس", c.Address},
		[2]string{"موجودی", labels.Rial(screen.Wallet.Balance)},
		[2]string{"موجودی واقعی", labels.Rial(screen.Wallet.ActualBalance)},
		[2]string{"اعتبار واقعی", labels.Rial(screen.Wallet.ActualCreditOrDerive())},
	)

	fmt.Println("\nپرداخت‌های اخیر:")
	rows := make([][]string, 0, len(screen.Payments.Items))
	for _, p := range screen.Payments.Items {
		rows = append(rows, []string{
			p.Code, labels.Rial(p.Amount), labels.PaymentMethod(p.Method), jalali.Format(p.Date),
		})
	}
	table([]string{"کد", "مبلغ", "روش", "تاریخ"}, rows)
	return nil
}

func (a *app) cmdCustomerLock(args []string) error {
	fs := flag.NewFlagSet("customer-lock", flag.ContinueOnError)
	id := fs.Int("id", 0, "customer id")
	unlock := fs.Bool("unlock", false, "unlock instead of lock")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.client.Customers.SetLock(a.ctx(), *id, !*unlock); err != nil {
		return err
	}
	fmt.Println("انجام شد")
	return nil
}

func (a *app) cmdOrders(args []string) error {
	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	page := fs.Int("page", 1, "page number")
	customer := fs.Int("customer", 0, "filter by customer id")
	step := fs.String("step", "", "filter by pipeline step")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := api.OrderFilter{CustomerID: *customer, Step: *step}
	pager := screens.NewPager(func(ctx context.Context, page int) (api.List[model.Order], error) {
		return a.client.Orders.List(ctx, filter, page)
	})
	if err := pager.Load(a.ctx(), *page); err != nil {
		return err
	}

	rows := make([][]string, 0, len(pager.Items))
	for _, o := range pager.Items {
		rows = append(rows, []string{
			strconv.Itoa(o.ID), o.Code, labels.OrderStep(o.Step),
			o.PaymentStatus, jalali.Format(o.DeliveryDate),
		})
	}
	table([]string{"ID", "کد", "مرحله", "پرداخت", "تاریخ تحویل"}, rows)
	pageLine(pager.Page, pager.Pages(), pager.Total)
	return nil
}

func (a *app) cmdOrder(args []string) error {
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	id := fs.Int("id", 0, "order id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	order, err := a.client.Orders.Get(a.ctx(), *id)
	if err != nil {
		return err
	}
	kv(
		[2]string{"کد", order.Code},
		[2]string{"مرحله", labels.OrderStep(order.Step)},
		[2]string{"پرداخت", order.PaymentStatus},
		[2]string{"روش تحویل", order.DeliveryMethod},
	)

	rows := make([][]string, 0, len(order.Basket))
	for _, line := range order.Basket {
		rows = append(rows, []string{
			line.ProductTitle,
			fmt.Sprintf("%.1f", line.RequestedWeight),
			fmt.Sprintf("%.1f", line.FulfilledWeight),
			labels.Rial(line.Price),
		})
	}
	fmt.Println("\nاقلام:")
	table([]string{"کالا", "درخواستی", "تأمین‌شده", "قیمت"}, rows)

	cargoes, err := a.client.Orders.Cargoes(a.ctx(), *id)
	if err != nil {
		return err
	}
	if len(cargoes) > 0 {
		fmt.Println("\nبارها:")
		cargoRows := make([][]string, 0, len(cargoes))
		for _, cargo := range cargoes {
			cargoRows = append(cargoRows, []string{cargo.Code, cargo.Driver, cargo.Plate, jalali.FormatTime(cargo.SentAt)})
		}
		table([]string{"کد", "راننده", "پلاک", "ارسال"}, cargoRows)
	}
	return nil
}

func (a *app) cmdOrderStep(args []string) error {
	fs := flag.NewFlagSet("order-step", flag.ContinueOnError)
	id := fs.Int("id", 0, "order id")
	step := fs.String("step", "", "new pipeline step")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.client.Orders.SetStep(a.ctx(), *id, *step); err != nil {
		return err
	}
	fmt.Println("انجام شد")
	return nil
}

func (a *app) cmdPayments(args []string) error {
	fs := flag.NewFlagSet("payments", flag.ContinueOnError)
	customer := fs.Int("customer", 0, "customer id")
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pager := screens.NewPager(func(ctx context.Context, page int) (api.List[model.Payment], error) {
		return a.client.Payments.List(ctx, *customer, page)
	})
	if err := pager.Load(a.ctx(), *page); err != nil {
		return err
	}

	rows := make([][]string, 0, len(pager.Items))
	for _, p := range pager.Items {
		rows = append(rows, []string{
			strconv.Itoa(p.ID), p.Code, labels.Rial(p.Amount),
			labels.PaymentMethod(p.Method), jalali.Format(p.Date), yesNo(p.Deleted),
		})
	}
	table([]string{"ID", "کد", "مبلغ", "روش", "تاریخ", "حذف‌شده"}, rows)
	pageLine(pager.Page, pager.Pages(), pager.Total)
	return nil
}

func (a *app) cmdPay(args []string) error {
	fs := flag.NewFlagSet("pay", flag.ContinueOnError)
	customer := fs.Int("customer", 0, "customer id")
	amount := fs.Int64("amount", 0, "amount in rial")
	method := fs.String("method", model.PaymentMethodCash, "payment method")
	date := fs.String("date", "", "payment date, e.g. 1403/05/01")
	due := fs.String("due", "", "cheque due date")
	desc := fs.String("desc", "", "description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := &forms.PaymentForm{
		CustomerID:  *customer,
		Amount:      *amount,
		Method:      *method,
		Date:        *date,
		ChequeDue:   *due,
		Description: *desc,
	}
	if err := form.Submit(a.ctx(), a.client.Payments, func() {
		fmt.Println("پرداخت ثبت شد")
	}); err != nil {
		return err
	}
	return nil
}

func (a *app) cmdPayDelete(args []string) error {
	fs := flag.NewFlagSet("pay-delete", flag.ContinueOnError)
	id := fs.Int("id", 0, "payment id")
	yes := fs.Bool("y", false, "skip confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !a.confirm(fmt.Sprintf("پرداخت %d حذف شود؟", *id), *yes) {
		return nil
	}
	if err := a.client.Payments.Delete(a.ctx(), *id); err != nil {
		return err
	}
	fmt.Println("حذف شد")
	return nil
}

func (a *app) cmdChecks(args []string) error {
	fs := flag.NewFlagSet("checks", flag.ContinueOnError)
	page := fs.Int("page", 1, "page number")
	status := fs.String("status", "", "custody status filter")
	customer := fs.Int("customer", 0, "customer id filter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := api.CheckFilter{Status: *status, CustomerID: *customer}
	pager := screens.NewPager(func(ctx context.Context, page int) (api.List[model.Check], error) {
		return a.client.Checks.List(ctx, filter, page)
	})
	if err := pager.Load(a.ctx(), *page); err != nil {
		return err
	}

	rows := make([][]string, 0, len(pager.Items))
	for _, c := range pager.Items {
		rows = append(rows, []string{
			strconv.Itoa(c.ID), c.Number, labels.Rial(c.Amount),
			labels.CheckStatus(c.Status), c.IssuerBank, jalali.Format(c.DueDate),
		})
	}
	table([]string{"ID", "شماره", "مبلغ", "وضعیت", "بانک", "سررسید"}, rows)
	pageLine(pager.Page, pager.Pages(), pager.Total)
	return nil
}

func (a *app) cmdCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	id := fs.Int("id", 0, "check id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	screen := screens.NewCheckScreen(a.client)
	if err := screen.Load(a.ctx(), *id); err != nil {
		return err
	}

	c := screen.Check
	pairs := [][2]string{
		{"شماره", c.Number},
		{"مبلغ", labels.Rial(c.Amount)},
		{"وضعیت", labels.CheckStatus(c.Status)},
		{"بانک صادرکننده", c.IssuerBank},
		{"بانک مقصد", c.DestBank},
		{"سررسید", jalali.Format(c.DueDate)},
	}
	if screen.ImageURL != "" {
		pairs = append(pairs, [2]string{"تصویر", screen.ImageURL})
	}
	kv(pairs...)
	return nil
}

func (a *app) cmdCheckStatus(args []string) error {
	fs := flag.NewFlagSet("check-status", flag.ContinueOnError)
	id := fs.Int("id", 0, "check id")
	status := fs.String("status", "", "new custody status")
	if err := fs.Parse(args); err != nil {
		return err
	}

	current, err := a.client.Checks.Get(a.ctx(), *id)
	if err != nil {
		return err
	}

	form := &forms.CheckStatusForm{
		CheckID:  *id,
		Current:  current.Status,
		Selected: *status,
	}
	return form.Submit(a.ctx(), a.client.Checks, func() {
		fmt.Println("وضعیت ثبت شد")
	})
}

func (a *app) cmdCheckDelete(args []string) error {
	fs := flag.NewFlagSet("check-delete", flag.ContinueOnError)
	id := fs.Int("id", 0, "check id")
	yes := fs.Bool("y", false, "skip confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !a.confirm(fmt.Sprintf("چک %d حذف شود؟", *id), *yes) {
		return nil
	}
	if err := a.client.Checks.Delete(a.ctx(), *id); err != nil {
		return err
	}
	fmt.Println("حذف شد")
	return nil
}

func (a *app) cmdRequests(args []string) error {
	fs := flag.NewFlagSet("requests", flag.ContinueOnError)
	page := fs.Int("page", 1, "page number")
	status := fs.String("status", "", "status filter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pager := screens.NewPager(func(ctx context.Context, page int) (api.List[model.CustomerRequest], error) {
		return a.client.Requests.List(ctx, *status, page)
	})
	if err := pager.Load(a.ctx(), *page); err != nil {
		return err
	}

	rows := make([][]string, 0, len(pager.Items))
	for _, r := range pager.Items {
		rows = append(rows, []string{
			strconv.Itoa(r.ID), r.Code, labels.RequestStatus(r.Status), strconv.Itoa(len(r.Items)),
		})
	}
	table([]string{"ID", "کد", "وضعیت", "اقلام"}, rows)
	pageLine(pager.Page, pager.Pages(), pager.Total)
	return nil
}

func (a *app) cmdRequestDecide(args []string) error {
	fs := flag.NewFlagSet("request-decide", flag.ContinueOnError)
	id := fs.Int("id", 0, "request id")
	decision := fs.String("decision", "", "APPROVED or REJECTED")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := &forms.RequestDecisionForm{RequestID: *id, Decision: *decision}
	return form.Submit(a.ctx(), a.client.Requests, func() {
		fmt.Println("ثبت شد")
	})
}

func (a *app) cmdRequestConvert(args []string) error {
	fs := flag.NewFlagSet("request-convert", flag.ContinueOnError)
	id := fs.Int("id", 0, "request id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	orderIDs, err := a.client.Requests.ConvertToOrder(a.ctx(), *id)
	if err != nil {
		return err
	}
	fmt.Printf("سفارش‌های ساخته‌شده: %v\n", orderIDs)
	return nil
}

func (a *app) cmdStats(args []string) error {
	dashboard, err := screens.LoadDashboard(a.ctx(), a.client.Stats)
	if err != nil {
		return err
	}

	kv(
		[2]string{"جمع فروش", labels.Rial(dashboard.Sales.TotalAmount)},
		[2]string{"تعداد سفارش", strconv.Itoa(dashboard.Sales.OrderCount)},
		[2]string{"میانگین سفارش", labels.Rial(dashboard.Sales.AvgOrder)},
		[2]string{"جمع موجودی کیف‌ها", labels.Rial(dashboard.Wallets.BalanceSum)},
		[2]string{"تیکت‌های باز", strconv.Itoa(dashboard.Tickets.Open)},
	)

	fmt.Println("\nسفارش‌ها بر اساس مرحله:")
	stepRows := make([][]string, 0, len(dashboard.OrdersByStep))
	for _, s := range dashboard.OrdersByStep {
		stepRows = append(stepRows, []string{labels.OrderStep(s.Step), strconv.Itoa(s.Count)})
	}
	table([]string{"مرحله", "تعداد"}, stepRows)

	fmt.Println("\nپرداخت‌ها بر اساس روش:")
	methodRows := make([][]string, 0, len(dashboard.PaymentsByMeth))
	for _, m := range dashboard.PaymentsByMeth {
		methodRows = append(methodRows, []string{labels.PaymentMethod(m.Method), labels.Rial(m.Amount)})
	}
	table([]string{"روش", "مبلغ"}, methodRows)

	fmt.Println("\nچک‌ها بر اساس وضعیت:")
	checkRows := make([][]string, 0, len(dashboard.ChecksByStatus))
	for _, c := range dashboard.ChecksByStatus {
		checkRows = append(checkRows, []string{labels.CheckStatus(c.Status), strconv.Itoa(c.Count)})
	}
	table([]string{"وضعیت", "تعداد"}, checkRows)

	fmt.Println("\nمشتریان برتر:")
	topRows := make([][]string, 0, len(dashboard.TopCustomers))
	for _, c := range dashboard.TopCustomers {
		topRows = append(topRows, []string{c.Title, labels.Rial(c.Amount)})
	}
	table([]string{"مشتری", "مبلغ"}, topRows)
	return nil
}
