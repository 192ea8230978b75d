package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/omdehgostar/portal/internal/api"
	"github.com/omdehgostar/portal/internal/labels"
	"github.com/omdehgostar/portal/internal/model"
	"github.com/omdehgostar/portal/internal/screens"
)

func (a *app) cmdCatalog(args []string) error {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	category := fs.Int("category", 0, "category id")
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *category == 0 {
		categories, err := a.client.Public.Categories(a.ctx())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(categories))
		for _, c := range categories {
			rows = append(rows, []string{strconv.Itoa(c.ID), c.Title})
		}
		table([]string{"ID", "دسته"}, rows)
		fmt.Println("\nبرای دیدن کالاها: portal catalog -category <id>")
		return nil
	}

	pager := screens.NewPager(func(ctx context.Context, page int) (api.List[model.Product], error) {
		return a.client.Public.Products(ctx, *category, page)
	})
	if err := pager.Load(a.ctx(), *page); err != nil {
		return err
	}

	rows := make([][]string, 0, len(pager.Items))
	for _, p := range pager.Items {
		rows = append(rows, []string{
			strconv.Itoa(p.ID), p.Title, labels.Rial(p.UnitPrice), yesNo(p.Available),
		})
	}
	table([]string{"ID", "کالا", "قیمت واحد", "موجود"}, rows)
	pageLine(pager.Page, pager.Pages(), pager.Total)
	return nil
}

func (a *app) printCart(cart model.Cart) {
	rows := make([][]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		rows = append(rows, []string{
			item.Title, fmt.Sprintf("%.1f", item.Weight), labels.Rial(item.UnitPrice),
		})
	}
	table([]string{"کالا", "وزن", "قیمت واحد"}, rows)
	fmt.Println("\nجمع:", labels.Rial(cart.Total))
}

func (a *app) cmdCart(args []string) error {
	cart, err := a.client.Cart.Get(a.ctx())
	if err != nil {
		return err
	}
	a.printCart(cart)
	return nil
}

func (a *app) cmdCartAdd(args []string) error {
	fs := flag.NewFlagSet("cart-add", flag.ContinueOnError)
	product := fs.Int("product", 0, "product id")
	weight := fs.Float64("weight", 0, "weight in kg")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cart, err := a.client.Cart.AddItem(a.ctx(), api.CartItemInput{ProductID: *product, Weight: *weight})
	if err != nil {
		return err
	}
	a.printCart(cart)
	return nil
}

func (a *app) cmdCartRemove(args []string) error {
	fs := flag.NewFlagSet("cart-remove", flag.ContinueOnError)
	product := fs.Int("product", 0, "product id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cart, err := a.client.Cart.RemoveItem(a.ctx(), *product)
	if err != nil {
		return err
	}
	a.printCart(cart)
	return nil
}

func (a *app) cmdCartCheckout(args []string) error {
	request, err := a.client.Cart.Checkout(a.ctx())
	if err != nil {
		return err
	}
	fmt.Printf("درخواست %s ثبت شد (%s)\n", request.Code, labels.RequestStatus(request.Status))
	return nil
}
