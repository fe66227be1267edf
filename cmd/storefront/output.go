package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/util"
)

func printToast(w io.Writer) func(service.Toast) {
	marks := map[service.ToastLevel]string{
		service.ToastSuccess: "[ok]",
		service.ToastError:   "[error]",
		service.ToastInfo:    "[info]",
		service.ToastLoading: "[...]",
	}

	return func(toast service.Toast) {
		if toast.Description != "" {
			fmt.Fprintf(w, "%s %s: %s\n", marks[toast.Level], toast.Title, toast.Description)

			return
		}
		fmt.Fprintf(w, "%s %s\n", marks[toast.Level], toast.Title)
	}
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printSession(w io.Writer, session entity.Session) {
	if !session.IsAuthenticated() {
		fmt.Fprintln(w, "Not logged in.")

		return
	}
	if session.User == nil {
		fmt.Fprintln(w, "Logged in.")

		return
	}
	fmt.Fprintf(w, "Logged in as %s (user %d).\n", session.User.Email, session.User.ID)
}

func printProducts(w io.Writer, products []entity.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products match.")

		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tBRAND\tCATEGORY\tPRICE")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Brand, p.Category, util.FormatPence(p.PriceInPence))
	}
	_ = tw.Flush()
}

func printProduct(w io.Writer, p *entity.Product) {
	if p == nil {
		return
	}

	fmt.Fprintf(w, "%s by %s, %s\n", p.Name, p.Brand, util.FormatPence(p.PriceInPence))
	if p.Description != "" {
		fmt.Fprintln(w, p.Description)
	}

	tw := newTable(w)
	optional := []struct {
		label string
		value *string
	}{
		{"Model", p.Model},
		{"Dimensions", p.Dimensions},
		{"Volume", p.Volume},
		{"Ability", p.Ability},
		{"Conditions", p.Conditions},
		{"Construction", p.Construction},
		{"Fin system", p.FinSystem},
	}
	for _, attr := range optional {
		if attr.value != nil {
			fmt.Fprintf(tw, "%s\t%s\n", attr.label, *attr.value)
		}
	}
	if p.DealType != nil && p.DealDiscount != nil {
		fmt.Fprintf(tw, "Deal\t%s %d\n", *p.DealType, *p.DealDiscount)
	}
	_ = tw.Flush()
}

func printCart(w io.Writer, lines []entity.CartLine, count int, total string) {
	if len(lines) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")

		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tQTY\tPRICE")
	for _, line := range lines {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", line.ID, line.Name, line.Quantity, util.FormatPence(line.PriceInPence))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d items, total %s\n", count, total)
}

func printArchive(w io.Writer, latest *entity.Newsletter, older []entity.Newsletter) {
	if latest == nil {
		fmt.Fprintln(w, "No newsletters yet.")

		return
	}

	fmt.Fprintf(w, "%s  %s\n\n%s\n", latest.PublishedAt.Format("2 Jan 2006"), latest.Subject, latest.Content)
	if len(older) == 0 {
		return
	}

	fmt.Fprintln(w, "\nOlder issues:")
	for _, issue := range older {
		fmt.Fprintf(w, "  %s  %s\n", issue.PublishedAt.Format("2 Jan 2006"), issue.Subject)
	}
}

func printProfile(w io.Writer, profile *entity.UserProfile) {
	if profile == nil {
		fmt.Fprintln(w, "No profile yet. Create one with profile-save.")

		return
	}

	tw := newTable(w)
	fmt.Fprintf(tw, "First name\t%s\n", profile.FirstName)
	fmt.Fprintf(tw, "Last name\t%s\n", profile.LastName)
	fmt.Fprintf(tw, "Phone\t%s\n", profile.PhoneNumber)
	_ = tw.Flush()
}

func printAddresses(w io.Writer, addresses []entity.Address) {
	if len(addresses) == 0 {
		fmt.Fprintln(w, "No addresses saved.")

		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTYPE\tADDRESS\tDEFAULT")
	for _, a := range addresses {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%t\n", a.ID, a.AddressType, formatAddress(a), a.IsDefault)
	}
	_ = tw.Flush()
}

func formatAddress(a entity.Address) string {
	return fmt.Sprintf("%s, %s %s, %s", a.StreetAddress, a.City, a.PostCode, a.Country)
}

func printOrders(w io.Writer, orders []entity.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders yet.")

		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tSTATUS\tTOTAL")
	for _, o := range orders {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", o.ID, o.CreatedAt.Format("2006-01-02"), o.Status, util.FormatPence(o.TotalInPence))
	}
	_ = tw.Flush()
}

func printOrder(w io.Writer, o *entity.Order) {
	if o == nil {
		return
	}

	fmt.Fprintf(w, "Order #%d (%s)\n", o.ID, o.Status)
	tw := newTable(w)
	for _, item := range o.Items {
		fmt.Fprintf(tw, "  %s\tx%d\t%s\n", item.Name, item.Quantity, util.FormatPence(item.PriceInPence))
	}
	fmt.Fprintf(tw, "Subtotal\t\t%s\n", util.FormatPence(o.SubtotalInPence))
	fmt.Fprintf(tw, "Shipping\t\t%s\n", util.FormatPence(o.ShippingInPence))
	fmt.Fprintf(tw, "Tax\t\t%s\n", util.FormatPence(o.TaxInPence))
	fmt.Fprintf(tw, "Total\t\t%s\n", util.FormatPence(o.TotalInPence))
	_ = tw.Flush()
	if o.ShippingAddress != nil {
		fmt.Fprintf(w, "Ships to %s\n", formatAddress(*o.ShippingAddress))
	}
}
