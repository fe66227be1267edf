package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// command is one CLI subcommand. run receives the arguments after the command name.
type command struct {
	name    string
	summary string
	run     func(ctx context.Context, app *storefront, args []string) error
}

var errActionFailed = errors.New("action failed")

func commands() []command {
	return []command{
		{name: "login", summary: "Log in and remember the session", run: runLogin},
		{name: "register", summary: "Create an account", run: runRegister},
		{name: "logout", summary: "Forget the session", run: runLogout},
		{name: "whoami", summary: "Show the current session", run: runWhoami},
		{name: "products", summary: "List products, optionally filtered", run: runProducts},
		{name: "product", summary: "Show one product", run: runProduct},
		{name: "brands", summary: "List every brand in the catalog", run: runBrands},
		{name: "share", summary: "Print a shareable filter link, optionally as a QR code", run: runShare},
		{name: "cart", summary: "Show the cart", run: runCart},
		{name: "cart-add", summary: "Add a product to the cart", run: runCartAdd},
		{name: "cart-update", summary: "Set a cart line quantity (0 removes it)", run: runCartUpdate},
		{name: "cart-remove", summary: "Remove a product from the cart", run: runCartRemove},
		{name: "subscribe", summary: "Subscribe to the newsletter", run: runSubscribe},
		{name: "archive", summary: "Read the newsletter archive", run: runArchive},
		{name: "profile", summary: "Show your profile", run: runProfile},
		{name: "profile-save", summary: "Create or update your profile", run: runProfileSave},
		{name: "addresses", summary: "List your addresses", run: runAddresses},
		{name: "address-add", summary: "Add an address", run: runAddressAdd},
		{name: "address-update", summary: "Update an address", run: runAddressUpdate},
		{name: "address-delete", summary: "Delete an address", run: runAddressDelete},
		{name: "checkout", summary: "Pay for the cart and place an order", run: runCheckout},
		{name: "orders", summary: "List your orders", run: runOrders},
		{name: "order", summary: "Show one order", run: runOrder},
	}
}

func runSubcommand(ctx context.Context, app *storefront, name string, args []string) error {
	for _, cmd := range commands() {
		if cmd.name == name {
			return cmd.run(ctx, app, args)
		}
	}

	printUsage()

	return errors.Errorf("unknown subcommand: %s", name)
}

func printUsage() {
	fmt.Println("Usage: storefront <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	for _, cmd := range commands() {
		fmt.Printf("  %-15s %s\n", cmd.name, cmd.summary)
	}
	fmt.Println("")
	fmt.Println("Use 'storefront <command> -h' for more information about a command.")
}

// visit navigates to path through the route guard and fails when the guard redirects.
func visit(ctx context.Context, app *storefront, path string) error {
	loc, err := app.Router.Push(ctx, entity.Location{Path: path})
	if err != nil {
		return err
	}
	if loc.Path != path {
		return errors.Errorf("%s is not available here, redirected to %s", path, loc.Path)
	}

	return nil
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", fs.Name())
	}

	return nil
}

func ok(success bool) error {
	if !success {
		return errActionFailed
	}

	return nil
}

// --- Session ---

func runLogin(ctx context.Context, app *storefront, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := visit(ctx, app, "/login"); err != nil {
		return err
	}

	return ok(app.Auth.Login(ctx, entity.Credentials{Email: *email, Password: *password}))
}

func runRegister(ctx context.Context, app *storefront, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password, at least 6 characters")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := visit(ctx, app, "/register"); err != nil {
		return err
	}

	return ok(app.Auth.Register(ctx, entity.Credentials{Email: *email, Password: *password}))
}

func runLogout(ctx context.Context, app *storefront, _ []string) error {
	app.Auth.Logout(ctx)

	return nil
}

func runWhoami(_ context.Context, app *storefront, _ []string) error {
	printSession(os.Stdout, app.Auth.Session())

	return nil
}

// --- Catalog ---

// filterFlags binds the product filter flags onto fs.
type filterFlags struct {
	category *string
	minPrice *int64
	maxPrice *int64
	brand    *string
}

func bindFilterFlags(fs *flag.FlagSet) filterFlags {
	return filterFlags{
		category: fs.String("category", string(entity.CategoryAll), "surfboard, accessory or all"),
		minPrice: fs.Int64("min-price", -1, "Lower price bound in pence, -1 for none"),
		maxPrice: fs.Int64("max-price", -1, "Upper price bound in pence, -1 for none"),
		brand:    fs.String("brand", entity.BrandAll, "Brand name or all"),
	}
}

func (f filterFlags) filters() (entity.ProductFilters, error) {
	filters := entity.ProductFilters{
		Category: entity.ProductCategory(*f.category),
		Brand:    *f.brand,
	}
	if filters.Category != entity.CategoryAll && !filters.Category.Valid() {
		return filters, errors.Errorf("unknown category: %s", *f.category)
	}
	if *f.minPrice >= 0 {
		filters.PriceInPenceGT = f.minPrice
	}
	if *f.maxPrice >= 0 {
		filters.PriceInPenceLT = f.maxPrice
	}

	return filters, nil
}

func runProducts(ctx context.Context, app *storefront, args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	filterArgs := bindFilterFlags(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	filters, err := filterArgs.filters()
	if err != nil {
		return err
	}
	if err := visit(ctx, app, "/products"); err != nil {
		return err
	}

	app.Products.SetFilters(filters)
	if err := app.Products.UpdateURLWithFilters(ctx); err != nil {
		return err
	}
	if !app.Products.FetchProducts(ctx) {
		return errActionFailed
	}

	fmt.Printf("Showing %s (max price: %s)\n", app.Router.Current(), app.Products.FormattedMaxPrice())
	printProducts(os.Stdout, app.Products.Products())

	return nil
}

func runProduct(ctx context.Context, app *storefront, args []string) error {
	fs := flag.NewFlagSet("product", flag.ExitOnError)
	id := fs.String("id", "", "Product id")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("--id flag is required for product command")
	}
	if err := visit(ctx, app, "/products/"+*id); err != nil {
		return err
	}

	if !app.Products.FetchProductByID(ctx, *id) {
		return errActionFailed
	}
	printProduct(os.Stdout, app.Products.SelectedProduct())

	return nil
}

func runBrands(ctx context.Context, app *storefront, _ []string) error {
	if !app.Products.FetchAvailableBrands(ctx) {
		return errActionFailed
	}
	for _, brand := range app.Products.AvailableBrands() {
		fmt.Println(brand)
	}

	return nil
}

func runShare(ctx context.Context, app *storefront, args []string) error {
	fs := flag.NewFlagSet("share", flag.ExitOnError)
	filterArgs := bindFilterFlags(fs)
	qrPath := fs.String("qr", "", "Write a PNG QR code of the link to this file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	filters, err := filterArgs.filters()
	if err != nil {
		return err
	}

	app.Products.SetFilters(filters)
	link, err := app.Products.ShareLink()
	if err != nil {
		return err
	}
	fmt.Println(link)

	if *qrPath == "" {
		return nil
	}

	png, err := app.Products.ShareQRCode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(*qrPath, png, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", *qrPath)
	}
	fmt.Printf("QR code written to %s\n", *qrPath)

	return nil
}

// --- Cart ---

func runCart(ctx context.Context, app *storefront, _ []string) error {
	if err := visit(ctx, app, "/cart"); err != nil {
		return err
	}
	if !app.Cart.FetchCart(ctx) {
		return errActionFailed
	}
	printCart(os.Stdout, app.Cart.Items(), app.Cart.ItemCount(), app.Cart.CartTotal())

	return nil
}

func runCartAdd(ctx context.Context, app *storefront, args []string) error {
	fs := flag.NewFlagSet("cart-add", flag.ExitOnError)
	id := fs.Int64("id", 0, "Product id")
	quantity := fs.Int("qty", 1, "Quantity")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := visit(ctx, app, "/cart"); err != nil {
		return err
	}

	if !app.Cart.AddToCart(ctx, *id, *quantity) {
		return errActionFailed
	}
	printCart(os.Stdout, app.Cart.Items(), app.Cart.ItemCount(), app.Cart.CartTotal())

	return nil
}

func runCartUpdate(ctx context.Context, app *storefront, args []string) error {
	fs := flag.NewFlagSet("cart-update", flag.ExitOnError)
	id := fs.Int64("id", 0, "Product id")
	quantity := fs.Int("qty", 1, "New quantity, 0 removes the line")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := visit(ctx, app, "/cart"); err != nil {
		return err
	}

	return ok(app.Cart.UpdateQuantity(ctx, *id, *quantity))
}

func runCartRemove(ctx context.Context, app *storefront, args []string) error {
	fs := flag.NewFlagSet("cart-remove", flag.ExitOnError)
	id := fs.Int64("id", 0, "Product id")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := visit(ctx, app, "/cart"); err != nil {
		return err
	}

	return ok(app.Cart.RemoveFromCart(ctx, *id))
}

// --- Newsletter ---

func runSubscribe(ctx context.Context, app *storefront, args []string) error {
	fs := flag.NewFlagSet("subscribe", flag.ExitOnError)
	email := fs.String("email", "", "Email to subscribe")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	return ok(app.Newsletter.Subscribe(ctx, *email))
}

func runArchive(ctx context.Context, app *storefront, _ []string) error {
	if err := visit(ctx, app, "/newsletter"); err != nil {
		return err
	}
	if !app.Newsletter.FetchArchive(ctx) {
		return errors.New(app.Newsletter.ErrorMessage())
	}
	printArchive(os.Stdout, app.Newsletter.Latest(), app.Newsletter.Older())

	return nil
}

// --- Account ---

func runProfile(ctx context.Context, app *storefront, _ []string) error {
	if err := visit(ctx, app, "/account"); err != nil {
		return err
	}
	if !app.User.FetchProfile(ctx) {
		return errActionFailed
	}
	printProfile(os.Stdout, app.User.Profile())

	return nil
}

func runProfileSave(ctx context.Context, app *storefront, args []string) error {
	fs := flag.NewFlagSet("profile-save", flag.ExitOnError)
	firstName := fs.String("first-name", "", "First name")
	lastName := fs.String("last-name", "", "Last name")
	phone := fs.String("phone", "", "Phone number")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := visit(ctx, app, "/account"); err != nil {
		return err
	}

	input := entity.UserProfileInput{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "first-name":
			input.FirstName = firstName
		case "last-name":
			input.LastName = lastName
		case "phone":
			input.PhoneNumber = phone
		}
	})

	// The create or update choice follows the held profile, so load it first.
	if !app.User.FetchProfile(ctx) {
		return errActionFailed
	}

	return ok(app.User.SaveProfile(ctx, input))
}

func runAddresses(ctx context.Context, app *storefront, _ []string) error {
	if err := visit(ctx, app, "/account"); err != nil {
		return err
	}
	if !app.User.FetchAddresses(ctx) {
		return errActionFailed
	}
	printAddresses(os.Stdout, app.User.Addresses())

	return nil
}

// addressFlags binds the address fields onto fs.
type addressFlags struct {
	fs          *flag.FlagSet
	addressType *string
	street      *string
	city        *string
	postCode    *string
	country     *string
	isDefault   *bool
}

func bindAddressFlags(fs *flag.FlagSet) addressFlags {
	return addressFlags{
		fs:          fs,
		addressType: fs.String("type", string(entity.AddressShipping), "shipping or billing"),
		street:      fs.String("street", "", "Street address"),
		city:        fs.String("city", "", "City"),
		postCode:    fs.String("post-code", "", "Post code"),
		country:     fs.String("country", "", "Country"),
		isDefault:   fs.Bool("default", false, "Make this the default address"),
	}
}

// input returns only the fields set on the command line.
func (f addressFlags) input() entity.AddressInput {
	input := entity.AddressInput{}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "type":
			input.AddressType = entity.AddressType(*f.addressType)
		case "street":
			input.StreetAddress = *f.street
		case "city":
			input.City = *f.city
		case "post-code":
			input.PostCode = *f.postCode
		case "country":
			input.Country = *f.country
		case "default":
			input.IsDefault = f.isDefault
		}
	})

	return input
}

func runAddressAdd(ctx context.Context, app *storefront, args []string) error {
	fs := flag.NewFlagSet("address-add", flag.ExitOnError)
	address := bindAddressFlags(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := visit(ctx, app, "/account"); err != nil {
		return err
	}

	input := address.input()
	if input.AddressType == "" {
		input.AddressType = entity.AddressShipping
	}
	if !app.User.SaveAddress(ctx, input) {
		return errActionFailed
	}
	printAddresses(os.Stdout, app.User.Addresses())

	return nil
}

func runAddressUpdate(ctx context.Context, app *storefront, args []string) error {
	fs := flag.NewFlagSet("address-update", flag.ExitOnError)
	id := fs.Int64("id", 0, "Address id")
	address := bindAddressFlags(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := visit(ctx, app, "/account"); err != nil {
		return err
	}

	return ok(app.User.UpdateAddress(ctx, *id, address.input()))
}

func runAddressDelete(ctx context.Context, app *storefront, args []string) error {
	fs := flag.NewFlagSet("address-delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "Address id")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := visit(ctx, app, "/account"); err != nil {
		return err
	}

	return ok(app.User.DeleteAddress(ctx, *id))
}

// --- Orders ---

func runCheckout(ctx context.Context, app *storefront, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	addressID := fs.Int64("address", 0, "Shipping address id")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *addressID == 0 {
		return errors.New("--address flag is required for checkout command")
	}
	if err := visit(ctx, app, "/checkout"); err != nil {
		return err
	}

	if !app.Cart.FetchCart(ctx) {
		return errActionFailed
	}
	if app.Cart.ItemCount() == 0 {
		return errors.New("your cart is empty")
	}
	if !app.Order.CreateAndConfirmOrder(ctx, *addressID) {
		return errActionFailed
	}

	fmt.Printf("Now at %s\n", app.Router.Current())
	printOrder(os.Stdout, app.Order.CurrentOrder())

	return nil
}

func runOrders(ctx context.Context, app *storefront, _ []string) error {
	if err := visit(ctx, app, "/account"); err != nil {
		return err
	}
	if !app.Order.FetchOrders(ctx) {
		return errActionFailed
	}
	printOrders(os.Stdout, app.Order.Orders())

	return nil
}

func runOrder(ctx context.Context, app *storefront, args []string) error {
	fs := flag.NewFlagSet("order", flag.ExitOnError)
	id := fs.Int64("id", 0, "Order id")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := visit(ctx, app, "/account/orders/"+strconv.FormatInt(*id, 10)); err != nil {
		return err
	}
	if !app.Order.FetchOrderByID(ctx, *id) {
		return errActionFailed
	}
	printOrder(os.Stdout, app.Order.CurrentOrder())

	return nil
}
