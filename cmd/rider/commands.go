package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/fastbuka/rider/internal/app"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/services/onboarding"
	"github.com/fastbuka/rider/services/onboarding/rules"
	"github.com/fastbuka/rider/services/shell"
)

var errUsage = errors.New("invalid usage, run rider -h")

// errSignedOut is returned by commands that need a session
var errSignedOut = errors.New("not signed in, run rider login")

type command func(ctx context.Context, a *app.App, args []string, in io.Reader, out io.Writer) error

var commands = map[string]command{
	"login":          cmdLogin,
	"logout":         cmdLogout,
	"whoami":         cmdWhoami,
	"profile":        cmdProfile,
	"delete-account": cmdDeleteAccount,
	"orders":         cmdOrders,
	"shell":          cmdShell,
	"earnings":       cmdEarnings,
	"dashboard":      cmdDashboard,
	"history":        cmdHistory,
	"register":       cmdRegister,
	"verify":         cmdVerify,
	"prefs":          cmdPrefs,
}

func run(ctx context.Context, a *app.App, args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}

	if route := routeOf(args[0]); route != "" && a.Shell.Guard(route) != route {
		return errSignedOut
	}
	return cmd(ctx, a, args[1:], in, out)
}

// routeOf maps a command to the screen it stands in for. Local-only
// commands have no route and skip the guard.
func routeOf(name string) shell.Route {
	switch name {
	case "login":
		return shell.RouteLogin
	case "logout", "prefs":
		return ""
	case "register":
		return shell.RouteRegister
	case "verify":
		return shell.RouteVerifyEmail
	case "orders", "shell":
		return shell.RouteAvailable
	case "earnings", "dashboard", "history":
		return shell.RouteEarnings
	default:
		return shell.RouteProfile
	}
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func cmdLogin(ctx context.Context, a *app.App, args []string, _ io.Reader, out io.Writer) error {
	fs := newFlagSet("login", out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", os.Getenv("RIDER_PASSWORD"), "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.Session.SignIn(ctx, *email, *password); err != nil {
		return err
	}
	user := a.Session.Current().User
	fmt.Fprintf(out, "Signed in as %s <%s>\n", user.Profile.FullName(), user.Email)
	return nil
}

func cmdLogout(ctx context.Context, a *app.App, _ []string, _ io.Reader, out io.Writer) error {
	a.Session.SignOut(ctx)
	fmt.Fprintln(out, "Signed out")
	return nil
}

func cmdWhoami(_ context.Context, a *app.App, _ []string, _ io.Reader, out io.Writer) error {
	user := a.Session.Current().User
	fmt.Fprintf(out, "%s <%s>\n", user.Profile.FullName(), user.Email)
	for _, tab := range a.Shell.Tabs() {
		fmt.Fprintf(out, "  %-10s %s\n", tab.Route, tab.Title)
	}
	return nil
}

func cmdProfile(ctx context.Context, a *app.App, args []string, _ io.Reader, out io.Writer) error {
	fs := newFlagSet("profile", out)
	firstName := fs.String("first-name", "", "new first name")
	lastName := fs.String("last-name", "", "new last name")
	phone := fs.String("phone", "", "new phone number")
	address := fs.String("address", "", "new home address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var update models.RiderUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "first-name":
			update.FirstName = firstName
		case "last-name":
			update.LastName = lastName
		case "phone":
			update.PhoneNumber = phone
		case "address":
			update.HomeAddress = address
		}
	})

	var (
		profile *models.RiderProfile
		err     error
	)
	if fs.NFlag() == 0 {
		profile, err = a.Rider.Profile(ctx)
	} else {
		profile, err = a.Rider.UpdateProfile(ctx, update)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Name\t%s %s\n", profile.FirstName, profile.LastName)
	fmt.Fprintf(w, "Email\t%s\n", profile.Email)
	fmt.Fprintf(w, "Phone\t%s\n", profile.PhoneNumber)
	fmt.Fprintf(w, "Address\t%s\n", profile.HomeAddress)
	fmt.Fprintf(w, "Vehicle\t%s\n", profile.VehicleType)
	fmt.Fprintf(w, "Status\t%s\n", profile.Status)
	return w.Flush()
}

func cmdDeleteAccount(ctx context.Context, a *app.App, _ []string, _ io.Reader, out io.Writer) error {
	if err := a.Rider.DeleteAccount(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "Account deleted")
	return nil
}

func parseCoordinates(name string, args []string, out io.Writer) (models.Coordinates, []string, error) {
	fs := newFlagSet(name, out)
	lat := fs.Float64("lat", 0, "current latitude")
	lng := fs.Float64("lng", 0, "current longitude")
	if err := fs.Parse(args); err != nil {
		return models.Coordinates{}, nil, err
	}
	return models.Coordinates{Latitude: *lat, Longitude: *lng}, fs.Args(), nil
}

func cmdOrders(ctx context.Context, a *app.App, args []string, _ io.Reader, out io.Writer) error {
	coords, _, err := parseCoordinates("orders", args, out)
	if err != nil {
		return err
	}
	if err := a.Orders.FetchAvailable(ctx, coords); err != nil {
		return err
	}
	return printOrders(out, a.Orders.Available())
}

func printOrders(out io.Writer, orders []models.Order) error {
	if len(orders) == 0 {
		fmt.Fprintln(out, "No orders")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVENDOR\tDELIVER TO\tDISTANCE\tETA\tAMOUNT")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f km\t%s\t%.2f\n",
			o.UUID, o.Vendor.Address, o.DeliveryAddress, o.Distance, o.EstimatedTime, o.TotalAmount)
	}
	return w.Flush()
}

// cmdShell keeps the order lists alive across accept and deliver
func cmdShell(ctx context.Context, a *app.App, args []string, in io.Reader, out io.Writer) error {
	coords, _, err := parseCoordinates("shell", args, out)
	if err != nil {
		return err
	}
	if err := a.Orders.FetchAvailable(ctx, coords); err != nil {
		return err
	}

	counts, cancel := a.Orders.SubscribeCount()
	defer cancel()

	fmt.Fprintln(out, "commands: list, active, refresh, accept <id>, deliver <id>, quit")
	scanner := bufio.NewScanner(in)
	for {
		select {
		case n := <-counts:
			fmt.Fprintf(out, "[%d available]\n", n)
		default:
		}
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		var cmdErr error
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "list":
			cmdErr = printOrders(out, a.Orders.Available())
		case "active":
			cmdErr = printOrders(out, a.Orders.Active())
		case "refresh":
			cmdErr = a.Orders.FetchAvailable(ctx, coords)
		case "accept", "deliver":
			if len(fields) != 2 {
				cmdErr = fmt.Errorf("%s needs an order id", fields[0])
				break
			}
			if fields[0] == "accept" {
				cmdErr = a.Orders.Accept(ctx, fields[1])
			} else {
				cmdErr = a.Orders.Deliver(ctx, fields[1])
			}
			if cmdErr == nil {
				fmt.Fprintf(out, "%sed %s\n", strings.TrimSuffix(fields[0], "e"), fields[1])
			}
		default:
			cmdErr = fmt.Errorf("unknown command %q", fields[0])
		}
		if cmdErr != nil {
			fmt.Fprintln(out, "error:", cmdErr)
		}
	}
}

func cmdEarnings(ctx context.Context, a *app.App, _ []string, _ io.Reader, out io.Writer) error {
	earnings, err := a.Rider.Earnings(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Total this %s: %s %.2f\n", earnings.Period, earnings.Currency, earnings.Total)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, p := range earnings.Trend {
		fmt.Fprintf(w, "%s\t%.2f\n", p.Label, p.Amount)
	}
	return w.Flush()
}

func cmdDashboard(ctx context.Context, a *app.App, _ []string, _ io.Reader, out io.Writer) error {
	dashboard, err := a.Rider.Dashboard(ctx)
	if err != nil {
		return err
	}
	printSummary(out, "Today", dashboard.Today)
	printSummary(out, "This week", dashboard.Week)
	return nil
}

func printSummary(out io.Writer, title string, s models.PeriodSummary) {
	fmt.Fprintf(out, "%s: %.2f from %d trips, %.1f hours online\n", title, s.Total, s.Trips, s.OnlineHours)
	for _, b := range s.Breakdown {
		fmt.Fprintf(out, "  %s  %-30s %.2f\n", b.Time, b.Location, b.Amount)
	}
}

func cmdHistory(ctx context.Context, a *app.App, _ []string, _ io.Reader, out io.Writer) error {
	history, err := a.Rider.History(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DELIVERED\tFROM\tTO\tAMOUNT")
	for _, h := range history {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\n",
			h.DeliveredAt.Local().Format("2006-01-02 15:04"), h.PickupAddress, h.DeliveryAddress, h.Amount)
	}
	return w.Flush()
}

// cmdRegister walks the onboarding wizard with an application read from YAML
func cmdRegister(ctx context.Context, a *app.App, args []string, _ io.Reader, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var application models.RiderApplication
	if err := yaml.Unmarshal(raw, &application); err != nil {
		return fmt.Errorf("error parsing %s: %w", args[0], err)
	}

	a.Onboarding.Edit(func(draft *models.RiderApplication) {
		*draft = application
	})

	for a.Onboarding.State().Stage != onboarding.LastStage {
		stage := a.Onboarding.State().Stage
		if res := a.Onboarding.Next(); !res.Valid() {
			printValidation(out, stage, res)
			return fmt.Errorf("%s is incomplete", stage)
		}
		fmt.Fprintf(out, "%-22s ok (%.0f%%)\n", stage, a.Onboarding.Progress()*100)
	}

	result, err := a.Onboarding.Submit(ctx)
	if err != nil {
		return err
	}
	if !result.Validation.Valid() {
		printValidation(out, a.Onboarding.State().Stage, result.Validation)
		return errors.New("application is incomplete")
	}

	fmt.Fprintf(out, "Registered %s, status %s. Check your email for the verification code.\n",
		result.Registration.Email, result.Registration.Status)
	return nil
}

func printValidation(out io.Writer, stage onboarding.Stage, res onboarding.ValidationResult) {
	fmt.Fprintf(out, "%s:\n", stage)
	for _, field := range res.Fields() {
		fmt.Fprintf(out, "  %s: %s\n", field, res[field])
		if opts := rules.FieldOptions(field); len(opts) > 0 {
			fmt.Fprintf(out, "    choose from: %s\n", strings.Join(opts, ", "))
		}
	}
}

func cmdVerify(ctx context.Context, a *app.App, args []string, _ io.Reader, out io.Writer) error {
	fs := newFlagSet("verify", out)
	email := fs.String("email", "", "registered email")
	code := fs.String("code", "", "verification code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.Onboarding.VerifyEmail(ctx, *email, *code); err != nil {
		return err
	}
	fmt.Fprintln(out, "Email verified")
	return nil
}

func cmdPrefs(_ context.Context, a *app.App, args []string, _ io.Reader, out io.Writer) error {
	switch len(args) {
	case 0:
	case 1:
		if args[0] != "reset" {
			return errUsage
		}
		if err := a.Preferences.Reset(); err != nil {
			return err
		}
	case 2:
		if err := setPreference(a, args[0], args[1]); err != nil {
			return err
		}
	default:
		return errUsage
	}

	prefs, err := a.Preferences.Get()
	if err != nil {
		return err
	}
	raw, err := yaml.Marshal(map[string]interface{}{
		"dark_mode":          prefs.DarkMode,
		"push_notifications": prefs.PushNotifications,
		"language":           prefs.Language,
		"region":             prefs.Region,
	})
	if err != nil {
		return err
	}
	_, err = out.Write(raw)
	return err
}

func setPreference(a *app.App, key, value string) error {
	switch key {
	case "dark_mode", "push_notifications":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false", key)
		}
		if key == "dark_mode" {
			return a.Preferences.SetDarkMode(enabled)
		}
		return a.Preferences.SetPushNotifications(enabled)
	case "language":
		return a.Preferences.SetLanguage(value)
	case "region":
		return a.Preferences.SetRegion(value)
	default:
		return fmt.Errorf("unknown preference %q", key)
	}
}
