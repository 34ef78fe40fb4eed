// Package main provides the entry point for the StayNest terminal client.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/do/v2"

	"github.com/staynestapp/staynest-client/internal/app"
	"github.com/staynestapp/staynest-client/internal/catalog"
	"github.com/staynestapp/staynest-client/internal/di"
	"github.com/staynestapp/staynest-client/internal/di/providers"
	"github.com/staynestapp/staynest-client/internal/domain"
	"github.com/staynestapp/staynest-client/internal/logger"
	"github.com/staynestapp/staynest-client/internal/service"
)

const dateLayout = "2006-01-02"

func main() {
	injector := di.NewContainer()

	a, err := do.Invoke[*app.App](injector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	log := do.MustInvoke[*logger.Logger](injector)

	ctx := context.Background()
	if err := a.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
	}

	fmt.Println("StayNest — type 'help' for commands, 'quit' to exit.")
	repl(ctx, a)

	log.Info("Shutting down...")
	if storeHandle, err := do.Invoke[*providers.StoreHandle](injector); err == nil {
		if err := storeHandle.Shutdown(); err != nil {
			log.Error("Failed to close local state", "error", err)
		}
	}
	if err := injector.Shutdown(); err != nil {
		log.Error("Shutdown error", "error", err)
	}
}

func repl(ctx context.Context, a *app.App) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			return
		case "help":
			printHelp()
		case "list":
			fmt.Print(a.SafeRender("room list", func() string {
				return renderRooms(a.VisibleRooms(), a)
			}))
		case "search":
			a.SetQuery(strings.Join(args, " "))
			fmt.Printf("%d rooms match\n", len(a.VisibleRooms()))
		case "city":
			a.SetCity(strings.Join(args, " "))
			fmt.Printf("%d rooms match\n", len(a.VisibleRooms()))
		case "sort":
			if len(args) != 1 {
				fmt.Println("usage: sort recommended|price-low|price-high|rating|popularity")
				continue
			}
			a.SetSort(catalog.SortKey(args[0]))
		case "filter":
			handleFilter(a, args)
		case "reset":
			a.ResetFilters()
		case "featured":
			fmt.Print(a.SafeRender("featured rails", func() string {
				return renderFeatured(a)
			}))
		case "trending":
			for _, term := range a.TrendingSearches() {
				fmt.Println(" ", term)
			}
		case "login":
			if len(args) != 2 {
				fmt.Println("usage: login <email> <password>")
				continue
			}
			a.Login(ctx, service.LoginRequest{Email: args[0], Password: args[1]})
		case "signup":
			if len(args) != 4 {
				fmt.Println("usage: signup <name> <email> <password> <phone>")
				continue
			}
			a.Signup(ctx, service.SignupRequest{
				Name: args[0], Email: args[1],
				Password: args[2], ConfirmPassword: args[2],
				Phone: args[3],
			})
		case "logout":
			a.Logout()
		case "whoami":
			if u := a.CurrentUser(); u != nil {
				fmt.Printf("%s <%s>\n", u.Name, u.Email)
			} else {
				fmt.Println("not logged in")
			}
		case "fav":
			if len(args) != 1 {
				fmt.Println("usage: fav <room-id>")
				continue
			}
			a.ToggleFavorite(ctx, args[0])
		case "favs":
			fmt.Print(a.SafeRender("favorites", func() string {
				return renderRooms(a.FavoriteRooms(), a)
			}))
		case "book":
			handleBook(ctx, a, args)
		case "pay":
			handlePay(ctx, a, args)
		case "bookings":
			for _, b := range a.Bookings() {
				fmt.Printf("  %s  %s  %s → %s  ₹%.2f\n",
					b.ID, b.Room.Name,
					b.CheckIn.Format(dateLayout), b.CheckOut.Format(dateLayout), b.Total)
			}
		case "cancel":
			if len(args) != 1 {
				fmt.Println("usage: cancel <booking-id>")
				continue
			}
			a.CancelBooking(ctx, args[0])
		case "profile":
			if len(args) != 3 {
				fmt.Println("usage: profile <name> <email> <phone>")
				continue
			}
			a.UpdateProfile(ctx, service.ProfileUpdateRequest{
				Name: args[0], Email: args[1], Phone: args[2],
			})
		case "dark":
			fmt.Printf("dark mode: %v\n", a.ToggleDarkMode())
		default:
			fmt.Printf("unknown command %q, try 'help'\n", cmd)
		}
	}
}

func handleFilter(a *app.App, args []string) {
	if len(args) < 2 {
		fmt.Println("usage: filter price <min> <max> | rating <min> | type <t> | bed <b>")
		return
	}
	f := catalog.DefaultFilters()
	switch args[0] {
	case "price":
		if len(args) != 3 {
			fmt.Println("usage: filter price <min> <max>")
			return
		}
		f.PriceMin, _ = strconv.ParseFloat(args[1], 64)
		f.PriceMax, _ = strconv.ParseFloat(args[2], 64)
	case "rating":
		f.Rating, _ = strconv.ParseFloat(args[1], 64)
	case "type":
		f.RoomType = args[1]
	case "bed":
		f.BedType = args[1]
	default:
		fmt.Printf("unknown filter %q\n", args[0])
		return
	}
	a.SetFilters(f)
	fmt.Printf("%d rooms match\n", len(a.VisibleRooms()))
}

// handleBook runs the details stage: book <room-id> <check-in> <check-out> <guests>
func handleBook(ctx context.Context, a *app.App, args []string) {
	if len(args) != 4 {
		fmt.Println("usage: book <room-id> <YYYY-MM-DD> <YYYY-MM-DD> <guests>")
		return
	}
	var room *domain.Room
	for _, r := range a.Rooms() {
		if r.ID == args[0] {
			room = &r
			break
		}
	}
	if room == nil {
		fmt.Println("no such room")
		return
	}
	checkIn, err1 := time.Parse(dateLayout, args[1])
	checkOut, err2 := time.Parse(dateLayout, args[2])
	guests, err3 := strconv.Atoi(args[3])
	if err1 != nil || err2 != nil || err3 != nil {
		fmt.Println("usage: book <room-id> <YYYY-MM-DD> <YYYY-MM-DD> <guests>")
		return
	}

	if err := a.BeginBooking(*room); err != nil {
		return
	}
	quote, err := a.EnterBookingDetails(service.DetailsRequest{
		CheckIn: checkIn, CheckOut: checkOut, Guests: guests,
	})
	if err != nil {
		a.CloseBookingFlow()
		return
	}
	fmt.Printf("%d night(s): subtotal ₹%.2f + tax ₹%.2f + service fee ₹%.2f = ₹%.2f\n",
		quote.Nights, quote.Subtotal, quote.Tax, quote.ServiceFee, quote.Total)
	fmt.Println("now: pay credit-card <number> <name> <MM/YY> <cvv>  |  pay paypal <email>  |  pay apple-pay|google-pay  |  pay crypto <currency>")
}

func handlePay(ctx context.Context, a *app.App, args []string) {
	if len(args) == 0 {
		fmt.Println("usage: pay <method> [fields...]")
		return
	}
	req := service.PaymentRequest{Method: args[0]}
	switch args[0] {
	case service.MethodCard:
		if len(args) != 5 {
			fmt.Println("usage: pay credit-card <number> <name> <MM/YY> <cvv>")
			return
		}
		req.CardNumber = service.FormatCardNumber(args[1])
		req.CardName = args[2]
		req.Expiry = service.FormatExpiry(args[3])
		req.CVV = args[4]
	case service.MethodPayPal:
		if len(args) != 2 {
			fmt.Println("usage: pay paypal <email>")
			return
		}
		req.PayPalEmail = args[1]
	case service.MethodCrypto:
		if len(args) != 2 {
			fmt.Println("usage: pay crypto <currency>")
			return
		}
		req.CryptoCurrency = args[1]
	}

	created, err := a.ConfirmPayment(ctx, req)
	if err != nil {
		return
	}
	fmt.Printf("confirmed: %s (transaction %s)\n", created.BookingID, a.Flow().TransactionID)
	a.CloseBookingFlow()
}

func renderRooms(rooms []domain.Room, a *app.App) string {
	var b strings.Builder
	for _, r := range rooms {
		mark := " "
		if a.IsFavorite(r.ID) {
			mark = "*"
		}
		avail := ""
		if !r.Available {
			avail = "  (unavailable)"
		}
		fmt.Fprintf(&b, "%s %-10s %-28s %-10s ₹%-8.0f %.1f★ (%d)%s\n",
			mark, r.ID, r.Name, r.City, r.Price, r.Rating, r.Reviews, avail)
	}
	if len(rooms) == 0 {
		b.WriteString("no rooms\n")
	}
	return b.String()
}

func renderFeatured(a *app.App) string {
	rooms := a.Rooms()
	var b strings.Builder

	b.WriteString("Top deals:\n")
	for _, r := range catalog.TopDeals(rooms) {
		fmt.Fprintf(&b, "  %-28s ₹%-8.0f %.1f★\n", r.Name, r.Price, r.Rating)
	}
	b.WriteString("Top rated:\n")
	for _, r := range catalog.TopRated(rooms) {
		fmt.Fprintf(&b, "  %-28s %.1f★ (%d reviews)\n", r.Name, r.Rating, r.Reviews)
	}
	b.WriteString("Collections:\n")
	for _, c := range catalog.Collections(rooms) {
		fmt.Fprintf(&b, "  %-20s %s (%d rooms)\n", c.Name, c.Description, c.Count)
	}
	return b.String()
}

func printHelp() {
	fmt.Println(`commands:
  list | search <q> | city <c> | sort <key> | filter ... | reset
  featured | trending
  login <email> <pass> | signup <name> <email> <pass> <phone> | logout | whoami | profile <name> <email> <phone>
  fav <room-id> | favs
  book <room-id> <in> <out> <guests> | pay <method> ... | bookings | cancel <id>
  dark | quit`)
}
