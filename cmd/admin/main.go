package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"varsha-travels/internal/console"
	"varsha-travels/internal/models"
	"varsha-travels/internal/utils"
	"varsha-travels/pkg/client"
)

const usage = `usage: admin [-api URL] [-token TOKEN] <command> [flags]

commands:
  login      -email E -password P   print an admin token
  dashboard                         review stats and destination states
  messages   [-filter F] [-open ID] [-star ID] [-delete ID]
  bookings   [-status S] [-set ID=STATUS] [-delete ID]
  reviews    [-delete ID]
  destinations [-state S] [-delete ID]
                                    list states, one state's destinations, or delete one
  add-destination -name N -state S [-details D] [-highlights a,b] [-image FILE]
  edit-destination -id ID [-name N] [-state S] [-details D] [-highlights a,b] [-image FILE]
  vehicles   [-delete ID]
  add-vehicle -name N -image FILE
  edit-vehicle -id ID [-name N] [-image FILE]
  settings   [-qr FILE] [-set field=value ...]
`

func main() {
	apiURL := flag.String("api", envOr("VARSHA_API_URL", "http://localhost:5000"), "API base URL")
	token := flag.String("token", os.Getenv("VARSHA_ADMIN_TOKEN"), "admin bearer token")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	api := client.New(*apiURL, client.WithToken(*token))
	cmd, args := flag.Arg(0), flag.Args()[1:]

	var err error
	switch cmd {
	case "login":
		err = runLogin(ctx, api, args)
	case "dashboard":
		err = runDashboard(ctx, api)
	case "messages":
		err = runMessages(ctx, api, args)
	case "bookings":
		err = runBookings(ctx, api, args)
	case "reviews":
		err = runReviews(ctx, api, args)
	case "destinations":
		err = runDestinations(ctx, api, args)
	case "add-destination":
		err = runAddDestination(ctx, api, args)
	case "edit-destination":
		err = runEditDestination(ctx, api, args)
	case "vehicles":
		err = runVehicles(ctx, api, args)
	case "add-vehicle":
		err = runAddVehicle(ctx, api, args)
	case "edit-vehicle":
		err = runEditVehicle(ctx, api, args)
	case "settings":
		err = runSettings(ctx, api, args)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", cmd, err)
	}
}

func runLogin(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", os.Getenv("ADMIN_EMAIL"), "admin email")
	password := fs.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	_ = fs.Parse(args)

	if !utils.IsValidEmail(*email) {
		return fmt.Errorf("%q is not an email address", *email)
	}
	resp, err := api.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s as %s, token valid until %s\n", resp.Message, resp.Email, resp.ExpiresAt.Format(time.RFC3339))
	fmt.Println(resp.Token)
	return nil
}

func runDashboard(ctx context.Context, api *client.Client) error {
	d, err := console.New(api).Dashboard(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Reviews:        %d\n", d.Reviews.Total)
	fmt.Printf("Average rating: %.1f/5\n", d.Reviews.Average)
	for star := 5; star >= 1; star-- {
		fmt.Printf("  %d star: %d\n", star, d.Reviews.Buckets[star-1])
	}
	fmt.Printf("Destinations:   %d in %d states\n", d.Destinations, len(d.States))

	if len(d.Reviews.Latest) > 0 {
		fmt.Println("\nLatest reviews:")
		for _, r := range d.Reviews.Latest {
			fmt.Printf("  %s (%d/5) %s\n", r.Name, r.Rating, truncate(r.Content, 60))
		}
	}
	return nil
}

func runMessages(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("messages", flag.ExitOnError)
	filter := fs.String("filter", console.FilterAll, "all, unread, read, replied or starred")
	open := fs.String("open", "", "show a message and mark it read")
	star := fs.String("star", "", "toggle the star on a message")
	del := fs.String("delete", "", "delete a message by id")
	_ = fs.Parse(args)

	c := console.New(api)
	messages, err := api.Messages(ctx)
	if err != nil {
		return err
	}

	if *del != "" {
		remaining, err := c.RemoveMessage(ctx, messages, *del)
		if err != nil {
			return err
		}
		fmt.Printf("deleted %s, %d messages left\n", *del, len(remaining))
		return nil
	}

	id := firstNonEmpty(*open, *star)
	if id != "" {
		m, ok := findMessage(messages, id)
		if !ok {
			return fmt.Errorf("message %s not found", id)
		}
		if *open != "" {
			m, err = c.OpenMessage(ctx, m)
		} else {
			m, err = c.ToggleStar(ctx, m)
		}
		if err != nil {
			return err
		}
		fmt.Printf("From:    %s <%s> %s\nSubject: %s\nStatus:  %s starred=%t\n\n%s\n\n",
			m.Name, m.Email, m.Phone, m.Subject, m.Status, m.IsStarred, m.Message)
		messages = console.ReplaceMessage(messages, m)
	}

	counts := console.CountMessages(messages)
	fmt.Printf("all %d  unread %d  read %d  replied %d  starred %d\n\n",
		counts.All, counts.Unread, counts.Read, counts.Replied, counts.Starred)

	if id != "" {
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tSTAR\tFROM\tSUBJECT\tRECEIVED")
	for _, m := range console.FilterMessages(messages, *filter) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID.Hex(), m.Status, starMark(m.IsStarred), m.Name, truncate(m.Subject, 40), m.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runBookings(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("bookings", flag.ExitOnError)
	status := fs.String("status", console.FilterAll, "filter by status")
	set := fs.String("set", "", "change a status, as ID=STATUS")
	del := fs.String("delete", "", "delete a booking by id")
	_ = fs.Parse(args)

	if *set != "" {
		id, value, ok := strings.Cut(*set, "=")
		if !ok {
			return fmt.Errorf("-set wants ID=STATUS, got %q", *set)
		}
		b, err := console.New(api).SetBookingStatus(ctx, id, value)
		if err != nil {
			return err
		}
		fmt.Printf("%s is now %s\n", b.ID.Hex(), b.Status)
		return nil
	}

	bookings, err := api.Bookings(ctx)
	if err != nil {
		return err
	}

	if *del != "" {
		remaining, err := console.New(api).RemoveBooking(ctx, bookings, *del)
		if err != nil {
			return err
		}
		fmt.Printf("deleted %s, %d bookings left\n", *del, len(remaining))
		return nil
	}

	counts := console.CountBookings(bookings)
	parts := make([]string, 0, len(models.BookingStatuses))
	for _, s := range models.BookingStatuses {
		parts = append(parts, fmt.Sprintf("%s %d", s, counts[s]))
	}
	fmt.Printf("all %d  %s\n\n", len(bookings), strings.Join(parts, "  "))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tNAME\tPHONE\tDESTINATION\tVEHICLE\tPICKUP\tPAX")
	for _, b := range console.FilterBookings(bookings, *status) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID.Hex(), b.Status, b.FullName, b.Phone, b.Destination, b.Vehicle, b.PickupDate, b.Passengers)
	}
	return w.Flush()
}

func runReviews(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("reviews", flag.ExitOnError)
	del := fs.String("delete", "", "delete a review by id")
	_ = fs.Parse(args)

	reviews, err := api.Reviews(ctx)
	if err != nil {
		return err
	}
	reviews = console.SortReviews(reviews)

	if *del != "" {
		reviews, err = console.New(api).DeleteReview(ctx, reviews, *del)
		if err != nil {
			// the review is already gone from the view
			log.Printf("delete review %s: %v", *del, err)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRATING\tNAME\tREVIEW\tPOSTED")
	for _, r := range reviews {
		fmt.Fprintf(w, "%s\t%d/5\t%s\t%s\t%s\n",
			r.ID.Hex(), r.Rating, r.Name, truncate(r.Content, 50), r.CreatedAt.Format("2006-01-02"))
	}
	return w.Flush()
}

func runDestinations(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("destinations", flag.ExitOnError)
	state := fs.String("state", "", "list the destinations of one state")
	del := fs.String("delete", "", "delete a destination by id")
	_ = fs.Parse(args)

	destinations, err := api.Destinations(ctx)
	if err != nil {
		return err
	}

	if *del != "" {
		remaining, err := console.New(api).RemoveDestination(ctx, destinations, *del)
		if err != nil {
			return err
		}
		fmt.Printf("deleted %s, %d destinations left\n", *del, len(remaining))
		return nil
	}

	if *state == "" {
		for _, s := range console.States(destinations) {
			fmt.Printf("%-24s %d\n", s, len(console.FilterByState(destinations, s)))
		}
		return nil
	}

	for _, d := range console.FilterByState(destinations, *state) {
		fmt.Printf("%s  %s  %s\n", d.ID.Hex(), d.Name, strings.Join(d.Highlights, ", "))
	}
	return nil
}

func runAddDestination(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("add-destination", flag.ExitOnError)
	name := fs.String("name", "", "destination name")
	state := fs.String("state", "", "state the destination is in")
	details := fs.String("details", "", "description")
	highlights := fs.String("highlights", "", "comma separated highlights")
	imagePath := fs.String("image", "", "cover image to upload")
	_ = fs.Parse(args)

	in := models.DestinationInput{Name: *name, State: *state, Details: *details, Highlights: splitList(*highlights)}

	img, closeImage, err := openImage(*imagePath)
	if err != nil {
		return err
	}
	defer closeImage()

	destinations, err := api.Destinations(ctx)
	if err != nil {
		return err
	}
	ds, states, err := console.New(api).AddDestination(ctx, destinations, console.States(destinations), in, img)
	if err != nil {
		return err
	}
	fmt.Printf("created %s (%s), %d destinations in %d states\n", ds[0].ID.Hex(), ds[0].Name, len(ds), len(states))
	return nil
}

func runEditDestination(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("edit-destination", flag.ExitOnError)
	id := fs.String("id", "", "destination id")
	name := fs.String("name", "", "new name")
	state := fs.String("state", "", "new state")
	details := fs.String("details", "", "new description")
	highlights := fs.String("highlights", "", "comma separated highlights, replaces the list")
	imagePath := fs.String("image", "", "new cover image to upload")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("-id is required")
	}
	given := setOnly(fs)
	var patch models.DestinationPatch
	if given["name"] {
		patch.Name = models.Some(*name)
	}
	if given["state"] {
		patch.State = models.Some(*state)
	}
	if given["details"] {
		patch.Details = models.Some(*details)
	}
	if given["highlights"] {
		patch.Highlights = models.Some(splitList(*highlights))
	}

	img, closeImage, err := openImage(*imagePath)
	if err != nil {
		return err
	}
	defer closeImage()

	destinations, err := api.Destinations(ctx)
	if err != nil {
		return err
	}
	ds, states, err := console.New(api).EditDestination(ctx, destinations, *id, patch, img)
	if err != nil {
		return err
	}
	for _, d := range ds {
		if d.ID.Hex() == *id {
			fmt.Printf("updated %s (%s, %s), %d states\n", *id, d.Name, d.State, len(states))
		}
	}
	return nil
}

func runVehicles(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("vehicles", flag.ExitOnError)
	del := fs.String("delete", "", "delete a vehicle by id")
	_ = fs.Parse(args)

	vehicles, err := api.Vehicles(ctx)
	if err != nil {
		return err
	}

	if *del != "" {
		remaining, err := console.New(api).RemoveVehicle(ctx, vehicles, *del)
		if err != nil {
			return err
		}
		fmt.Printf("deleted %s, %d vehicles left\n", *del, len(remaining))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tIMAGE")
	for _, v := range vehicles {
		fmt.Fprintf(w, "%s\t%s\t%s\n", v.ID.Hex(), v.Name, v.ImageURL)
	}
	return w.Flush()
}

func runAddVehicle(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("add-vehicle", flag.ExitOnError)
	name := fs.String("name", "", "vehicle name")
	imagePath := fs.String("image", "", "vehicle photo to upload")
	_ = fs.Parse(args)

	img, closeImage, err := openImage(*imagePath)
	if err != nil {
		return err
	}
	defer closeImage()

	vehicles, err := api.Vehicles(ctx)
	if err != nil {
		return err
	}
	vs, err := console.New(api).AddVehicle(ctx, vehicles, models.VehicleInput{Name: *name}, img)
	if err != nil {
		return err
	}
	fmt.Printf("created %s (%s), %d vehicles\n", vs[0].ID.Hex(), vs[0].Name, len(vs))
	return nil
}

func runEditVehicle(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("edit-vehicle", flag.ExitOnError)
	id := fs.String("id", "", "vehicle id")
	name := fs.String("name", "", "new name")
	imagePath := fs.String("image", "", "new photo to upload")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("-id is required")
	}
	var patch models.VehiclePatch
	if setOnly(fs)["name"] {
		patch.Name = models.Some(*name)
	}

	img, closeImage, err := openImage(*imagePath)
	if err != nil {
		return err
	}
	defer closeImage()

	vehicles, err := api.Vehicles(ctx)
	if err != nil {
		return err
	}
	vs, err := console.New(api).EditVehicle(ctx, vehicles, *id, patch, img)
	if err != nil {
		return err
	}
	for _, v := range vs {
		if v.ID.Hex() == *id {
			fmt.Printf("updated %s (%s)\n", *id, v.Name)
		}
	}
	return nil
}

// setOnly reports which flags were given on the command line, so an edit
// only sends those fields.
func setOnly(fs *flag.FlagSet) map[string]bool {
	given := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { given[f.Name] = true })
	return given
}

func splitList(csv string) []models.LooseString {
	out := make([]models.LooseString, 0)
	for _, item := range strings.Split(csv, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, models.LooseString(item))
		}
	}
	return out
}

type setFlags []string

func (s *setFlags) String() string     { return strings.Join(*s, ",") }
func (s *setFlags) Set(v string) error { *s = append(*s, v); return nil }

func runSettings(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	qrPath := fs.String("qr", "", "upload a new payment QR image")
	var sets setFlags
	fs.Var(&sets, "set", "field=value, repeatable; phones and emails take comma separated lists")
	_ = fs.Parse(args)

	settings, err := api.ContactSettings(ctx)
	if err != nil {
		return err
	}
	form := console.NewSettingsForm(*settings)

	if len(sets) == 0 && *qrPath == "" {
		printSettings(form)
		return nil
	}

	for _, kv := range sets {
		field, value, ok := strings.Cut(kv, "=")
		if !ok || !form.Set(field, value) {
			return fmt.Errorf("cannot set %q", kv)
		}
	}

	qr, closeQR, err := openImage(*qrPath)
	if err != nil {
		return err
	}
	defer closeQR()

	saved, err := console.New(api).SaveSettings(ctx, form, qr)
	if err != nil {
		return err
	}
	printSettings(console.NewSettingsForm(*saved))
	return nil
}

// openImage opens path for upload. An empty path yields a nil file.
func openImage(path string) (*console.ImageFile, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	if !utils.IsImageFile(path) {
		return nil, nil, fmt.Errorf("%s is not an image", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	img := &console.ImageFile{
		Name:        filepath.Base(path),
		ContentType: utils.GetContentType(path),
		Body:        f,
	}
	return img, func() { f.Close() }, nil
}

func printSettings(f *console.SettingsForm) {
	s := f.Settings
	fmt.Printf("%s\n%s\n%s\n%s\n\n", s.BusinessName, s.AddressLine1, s.AddressLine2, s.AddressLine3)
	fmt.Printf("Phones:   %s\nEmails:   %s\n", strings.Join(f.Phones, ", "), strings.Join(f.Emails, ", "))
	fmt.Printf("Hours:    %s / %s / %s\n", s.BusinessHoursWeekdays, s.BusinessHoursSaturday, s.BusinessHoursSunday)
	fmt.Printf("Bank:     %s, %s (%s) A/c %s, %s\n", s.BankName, s.Branch, s.IFSC, s.AccountNumber, s.AccountHolderName)
	fmt.Printf("UPI:      %s\nQR:       %s\n", s.UPIID, s.QRImageURL)
}

func findMessage(ms []models.ContactMessage, id string) (models.ContactMessage, bool) {
	for _, m := range ms {
		if m.ID.Hex() == id {
			return m, true
		}
	}
	return models.ContactMessage{}, false
}

func starMark(starred bool) string {
	if starred {
		return "*"
	}
	return ""
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
