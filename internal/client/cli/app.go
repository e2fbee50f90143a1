package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trademinutes/tmclient/internal/client/catalog"
	"github.com/trademinutes/tmclient/internal/client/client"
	"github.com/trademinutes/tmclient/internal/client/config"
	"github.com/trademinutes/tmclient/internal/client/debuglog"
	"github.com/trademinutes/tmclient/internal/client/forms"
	"github.com/trademinutes/tmclient/internal/client/models"
	"github.com/trademinutes/tmclient/internal/client/nav"
	"github.com/trademinutes/tmclient/internal/client/notifications"
	"github.com/trademinutes/tmclient/internal/client/session"
	"github.com/trademinutes/tmclient/internal/client/tags"
	"github.com/trademinutes/tmclient/internal/client/theme"
	"github.com/trademinutes/tmclient/internal/common"
	"github.com/trademinutes/tmclient/internal/logging"
)

type delayed struct {
	d  time.Duration
	fn func()
}

type App struct {
	config   *config.Config
	db       *sql.DB
	api      client.Client
	sessions *session.Store
	guard    *session.Guard
	router   *nav.Router
	theme    *theme.Controller
	catalog  *catalog.Catalog
	notes    *notifications.Store
	poller   *notifications.Poller
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer

	// sleep, now and mdStyle are replaced in tests.
	sleep   func(time.Duration)
	now     func() time.Time
	mdStyle func() string

	mounted      string
	profile      *models.Profile
	trace        *debuglog.Trace
	onboarding   *tags.Editor
	servicesPage int
	pending      []delayed
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.New(os.Stderr, c.LogLevel)

	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	cat, err := catalog.Load()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	api := client.NewHTTPClient(c.APIBaseURL, c.NotificationsURL,
		client.WithRequestTimeout(c.RequestTimeout),
		client.WithLogger(log),
	)

	return newApp(c, db, api, cat, os.Stdin, os.Stdout, log), nil
}

func newApp(c *config.Config, db *sql.DB, api client.Client, cat *catalog.Catalog, in io.Reader, out io.Writer, log logging.Logger) *App {
	a := &App{
		config:       c,
		db:           db,
		api:          api,
		catalog:      cat,
		log:          log,
		reader:       bufio.NewReader(in),
		out:          out,
		sleep:        time.Sleep,
		now:          time.Now,
		onboarding:   tags.New(),
		servicesPage: 1,
	}
	a.sessions = session.NewStore(db)
	a.router = nav.NewRouter(common.RouteHome)
	a.guard = session.NewGuard(a.sessions, api, a.router, log)
	a.theme = theme.NewController(a.sessions)
	a.notes = notifications.NewStore(api, log)
	a.poller = notifications.NewPoller(a.notes, c.PollInterval, log)
	a.mdStyle = func() string { return string(a.theme.Mode()) }
	return a
}

// Run starts the REPL and blocks until the user exits or ctx is done. The
// notification poller and pending confirmations are wound down before it
// returns.
func (a *App) Run(ctx context.Context) error {
	if err := a.theme.Load(ctx); err != nil {
		a.log.Warn(ctx, "loading theme failed", "error", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		a.Root(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.poller.Stop()
		a.notes.Wait()
		return nil
	})
	return g.Wait()
}

// Close releases the local database.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to TradeMinutes CLI (type 'help' for commands)")
	a.settle(ctx)
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

func (a *App) getStatus(ctx context.Context) string {
	parts := []string{a.router.Current().Path}

	if tok, err := a.sessions.Token(ctx); err == nil {
		who, expired := "", false
		if c, ok := session.ParseClaims(tok); ok {
			who = c.Email
			expired = c.Expired(a.now())
		}
		if who == "" && a.profile != nil {
			who = a.profile.Email
		}
		if who != "" {
			parts = append(parts, who)
		}
		if expired {
			parts = append(parts, "expired")
		}
		if n := a.notes.UnreadCount(); n > 0 {
			parts = append(parts, fmt.Sprintf("%d unread", n))
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, err := a.sessions.Token(ctx)
	return err == nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// after queues a follow-up. Queued follow-ups run on the REPL goroutine
// once the current command has printed its result.
func (a *App) after(d time.Duration, fn func()) {
	a.pending = append(a.pending, delayed{d: d, fn: fn})
}

func (a *App) formOptions() []forms.Option {
	return []forms.Option{forms.WithAfterFunc(a.after), forms.WithLogger(a.log)}
}

func (a *App) ToggleTheme(ctx context.Context) error {
	m, err := a.theme.Toggle(ctx)
	if err != nil {
		return err
	}
	a.printf("Theme: %s\n", m)
	return nil
}

// Debug prints the trace of the last auth form.
func (a *App) Debug(context.Context) error {
	if a.trace == nil || len(a.trace.Lines()) == 0 {
		a.println("Debug log is empty.")
		return nil
	}
	a.println(a.theme.Styles().Title.Render("Debug Log"))
	for _, l := range a.trace.Lines() {
		a.println(l)
	}
	return nil
}

func (a *App) Back(context.Context) error {
	if !a.router.Back() {
		a.println("Nowhere to go back to.")
		return nil
	}
	a.mounted = ""
	return nil
}

// Open navigates to route and forces a mount even when it is the current
// page.
func (a *App) Open(_ context.Context, route string) error {
	a.router.Navigate(route)
	a.mounted = ""
	return nil
}
