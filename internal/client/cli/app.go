package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dmitrijs2005/teamadmin/internal/client/api"
	"github.com/dmitrijs2005/teamadmin/internal/client/config"
	"github.com/dmitrijs2005/teamadmin/internal/client/queue"
	"github.com/dmitrijs2005/teamadmin/internal/server/models"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type Tab string

const (
	TabAds   Tab = "events"
	TabUsers Tab = "users"
)

// moderationQueue is the part of queue.Queue the console drives without
// knowing the record type.
type moderationQueue interface {
	Load(ctx context.Context) error
	Verify(ctx context.Context) error
	Reject(ctx context.Context) error
	Next() bool
	Prev() bool
	CanNext() bool
	CanPrev() bool
	Len() int
	Index() int
	State() queue.State
	Notice() (queue.Notice, bool)
	Dismiss()
}

type App struct {
	config *config.Config
	ads    *queue.Queue[models.Ad]
	users  *queue.Queue[models.User]
	tab    Tab
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	client, err := api.NewClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}
	return newApp(c, client, os.Stdout), nil
}

func newApp(c *config.Config, client *api.Client, out io.Writer) *App {
	opts := queue.Options{NoticeDuration: c.NoticeDuration}
	return &App{
		config: c,
		ads:    queue.New[models.Ad](adSource{client}, queue.UpcomingAds, opts),
		users:  queue.New[models.User](userSource{client}, queue.ServerOrder[models.User], opts),
		tab:    TabAds,
		out:    out,
	}
}

// Run opens the events tab and serves commands from stdin.
func (a *App) Run(ctx context.Context) {
	printlnFn("Moderation console (type 'help' for commands)")
	_ = a.SwitchTab(ctx, TabAds)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner, isTerminal(int(os.Stdin.Fd())))
}

func (a *App) active() moderationQueue {
	if a.tab == TabUsers {
		return a.users
	}
	return a.ads
}

func (a *App) status() string {
	q := a.active()
	s := fmt.Sprintf("%s %s", a.tab, q.State())
	if q.State() == queue.StateReady && q.Len() > 0 {
		s += fmt.Sprintf(" %d/%d", q.Index()+1, q.Len())
	}
	return s
}

// SwitchTab makes tab active and fetches it again, as opening a tab does in
// the web panel.
func (a *App) SwitchTab(ctx context.Context, tab Tab) error {
	a.tab = tab
	err := a.active().Load(ctx)
	a.render()
	return err
}

func (a *App) Reload(ctx context.Context) error {
	err := a.active().Load(ctx)
	a.render()
	return err
}

func (a *App) Next(ctx context.Context) error {
	if !a.active().Next() {
		fmt.Fprintln(a.out, "Next is disabled: already at the last record.")
		return nil
	}
	a.render()
	return nil
}

func (a *App) Prev(ctx context.Context) error {
	if !a.active().Prev() {
		fmt.Fprintln(a.out, "Previous is disabled: already at the first record.")
		return nil
	}
	a.render()
	return nil
}

func (a *App) Verify(ctx context.Context) error {
	return a.decide(ctx, a.active().Verify)
}

func (a *App) Reject(ctx context.Context) error {
	return a.decide(ctx, a.active().Reject)
}

func (a *App) decide(ctx context.Context, op func(context.Context) error) error {
	err := op(ctx)
	if errors.Is(err, queue.ErrNothingSelected) {
		fmt.Fprintln(a.out, "Nothing available.")
		return err
	}
	a.render()
	return err
}

func (a *App) Show(ctx context.Context) error {
	a.render()
	return nil
}

func (a *App) Dismiss(ctx context.Context) error {
	a.active().Dismiss()
	a.render()
	return nil
}

// render prints the active tab the way the web panel lays it out.
func (a *App) render() {
	q := a.active()

	fmt.Fprintf(a.out, "== %s ==\n", tabTitle(a.tab))

	notice, hasNotice := q.Notice()
	switch q.State() {
	case queue.StateLoading:
		fmt.Fprintln(a.out, "Loading...")
		return
	case queue.StateError:
		if hasNotice {
			fmt.Fprintf(a.out, "Error: %s (type 'dismiss' to close)\n", notice.Message)
		} else {
			fmt.Fprintln(a.out, "Failed to load; type 'reload'")
		}
		return
	}

	if hasNotice {
		fmt.Fprintf(a.out, "* %s\n", notice.Message)
	}

	if q.Len() == 0 {
		fmt.Fprintln(a.out, emptyText(a.tab))
		return
	}

	if a.tab == TabUsers {
		u, _ := a.users.Current()
		renderUser(a.out, u)
	} else {
		ad, _ := a.ads.Current()
		renderAd(a.out, ad)
	}
	renderNav(a.out, q.Index(), q.Len(), q.CanPrev(), q.CanNext())
}

func tabTitle(t Tab) string {
	if t == TabUsers {
		return "Users"
	}
	return "Events"
}

func emptyText(t Tab) string {
	if t == TabUsers {
		return "No users available."
	}
	return "No upcoming Events available."
}
