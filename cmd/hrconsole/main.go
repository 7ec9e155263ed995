package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-hr-console/auth"
	"github.com/jrsteele09/go-hr-console/guard"
	"github.com/jrsteele09/go-hr-console/httpapi"
	"github.com/jrsteele09/go-hr-console/internal/config"
	"github.com/jrsteele09/go-hr-console/session"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("Error: %s\n", err)
	}
}

func run(args []string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	setupLogging(c.GetEnv())

	store, err := session.NewFileStore(c.GetDataFolder())
	if err != nil {
		return fmt.Errorf("session store: %w", err)
	}

	client, err := httpapi.NewClient(c.GetBaseURL(), store,
		httpapi.WithTimeout(c.GetRequestTimeout()),
		httpapi.WithOnSessionExpired(func() {
			fmt.Fprintln(os.Stderr, "Session expired - run `hrconsole login` to sign in again.")
		}),
	)
	if err != nil {
		return fmt.Errorf("api client: %w", err)
	}

	authService, err := auth.NewService(client, store)
	if err != nil {
		return fmt.Errorf("auth service: %w", err)
	}

	app := &console{
		config: c,
		store:  store,
		client: client,
		auth:   authService,
	}

	if len(args) == 0 {
		app.usage()
		return nil
	}
	return app.dispatch(context.Background(), args[0], args[1:])
}

func setupLogging(env string) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if env == "DEV" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// checkGuard enforces a navigation guard before a command runs, mirroring the
// route guards of the web console: a denied check tells the user where they
// were redirected instead of rendering the screen.
func checkGuard(g guard.Guard) error {
	decision := g.Check()
	if decision.Allowed {
		return nil
	}
	if decision.RedirectTo == guard.RouteLogin {
		return errors.New("not signed in - run `hrconsole login` first")
	}
	return errors.New("not permitted - this screen needs the admin role")
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
