package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/abhishek622/moviereviews/auth/internal/controller/auth"
	authgateway "github.com/abhishek622/moviereviews/auth/internal/gateway/http"
	"github.com/abhishek622/moviereviews/internal/app"
	"github.com/abhishek622/moviereviews/internal/config"
)

const serviceName = "auth"

type options struct {
	login    bool
	register bool
	logout   bool
	whoami   bool
	email    string
	password string
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to the configuration file")
	var o options
	flag.BoolVar(&o.login, "login", false, "Log in with -email and -password")
	flag.BoolVar(&o.register, "register", false, "Create an account with -email and -password")
	flag.BoolVar(&o.logout, "logout", false, "Forget the stored credential")
	flag.BoolVar(&o.whoami, "whoami", false, "Print the logged in user")
	flag.StringVar(&o.email, "email", "", "Account email")
	flag.StringVar(&o.password, "password", os.Getenv("MOVIEREVIEWS_PASSWORD"), "Account password (defaults to $MOVIEREVIEWS_PASSWORD)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Setup(ctx, afero.NewOsFs(), *configPath, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	ctrl := auth.New(authgateway.New(a.Client), a.Session, a.Logger)
	err = run(ctx, ctrl, o, os.Stdout)
	a.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, ctrl *auth.Controller, o options, w io.Writer) error {
	switch {
	case o.login:
		if err := ctrl.Login(ctx, o.email, o.password); err != nil {
			return err
		}
		fmt.Fprintln(w, "Logged in.")
	case o.register:
		if err := ctrl.Register(ctx, o.email, o.password); err != nil {
			return err
		}
		fmt.Fprintln(w, "Registered successfully. Log in to continue.")
	case o.logout:
		ctrl.Logout()
		fmt.Fprintln(w, "Logged out.")
	case o.whoami:
		name, err := ctrl.WhoAmI()
		if err != nil {
			return err
		}
		if name == "" {
			name = "(unknown user)"
		}
		fmt.Fprintln(w, name)
	default:
		flag.Usage()
		return errors.New("one of -login, -register, -logout or -whoami is required")
	}
	return nil
}
