// Command createuser creates a user account from the command line. There is
// no public registration endpoint, so this is how Instructors, Clients and
// superusers are provisioned.
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

	"task_tracker/internal/config"
	"task_tracker/internal/logger"
	"task_tracker/internal/model"
	"task_tracker/internal/repository"
	"task_tracker/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// readPassword is replaced in tests to avoid touching the terminal.
var readPassword = term.ReadPassword

type options struct {
	username  string
	email     string
	phone     string
	password  string
	bio       string
	userType  int
	superuser bool
}

func parseOptions(args []string, output io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("createuser", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.username, "username", "", "username (required)")
	fs.StringVar(&opts.email, "email", "", "email address (required)")
	fs.StringVar(&opts.phone, "phone", "", "phone number used to log in, e.g. +1234567890 (required)")
	fs.StringVar(&opts.password, "password", "", "password; prompted for when omitted")
	fs.StringVar(&opts.bio, "bio", "", "optional bio")
	fs.IntVar(&opts.userType, "type", 0, "user type: 1 = Instructor, 2 = Client (default Client, Instructor for superusers)")
	fs.BoolVar(&opts.superuser, "superuser", false, "create a staff superuser")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func (o *options) input() model.CreateUserInput {
	in := model.CreateUserInput{
		Username:    o.username,
		Email:       o.email,
		PhoneNumber: o.phone,
		Password:    o.password,
		UserType:    model.UserType(o.userType),
	}
	if o.bio != "" {
		bio := o.bio
		in.Bio = &bio
	}
	return in
}

// promptPassword asks for the password twice without echo.
func promptPassword(w io.Writer) (string, error) {
	fmt.Fprint(w, "Password: ")
	first, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	fmt.Fprint(w, "Password (again): ")
	second, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	if string(first) != string(second) {
		return "", errors.New("passwords didn't match")
	}
	if len(first) == 0 {
		return "", errors.New("password may not be blank")
	}
	return string(first), nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, relying on environment variables")
	}

	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	log := logger.New(os.Getenv("APP_ENV"))
	defer func() { _ = log.Sync() }()

	if opts.password == "" {
		opts.password, err = promptPassword(os.Stdout)
		if err != nil {
			log.Fatal("failed to read password", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, log); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			for field, msg := range verr.Fields {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
			}
			os.Exit(1)
		}
		log.Fatal("failed to create user", zap.Error(err))
	}
}

func run(ctx context.Context, opts *options, log *zap.Logger) error {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}
	pool, err := config.ConnectDB(ctx, dbCfg, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := config.RunMigrations(ctx, pool); err != nil {
		return err
	}

	users := service.NewUserService(repository.NewUserRepository(pool), log)

	var user *model.User
	if opts.superuser {
		user, err = users.CreateSuperuser(ctx, opts.input())
	} else {
		user, err = users.CreateUser(ctx, opts.input())
	}
	if err != nil {
		return err
	}

	fmt.Printf("Created %s %q (id %d)\n", user.UserType, user.Username, user.ID)
	return nil
}
