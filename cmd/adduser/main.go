// adduser 直接在資料庫建立帳號（含預設分類），供部署初期或無法走 API 時使用
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"expense-tracker/internal/apperror"
	"expense-tracker/internal/config"
	"expense-tracker/internal/database"
	"expense-tracker/internal/service"

	"golang.org/x/term"
)

// 測試可覆寫
var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	register        = service.Register
	exitFunc        = os.Exit
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			exitFunc(0)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	username := fs.String("user", "", "Username")
	email := fs.String("email", "", "Email address")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	skipMigrate := fs.Bool("skip-migrate", false, "Do not run database migrations first")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" || *email == "" {
		fmt.Fprintln(stdout, "Usage: adduser -user <username> -email <email> [-password <password>]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: user, email")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password cannot be empty")
	}

	cfg := loadConfig()
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	ctx := context.Background()
	db, err := newPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if !*skipMigrate {
		if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	user, err := register(ctx, db, *username, *email, password)
	if err != nil {
		if apperror.KindOf(err) != apperror.KindInternal {
			return errors.New(apperror.PublicMessage(err))
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created successfully with ID %d\n", user.Username, user.ID)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	// 非終端機（管線、測試）逐行讀取
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
