package superadmin

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	actorapp "stayops/internal/application/actor"
	infraauth "stayops/internal/infrastructure/auth"
	"stayops/internal/infrastructure/config"
	"stayops/internal/infrastructure/database"
	"stayops/internal/infrastructure/repository"
	"stayops/internal/shared/logger"
)

var (
	env       string
	adminName string
	email     string
)

// NewCommand returns the create-superadmin command. Superadmin accounts
// are provisioned from the CLI only; there is no HTTP endpoint for it.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-superadmin",
		Short: "Create a superadmin account",
		Long:  `Create a superadmin account that can manage agents, hotels and master data through the API.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&adminName, "name", "", "Display name for the superadmin (required)")
	cmd.Flags().StringVar(&email, "email", "", "Login email for the superadmin (required)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close(db)

	repo := repository.NewSuperadminRepository(db)
	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	service := actorapp.NewSuperadminService(repo, hasher, logger.NewLogger())

	id, err := service.Create(context.Background(), adminName, email, password)
	if err != nil {
		return fmt.Errorf("failed to create superadmin: %w", err)
	}

	fmt.Printf("Superadmin created with id %d\n", id)
	return nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if strings.TrimSpace(string(password)) == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	return string(password), nil
}
