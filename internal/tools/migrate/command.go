package migrate

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/sandeepkv93/notes-ai-backend/internal/config"
	"github.com/sandeepkv93/notes-ai-backend/internal/database"
	"github.com/sandeepkv93/notes-ai-backend/internal/tools/common"
)

const toolName = "migrate"

type options struct {
	envFile string
	timeout time.Duration
	ci      bool
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema tooling",
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "operation timeout")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")

	cmd.AddCommand(
		newUpCommand(opts),
		newStatusCommand(opts),
	)
	return cmd
}

func newUpCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create or update accounts, verification_codes and notes tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := common.RunAction(toolName, "up", opts.ci, opts.timeout, func(ctx context.Context) ([]string, error) {
				cfg, db, err := loadConfigDB(opts.envFile)
				if err != nil {
					return nil, err
				}
				defer func() { _ = database.Close(db) }()
				return Up(ctx, cfg, db)
			})
			return err
		},
	}
}

func newStatusCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report which managed tables exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := common.RunAction(toolName, "status", opts.ci, opts.timeout, func(ctx context.Context) ([]string, error) {
				_, db, err := loadConfigDB(opts.envFile)
				if err != nil {
					return nil, err
				}
				defer func() { _ = database.Close(db) }()
				return Status(ctx, db)
			})
			return err
		},
	}
}

func Up(ctx context.Context, cfg *config.Config, db *gorm.DB) ([]string, error) {
	if err := database.Migrate(db.WithContext(ctx)); err != nil {
		return nil, err
	}
	return []string{"schema migration applied", "driver: " + cfg.DatabaseDriver}, nil
}

// Status fails when any managed table is missing so CI can gate on it.
func Status(ctx context.Context, db *gorm.DB) ([]string, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	tables, err := database.Status(db)
	if err != nil {
		return nil, err
	}
	details := []string{"database reachable"}
	missing := 0
	for _, t := range tables {
		state := "present"
		if !t.Exists {
			state = "missing"
			missing++
		}
		details = append(details, fmt.Sprintf("%s: %s", t.Table, state))
	}
	if missing > 0 {
		return details, fmt.Errorf("%d table(s) missing; run migrate up", missing)
	}
	return details, nil
}

func loadConfigDB(envFile string) (*config.Config, *gorm.DB, error) {
	if err := common.LoadEnvFile(envFile); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
