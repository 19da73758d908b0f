package codes

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/notes-ai-backend/internal/config"
	"github.com/sandeepkv93/notes-ai-backend/internal/database"
	"github.com/sandeepkv93/notes-ai-backend/internal/repository"
	"github.com/sandeepkv93/notes-ai-backend/internal/service"
	"github.com/sandeepkv93/notes-ai-backend/internal/tools/common"
)

const toolName = "codes"

type options struct {
	envFile string
	timeout time.Duration
	ci      bool
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{Use: "codes", Short: "Verification code maintenance"}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "operation timeout")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")
	cmd.AddCommand(newPurgeCommand(opts))
	return cmd
}

func newPurgeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete verification codes older than OTP_TTL",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := common.RunAction(toolName, "purge", opts.ci, opts.timeout, func(ctx context.Context) ([]string, error) {
				if err := common.LoadEnvFile(opts.envFile); err != nil {
					return nil, err
				}
				cfg, err := config.Load()
				if err != nil {
					return nil, err
				}
				if cfg.OTPStore == "redis" {
					return []string{"store: redis", "codes expire natively; nothing to purge"}, nil
				}
				db, err := database.Open(cfg)
				if err != nil {
					return nil, err
				}
				defer func() { _ = database.Close(db) }()
				return Purge(ctx, repository.NewVerificationCodeRepository(db, cfg.OTPTTL), cfg.OTPTTL)
			})
			return err
		},
	}
}

// Purge runs one sweep against repo.
func Purge(ctx context.Context, repo repository.VerificationCodeRepository, ttl time.Duration) ([]string, error) {
	sweeper := service.NewCodeSweeper(repo, time.Minute, slog.Default())
	deleted, err := sweeper.PurgeOnce(ctx)
	if err != nil {
		return nil, fmt.Errorf("purge: %w", err)
	}
	return []string{
		"store: database",
		"ttl: " + ttl.String(),
		fmt.Sprintf("deleted: %d", deleted),
	}, nil
}
