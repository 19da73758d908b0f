package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/notes-ai-backend/internal/tools/common"
)

const toolName = "probe"

type options struct {
	baseURL string
	timeout time.Duration
	ci      bool
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{Use: "probe", Short: "Check a running API instance"}
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "http://localhost:8080", "API base URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "overall probe timeout")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")
	cmd.AddCommand(newHealthCommand(opts))
	return cmd
}

func newHealthCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Verify liveness and per-dependency readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: opts.timeout}
			_, err := common.RunAction(toolName, "health", opts.ci, opts.timeout, func(ctx context.Context) ([]string, error) {
				return Health(ctx, client, opts.baseURL)
			})
			return err
		},
	}
}

type readinessBody struct {
	Status  string  `json:"status"`
	Checks  []check `json:"checks"`
	Details struct {
		Checks []check `json:"checks"`
	} `json:"details"`
}

type check struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error"`
}

// Health hits /health/live then /health/ready and reports every dependency
// check. It fails when the instance is not live or not ready.
func Health(ctx context.Context, client *http.Client, baseURL string) ([]string, error) {
	base := strings.TrimRight(baseURL, "/")
	status, _, err := get(ctx, client, base+"/health/live")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return []string{fmt.Sprintf("live: status %d", status)}, fmt.Errorf("instance not live")
	}
	details := []string{"live: ok"}

	status, raw, err := get(ctx, client, base+"/health/ready")
	if err != nil {
		return details, err
	}
	var body readinessBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return details, fmt.Errorf("decode readiness: %w", err)
	}
	checks := body.Checks
	if len(checks) == 0 {
		checks = body.Details.Checks
	}
	for _, c := range checks {
		line := c.Name + ": healthy"
		if !c.Healthy {
			line = c.Name + ": unhealthy (" + c.Error + ")"
		}
		details = append(details, line)
	}
	if status != http.StatusOK {
		return details, fmt.Errorf("instance not ready (status %d)", status)
	}
	return append(details, "ready: ok"), nil
}

func get(ctx context.Context, client *http.Client, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, raw, nil
}
