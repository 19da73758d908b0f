package common

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/sandeepkv93/notes-ai-backend/internal/observability"
	"github.com/sandeepkv93/notes-ai-backend/internal/tools/ui"
)

type CIResult struct {
	OK      bool     `json:"ok"`
	Title   string   `json:"title"`
	Details []string `json:"details,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func PrintCIResult(ok bool, title string, details []string, err error) {
	WriteCIResult(os.Stdout, ok, title, details, err)
}

func WriteCIResult(w io.Writer, ok bool, title string, details []string, err error) {
	result := CIResult{OK: ok, Title: title, Details: details}
	if err != nil {
		result.Error = err.Error()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
}

// Action is one unit of tool work. It returns human-readable detail lines.
type Action func(ctx context.Context) ([]string, error)

// RunAction executes fn either through the interactive UI or, with ci set,
// directly under timeout with a JSON result on stdout.
func RunAction(tool, command string, ci bool, timeout time.Duration, fn Action) ([]string, error) {
	var (
		details []string
		err     error
	)
	if ci {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		details, err = fn(ctx)
		cancel()
		PrintCIResult(err == nil, tool+" "+command, details, err)
	} else {
		details, err = ui.Run(tool+" "+command, fn)
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	observability.RecordToolCommandRun(context.Background(), tool, command, outcome)
	return details, err
}
