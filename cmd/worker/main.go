package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sandeepkv93/notes-ai-backend/internal/di"
)

func main() {
	w, err := di.InitializeWorker()
	if err != nil {
		log.Fatal(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil {
		w.Logger.Error("worker exited", "error", err)
		os.Exit(1)
	}
}
