package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/GregMSThompson/travel-backend/internal/bootstrap"
	"github.com/GregMSThompson/travel-backend/internal/config"
	"github.com/GregMSThompson/travel-backend/internal/services"
	"github.com/GregMSThompson/travel-backend/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

// ask answers a single travel query from the command line:
//
//	ask "Should I visit Lisbon next week?"
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: ask <query>")
		os.Exit(2)
	}
	query := strings.Join(os.Args[1:], " ")
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	exitOnError("config load failed", err, slog.Default())

	bs, err := bootstrap.Run(ctx, cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	tserv := services.NewTravelService(bs.Engine, bs.Tools)
	answer, err := tserv.Answer(logger.ToContext(ctx, bs.Log), query)
	if err != nil {
		bs.Log.Error("answer failed", "error", err)
		bs.Close()
		os.Exit(1)
	}

	fmt.Println(answer)
}
