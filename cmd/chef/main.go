package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/recipe-chef/config"
	"github.com/pageza/recipe-chef/internal/console"
	"github.com/pageza/recipe-chef/internal/database"
	"github.com/pageza/recipe-chef/internal/service"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, service.NewGenerator))
}

// run executes one session and returns the process exit code. Service and
// unexpected generation errors still exit 0; only configuration and input
// errors exit 1.
func run(args []string, stdin io.Reader, stdout io.Writer, newGenerator service.GeneratorFactory) int {
	flags := flag.NewFlagSet("chef", flag.ContinueOnError)
	modelName := flags.String("model", "", "model name (overrides CHEF_MODEL)")
	provider := flags.String("provider", "", "generation backend: gemini or openai (overrides CHEF_PROVIDER)")
	timeout := flags.Duration("timeout", 0, "bound on the generation call (overrides CHEF_TIMEOUT)")
	draftID := flags.String("draft", "", "print an archived recipe draft instead of generating one")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if config.GetEnvironment().LoadsDotEnv() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Failed to load .env file: %v", err)
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			fmt.Fprintln(stdout, cfgErr.Error())
		} else {
			fmt.Fprintf(stdout, "Error: %v\n", err)
		}
		return 1
	}

	if *modelName != "" {
		cfg.Model = *modelName
	}
	if *provider != "" {
		cfg.Provider = config.Provider(*provider)
	}
	if *timeout != 0 {
		cfg.RequestTimeout = *timeout
	}
	if err := config.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var drafts service.DraftStore
	if cfg.DraftsEnabled() {
		var client *redis.Client
		client, err = database.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Printf("Draft archive disabled: %v", err)
		} else {
			defer client.Close()
			drafts = service.NewRedisDraftStore(client)
		}
	}

	if *draftID != "" {
		app := console.NewApp(stdin, stdout, nil, drafts, cfg.RequestTimeout)
		if err := app.ShowDraft(ctx, *draftID); err != nil {
			fmt.Fprintf(stdout, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	generator, err := newGenerator(ctx, cfg)
	if err != nil {
		fmt.Fprintf(stdout, "Error initialising %s client. Check your key and network connection: %v\n", cfg.Provider, err)
		return 1
	}

	app := console.NewApp(stdin, stdout, generator, drafts, cfg.RequestTimeout)
	if _, err := app.Run(ctx); err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}
	return 0
}
