// Command deskmate is a support-automation CLI: it ingests product
// datasets, answers product questions, and turns customer-query
// spreadsheets into templated email replies.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/time/rate"

	ollamaembed "github.com/oakline-labs/deskmate/internal/adapters/driven/embedding/ollama"
	tfidfembed "github.com/oakline-labs/deskmate/internal/adapters/driven/embedding/tfidf"
	memindex "github.com/oakline-labs/deskmate/internal/adapters/driven/index/memory"
	consolemail "github.com/oakline-labs/deskmate/internal/adapters/driven/mailer/console"
	smtpmail "github.com/oakline-labs/deskmate/internal/adapters/driven/mailer/smtp"
	"github.com/oakline-labs/deskmate/internal/adapters/driven/reader"
	"github.com/oakline-labs/deskmate/internal/adapters/driven/storage/sqlite"
	"github.com/oakline-labs/deskmate/internal/adapters/driving/cli"
	"github.com/oakline-labs/deskmate/internal/config"
	"github.com/oakline-labs/deskmate/internal/core/domain"
	"github.com/oakline-labs/deskmate/internal/core/ports/driven"
	"github.com/oakline-labs/deskmate/internal/core/services"
	"github.com/oakline-labs/deskmate/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configPathFromArgs())
	if err != nil {
		return err
	}
	cli.SetConfig(cfg)

	store, err := sqlite.Open(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	embedder := buildEmbedder(cfg)
	index := memindex.New()
	retrieval := services.NewRetrievalService(store, embedder, index)

	if n, err := store.Count(ctx, domain.CollectionProducts); err == nil {
		logger.Debug("store holds %d products", n)
	}

	// Warm the index so ask works without a prior ingest in this run.
	if err := retrieval.Reindex(ctx, domain.CollectionProducts); err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	tables := reader.New()
	sendRate := rate.Limit(cfg.Batch.SendRate)
	mailer := buildMailer(cfg)

	ingest := services.NewIngestService(store, tables, retrieval)
	responder := services.NewResponderService(retrieval, tables, mailer, sendRate)
	dryRun := services.NewResponderService(retrieval, tables, consolemail.New(os.Stdout), sendRate)

	cli.SetIngestService(ingest)
	cli.SetAnswerService(responder)
	cli.SetResponderService(responder)
	cli.SetDryRunResponderService(dryRun)
	cli.SetCatalogService(services.NewCatalogService(store, retrieval))
	cli.SetSubmitService(services.NewSubmitService(mailer, cfg.SMTP.From))

	return cli.Execute()
}

// buildEmbedder selects the embedding backend from config.
func buildEmbedder(cfg *config.Config) driven.Embedder {
	if cfg.Embedding.Provider == "ollama" {
		return ollamaembed.New(ollamaembed.Config{
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
		})
	}
	return tfidfembed.New()
}

// buildMailer returns the SMTP mailer, or a console printer when mail
// is not configured so batch runs still produce visible output.
func buildMailer(cfg *config.Config) driven.Mailer {
	m, err := smtpmail.New(smtpmail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		FromName: cfg.SMTP.FromName,
		UseTLS:   cfg.SMTP.UseTLS,
	})
	if err != nil {
		logger.Warn("mail not configured, batch replies print to stdout: %v", err)
		return consolemail.New(os.Stdout)
	}
	return m
}

// configPathFromArgs extracts --config before cobra parses flags, since
// services are wired from the config ahead of Execute.
func configPathFromArgs() string {
	args := os.Args[1:]
	for i, arg := range args {
		switch {
		case arg == "--config" && i+1 < len(args):
			return args[i+1]
		case len(arg) > len("--config=") && arg[:len("--config=")] == "--config=":
			return arg[len("--config="):]
		}
	}
	return ""
}
