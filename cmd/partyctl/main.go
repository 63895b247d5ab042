// Command partyctl backs up and restores the party database from the command line.
//
//	partyctl backup [-o file]
//	partyctl restore <file>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"partyinvite/config"
	"partyinvite/internal/domain"
	"partyinvite/internal/repository/sqlstore"
	"partyinvite/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger(os.Stderr, cfg.Environment, cfg.LogLevel)

	if err := run(context.Background(), cfg, logger, os.Args[1:]); err != nil {
		logger.Error("partyctl failed", "error", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: partyctl backup [-o file]")
	fmt.Fprintln(w, "       partyctl restore <file>")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, args []string) error {
	if len(args) == 0 {
		usage(os.Stderr)
		return fmt.Errorf("missing command")
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.BackupTimeout)
	defer cancel()

	db, dialect, err := sqlstore.Open(ctx, cfg.DBUrl, cfg.SQLitePath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := sqlstore.CreateSchema(ctx, db, dialect); err != nil {
		return err
	}
	svc := services.NewBackupService(sqlstore.NewBackupRepository(db, dialect), cfg.BackupTimeout)

	switch args[0] {
	case "backup":
		fs := flag.NewFlagSet("backup", flag.ContinueOnError)
		out := fs.String("o", "", "output file (default backup-<unix-ms>.json)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return backup(ctx, svc, logger, *out)
	case "restore":
		if len(args) != 2 {
			usage(os.Stderr)
			return fmt.Errorf("restore needs exactly one file")
		}
		return restore(ctx, svc, logger, args[1])
	default:
		usage(os.Stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func backup(ctx context.Context, svc domain.BackupService, logger *slog.Logger, path string) error {
	b, err := svc.Export(ctx)
	if err != nil {
		return err
	}
	if path == "" {
		path = fmt.Sprintf("backup-%d.json", time.Now().UnixMilli())
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	logger.Info("backup written",
		"file", path,
		"size", humanize.Bytes(uint64(len(data))),
		"guests", len(b.Guests),
		"comments", len(b.Comments),
		"photos", len(b.Photos),
		"poll_options", len(b.PollOptions),
		"poll_votes", len(b.PollVotes),
	)
	return nil
}

func restore(ctx context.Context, svc domain.BackupService, logger *slog.Logger, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	var b domain.Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("decode backup: %w", err)
	}
	if err := svc.Restore(ctx, &b); err != nil {
		return err
	}
	logger.Info("database restored",
		"file", path,
		"size", humanize.Bytes(uint64(len(data))),
		"backup_time", humanize.Time(b.Timestamp),
		"guests", len(b.Guests),
		"poll_votes", len(b.PollVotes),
	)
	return nil
}
