// Command report prints per-project time totals for one organization.
//
// Usage:
//
//	report --org=<uuid> [--user=<uuid>] [--from=2024-06-01] [--to=2024-06-30] [--json]
//
// Dates are inclusive calendar days in UTC. Configuration is read like the
// server's.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/adapter/postgres"
	reportrepo "github.com/fpvlvr/esclavizador/internal/adapter/postgres/report"
	"github.com/fpvlvr/esclavizador/internal/app"
	"github.com/fpvlvr/esclavizador/internal/config"
	"github.com/fpvlvr/esclavizador/internal/domain"
	"github.com/fpvlvr/esclavizador/internal/service/report"
)

func main() {
	orgFlag := flag.String("org", "", "organization id")
	userFlag := flag.String("user", "", "restrict to one user id")
	fromFlag := flag.String("from", "", "first day, YYYY-MM-DD")
	toFlag := flag.String("to", "", "last day, YYYY-MM-DD")
	asJSON := flag.Bool("json", false, "print JSON instead of a table")
	flag.Parse()

	orgID, err := uuid.Parse(*orgFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: report --org=<uuid> [--user=<uuid>] [--from=YYYY-MM-DD] [--to=YYYY-MM-DD] [--json]")
		os.Exit(2)
	}

	filter, err := parseFilter(*userFlag, *fromFlag, *toFlag)
	if err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	completed, err := reportrepo.New(pool).ListCompleted(ctx, orgID, filter)
	if err != nil {
		logger.Error("list completed entries", slog.String("error", err.Error()))
		os.Exit(1)
	}

	aggs := report.AggregateByProject(completed)
	write := printTable
	if *asJSON {
		write = printJSON
	}
	if err := write(os.Stdout, aggs); err != nil {
		logger.Error("write report", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func parseFilter(user, from, to string) (domain.ReportFilter, error) {
	var f domain.ReportFilter
	if user != "" {
		id, err := uuid.Parse(user)
		if err != nil {
			return f, fmt.Errorf("user: %w", err)
		}
		f.UserID = &id
	}
	if from != "" {
		d, err := domain.ParseDate(from)
		if err != nil {
			return f, err
		}
		f.StartDate = &d
	}
	if to != "" {
		d, err := domain.ParseDate(to)
		if err != nil {
			return f, err
		}
		f.EndDate = &d
	}
	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		return f, fmt.Errorf("--to must not be before --from")
	}
	return f, nil
}

func printTable(out io.Writer, aggs []domain.ProjectAggregate) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROJECT\tTOTAL\tBILLABLE")
	var total, billable int64
	for _, a := range aggs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.ProjectName, formatSeconds(a.TotalSeconds), formatSeconds(a.BillableSeconds))
		total += a.TotalSeconds
		billable += a.BillableSeconds
	}
	fmt.Fprintf(w, "\t%s\t%s\n", formatSeconds(total), formatSeconds(billable))
	return w.Flush()
}

func printJSON(out io.Writer, aggs []domain.ProjectAggregate) error {
	type row struct {
		ProjectID       uuid.UUID `json:"project_id"`
		ProjectName     string    `json:"project_name"`
		TotalSeconds    int64     `json:"total_seconds"`
		BillableSeconds int64     `json:"billable_seconds"`
	}
	rows := make([]row, len(aggs))
	for i, a := range aggs {
		rows[i] = row{a.ProjectID, a.ProjectName, a.TotalSeconds, a.BillableSeconds}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func formatSeconds(s int64) string {
	return fmt.Sprintf("%d:%02d:%02d", s/3600, s%3600/60, s%60)
}
