package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/vanshika/creatorgen/internal/domain"
	"github.com/vanshika/creatorgen/internal/generator"
	"github.com/vanshika/creatorgen/internal/query"
	"github.com/vanshika/creatorgen/internal/report"
)

const defaultInputPath = "generated_transactions_30days.json"

func inputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "Dataset file produced by generate",
		Value:   defaultInputPath,
	}
}

func summaryCommand() *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Summarize revenue, channels, creators and daily totals of a dataset",
		Flags: []cli.Flag{
			inputFlag(),
			&cli.IntFlag{
				Name:  "days",
				Usage: "Days used for the daily average (0 counts distinct dates)",
				Value: 30,
			},
		},
		Action: func(c *cli.Context) error {
			doc, err := generator.ReadDocument(c.String("input"))
			if err != nil {
				return fmt.Errorf("failed to read dataset: %w", err)
			}

			summary := report.Summarize(doc, c.Int("days"))
			if c.Bool("json") {
				return writeJSON(c.App.Writer, summary)
			}
			return report.Write(c.App.Writer, summary)
		},
	}
}

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "Evaluate a jq expression against a dataset",
		Description: `With --expr the expression runs once against the whole document and every
result is printed. With --where it runs per transaction and the transactions
whose first result is truthy are printed, e.g. --where '.channel == "tips" and .amount >= 1000'.`,
		Flags: []cli.Flag{
			inputFlag(),
			&cli.StringFlag{
				Name:  "expr",
				Usage: "jq expression evaluated against the whole document",
			},
			&cli.StringFlag{
				Name:  "where",
				Usage: "jq predicate used to filter transactions",
			},
		},
		Action: func(c *cli.Context) error {
			expr, where := c.String("expr"), c.String("where")
			if (expr == "") == (where == "") {
				return fmt.Errorf("exactly one of --expr or --where is required")
			}

			doc, err := generator.ReadDocument(c.String("input"))
			if err != nil {
				return fmt.Errorf("failed to read dataset: %w", err)
			}

			if where != "" {
				q, err := query.Compile(where)
				if err != nil {
					return err
				}
				matched, err := q.SelectTransactions(c.Context, doc.Transactions)
				if err != nil {
					return err
				}
				if c.Bool("json") {
					return writeJSON(c.App.Writer, matched)
				}
				return printTransactions(c.App.Writer, matched)
			}

			q, err := query.Compile(expr)
			if err != nil {
				return err
			}
			results, err := q.Run(c.Context, doc)
			if err != nil {
				return err
			}
			for _, r := range results {
				if err := writeJSON(c.App.Writer, r); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the transactions of a dataset as CSV or JSON",
		Flags: []cli.Flag{
			inputFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format: csv or json",
				Value:   "csv",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   `Output file ("-" for stdout)`,
				Value:   stdoutPath,
			},
		},
		Action: func(c *cli.Context) error {
			format := c.String("format")
			if format != "csv" && format != "json" {
				return fmt.Errorf("unsupported export format %q (want csv or json)", format)
			}

			doc, err := generator.ReadDocument(c.String("input"))
			if err != nil {
				return fmt.Errorf("failed to read dataset: %w", err)
			}

			path := c.String("output")
			if path == stdoutPath {
				return exportTransactions(c.App.Writer, format, doc.Transactions)
			}

			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			if err := exportTransactions(file, format, doc.Transactions); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", path, err)
			}
			return nil
		},
	}
}

func exportTransactions(w io.Writer, format string, transactions []domain.Transaction) error {
	if format == "json" {
		return writeJSON(w, transactions)
	}
	return generator.WriteTransactionsCSV(w, transactions)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printTransactions(w io.Writer, transactions []domain.Transaction) error {
	if len(transactions) == 0 {
		_, err := fmt.Fprintln(w, "No transactions matched")
		return err
	}

	fmt.Fprintf(w, "Matched %d transaction(s):\n\n", len(transactions))
	for _, tx := range transactions {
		fmt.Fprintf(w, "%s  %s  %-13s  %-10s  %s  $%.2f\n",
			tx.ID, tx.Timestamp, tx.Channel, tx.CreatorAlias, tx.FanID, tx.Amount)
	}
	return nil
}
