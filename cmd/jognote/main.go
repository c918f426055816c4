package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kyoshidajp/jognote/internal/config"
	"github.com/kyoshidajp/jognote/internal/daterange"
	"github.com/kyoshidajp/jognote/internal/export"
	"github.com/kyoshidajp/jognote/internal/jognote"
	"github.com/kyoshidajp/jognote/internal/observability"
)

var rootCmd = &cobra.Command{
	Use:   "jognote",
	Short: "Export workout history from JogNote to CSV",
	Long: `jognote logs into JogNote, walks the requested month range one page
at a time, and writes every workout (kind, date, distance, duration)
to a CSV file ordered by date.

  $ jognote -i userid -p password -s 2012/01 -e 2013/01`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	config.SetDefaults()

	flags := rootCmd.Flags()
	flags.StringP("userid", "i", "", "JogNote login id (OpenID ids are not supported)")
	flags.StringP("password", "p", "", "JogNote login password")
	flags.StringP("startdate", "s", "", "start month of the export, yyyy/mm (default "+daterange.Epoch+")")
	flags.StringP("enddate", "e", "", "end month of the export, yyyy/mm (default: current month)")
	flags.StringP("output", "o", "export.csv", "output file name")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.String("metrics-address", "", "serve Prometheus metrics on this address while crawling")

	for key, name := range map[string]string{
		"userid":          "userid",
		"password":        "password",
		"startdate":       "startdate",
		"enddate":         "enddate",
		"output":          "output",
		"verbose":         "verbose",
		"metrics_address": "metrics-address",
	} {
		viper.BindPFlag(key, flags.Lookup(name))
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := log.New(os.Stderr, "[jognote] ", log.LstdFlags)
	runID := uuid.NewString()

	months, err := daterange.Plan(cfg.StartDate, cfg.EndDate, time.Now())
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logger.Printf("run %s: exporting %s through %s", runID, months[0], months[len(months)-1])
	}

	if cfg.MetricsAddress != "" {
		go func() {
			logger.Printf("metrics listening on %s", cfg.MetricsAddress)
			if err := http.ListenAndServe(cfg.MetricsAddress, observability.Handler()); err != nil {
				logger.Printf("metrics listener: %v", err)
			}
		}()
	}

	client, err := jognote.NewClient(jognote.Config{
		BaseURL:        cfg.BaseURL,
		UserID:         cfg.UserID,
		Password:       cfg.Password,
		SleepInterval:  cfg.SleepInterval,
		RequestTimeout: cfg.RequestTimeout,
		MaxRetries:     cfg.MaxRetries,
	}, jognote.WithLogger(logger), jognote.WithVerbose(cfg.Verbose))
	if err != nil {
		return err
	}

	records, err := client.Export(cmd.Context(), months)
	if err != nil {
		return err
	}

	if err := export.WriteFile(cfg.OutputPath, records); err != nil {
		return err
	}
	logger.Printf("run %s: wrote %d records to %s", runID, len(records), cfg.OutputPath)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jognote: %v\n", err)
		os.Exit(1)
	}
}
