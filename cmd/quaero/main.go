// Command quaero runs ad-hoc searches against a quaero search service.
//
//	quaero search --config quaero.yaml --index people \
//	    --query coffee --where "Age ge 18" --where "Town eq London" \
//	    --order-by "Age desc" --top 5 --facet Town --count
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quaero-io/quaero"
	"github.com/quaero-io/quaero/internal/config"
	logpkg "github.com/quaero-io/quaero/internal/logger"
	"github.com/quaero-io/quaero/internal/version"
)

type searchOptions struct {
	index   string
	query   string
	where   []string
	orderBy []string
	skip    int
	top     int
	facets  []string
	count   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "quaero",
		Short:         "Query a quaero search service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "quaero.yaml", "path to the YAML config file")

	root.AddCommand(newSearchCmd(&configPath))
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("quaero %s (%s, %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}

func newSearchCmd(configPath *string) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run a search and print the shaped response as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), *configPath, opts)
		},
	}

	cmd.Flags().StringVar(&opts.index, "index", "", "index name (overrides config)")
	cmd.Flags().StringVar(&opts.query, "query", "", "free-text query")
	cmd.Flags().StringArrayVar(&opts.where, "where", nil, `filter clause "Field op value", repeatable (AND-combined)`)
	cmd.Flags().StringArrayVar(&opts.orderBy, "order-by", nil, `sort clause "Field [asc|desc]", repeatable`)
	cmd.Flags().IntVar(&opts.skip, "skip", -1, "paging offset")
	cmd.Flags().IntVar(&opts.top, "top", -1, "page size bound")
	cmd.Flags().StringArrayVar(&opts.facets, "facet", nil, "field to facet on, repeatable")
	cmd.Flags().BoolVar(&opts.count, "count", false, "include the total hit count")
	return cmd
}

func runSearch(ctx context.Context, configPath string, opts searchOptions) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logpkg.New(cfg.Logging.Env, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	index := opts.index
	if index == "" {
		index = cfg.Service.Index
	}
	if index == "" {
		return fmt.Errorf("no index: set --index or service.index in the config")
	}

	req, err := buildRequest(opts)
	if err != nil {
		return err
	}

	client, err := quaero.New(cfg.Service.Endpoint,
		quaero.WithAPIKey(cfg.Service.APIKey),
		quaero.WithTimeout(time.Duration(cfg.Service.TimeoutSec)*time.Second),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := client.Search(index).Do(ctx, req)
	if err != nil {
		return err
	}
	log.Info("search completed",
		zap.String("index", index),
		zap.Int("documents", len(resp.Documents)),
		zap.Duration("duration", time.Since(start)),
	)

	return printResponse(resp)
}

func printResponse(resp *quaero.Response) error {
	out := struct {
		Documents  []json.RawMessage   `json:"documents"`
		Facets     map[string][]string `json:"facets,omitempty"`
		TotalCount *int64              `json:"total_count,omitempty"`
	}{
		Documents:  resp.Documents,
		Facets:     resp.Facets,
		TotalCount: resp.TotalCount,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
