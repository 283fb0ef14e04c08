// Package main provides a CLI command that prints pagination values.
// Usage: paginate -items N [-limit N] [-page N] [-mid-range N] [-url U] [-output text|json|yaml]
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"simple-pagination/internal/common/pagination"
	"simple-pagination/internal/observability/logging"
	"simple-pagination/internal/observability/metrics"
)

// Output represents the JSON and YAML output format.
type Output struct {
	Pagination pagination.Metadata   `json:"pagination" yaml:"pagination"`
	Previous   string                `json:"previous,omitempty" yaml:"previous,omitempty"`
	Next       string                `json:"next,omitempty" yaml:"next,omitempty"`
	Links      []pagination.PageLink `json:"links,omitempty" yaml:"links,omitempty"`
}

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("paginate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		items        int
		limit        int
		page         int
		midRange     int
		rawURL       string
		configPath   string
		outputFormat string
		normalize    bool
		dumpMetrics  bool
	)

	fs.IntVar(&items, "items", 0, "Total number of items")
	fs.IntVar(&limit, "limit", 0, "Items per page, 0 shows everything (default from config)")
	fs.IntVar(&page, "page", 0, "Current page (default from -url, then config)")
	fs.IntVar(&midRange, "mid-range", 0, "Number of page links to show (default from config)")
	fs.StringVar(&rawURL, "url", "", "Current URL, used for page links and as the page source")
	fs.StringVar(&configPath, "config", "", "YAML config file (default: environment)")
	fs.StringVar(&outputFormat, "output", "text", "Output format: text, json or yaml")
	fs.BoolVar(&normalize, "normalize", false, "Remove separators left behind when rewriting URLs")
	fs.BoolVar(&dumpMetrics, "metrics", false, "Write pagination metrics to stderr on exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := logging.New(stderr, "text")

	cfg, err := loadConfig(logger, configPath)
	if err != nil {
		logger.Error("failed to load pagination config", slog.Any("error", err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	opts := []pagination.Option{
		pagination.WithConfig(cfg),
		pagination.WithURLRewriter(pagination.URLRewriter{Normalize: normalize}),
	}
	if rawURL != "" {
		u, err := url.Parse(rawURL)
		if err != nil {
			logger.Error("invalid url", slog.String("url", rawURL), slog.Any("error", err))
			fmt.Fprintf(stderr, "Error: invalid -url %q: %v\n", rawURL, err)
			return 1
		}
		opts = append(opts, pagination.WithParamSource(u.Query()))
	}

	p := pagination.New(opts...)
	p.SetItemCount(items)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "limit":
			p.SetLimit(limit)
		case "page":
			p.SetCurrentPage(page)
		case "mid-range":
			p.SetMidRange(midRange)
		}
	})

	summary := p.Summary()
	pagination.LogSummary(logger, summary)
	pagination.RecordSummary(summary)

	out := Output{Pagination: summary}
	if rawURL != "" {
		out.Links = p.Links(rawURL)
		if p.HasPrevious() {
			out.Previous = p.URL(rawURL, p.PreviousPage())
		}
		if p.HasNext() {
			out.Next = p.URL(rawURL, p.NextPage())
		}
	}

	if err := writeOutput(stdout, outputFormat, out); err != nil {
		logger.Error("failed to write output", slog.Any("error", err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}

	if dumpMetrics {
		if err := metrics.WriteText(stderr, prometheus.DefaultGatherer, "pagination_"); err != nil {
			logger.Error("failed to write metrics", slog.Any("error", err))
			return 1
		}
	}

	return 0
}

func loadConfig(logger *slog.Logger, path string) (pagination.Config, error) {
	if path != "" {
		return pagination.LoadFromFile(path)
	}
	cfg, warnings := pagination.LoadFromEnv()
	pagination.LogConfigWarnings(logger, warnings)
	return cfg, nil
}

func writeOutput(w io.Writer, format string, out Output) error {
	switch format {
	case "text":
		return outputText(w, out)
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(out); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("%w: unknown output format %q", errUsage, format)
	}
}

// outputText prints the summary in human-readable format.
func outputText(w io.Writer, out Output) error {
	m := out.Pagination

	pages := make([]string, 0, len(m.Range))
	for _, n := range m.Range {
		if n == m.CurrentPage {
			pages = append(pages, "["+strconv.Itoa(n)+"]")
		} else {
			pages = append(pages, strconv.Itoa(n))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Displaying %d-%d of %d\n", m.CountBeginning, m.CountEnd, m.ItemCount)
	fmt.Fprintf(&b, "Page %d of %d\n", m.CurrentPage, m.NumPages)
	fmt.Fprintf(&b, "Pages: %s\n", strings.Join(pages, " "))
	fmt.Fprintf(&b, "Offset: %d Limit: %d\n", m.Offset, m.Limit)

	if out.Previous != "" {
		fmt.Fprintf(&b, "Previous: %s\n", out.Previous)
	}
	for _, link := range out.Links {
		fmt.Fprintf(&b, "  %d: %s\n", link.Page, link.URL)
	}
	if out.Next != "" {
		fmt.Fprintf(&b, "Next: %s\n", out.Next)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
