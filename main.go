package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/stoewer/go-strcase"
	"gopkg.in/alecthomas/kingpin.v2"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	catalogsv1alpha1 "github.com/krateoplatformops/oasdocs/apis/catalogs/v1alpha1"
	"github.com/krateoplatformops/oasdocs/internal/catalog"
	"github.com/krateoplatformops/oasdocs/internal/logger"
	"github.com/krateoplatformops/oasdocs/internal/nav"
	"github.com/krateoplatformops/oasdocs/internal/server"
	"github.com/krateoplatformops/oasdocs/internal/tools/fetch"
	"github.com/krateoplatformops/oasdocs/internal/tools/operations"
	"github.com/krateoplatformops/provider-runtime/pkg/logging"
)

const (
	appName = "oasdocs"
)

type options struct {
	debug         bool
	catalogPath   string
	fetchAttempts uint
	fetchDelay    time.Duration
	concurrency   int
	output        string
}

func main() {
	envVarPrefix := strcase.UpperSnakeCase(appName)
	envVar := func(name string) string {
		return fmt.Sprintf("%s_%s", envVarPrefix, strcase.UpperSnakeCase(name))
	}

	o := &options{}

	app := kingpin.New(appName, "Serve API documentation data: indexed OpenAPI operations, guides and instructions.")
	app.Flag("debug", "Run with debug logging.").Short('d').Envar(envVar("debug")).BoolVar(&o.debug)
	app.Flag("catalog", "Path of the catalog file.").Short('c').Envar(envVar("catalog")).Default("catalog.yaml").StringVar(&o.catalogPath)
	app.Flag("fetch-attempts", "How many times a document source download is attempted.").Envar(envVar("fetch-attempts")).Default("3").UintVar(&o.fetchAttempts)
	app.Flag("fetch-delay", "Initial delay between download attempts, such as 500ms or 2s.").Envar(envVar("fetch-delay")).Default("500ms").DurationVar(&o.fetchDelay)
	app.Flag("concurrency", "How many sources are downloaded at once.").Envar(envVar("concurrency")).Default("4").IntVar(&o.concurrency)

	serveCmd := app.Command("serve", "Serve the catalog as a JSON API.")
	addr := serveCmd.Flag("addr", "Listen address.").Envar(envVar("addr")).Default(":8080").String()
	metrics := serveCmd.Flag("metrics", "Expose Prometheus metrics on /metrics.").Envar(envVar("metrics")).Default("true").Bool()

	documentsCmd := app.Command("documents", "List the documents of the catalog.")
	documentsCmd.Flag("output", "Output format: table or json.").Short('o').Default("table").EnumVar(&o.output, "table", "json")

	operationsCmd := app.Command("operations", "List the indexed operations of a document.")
	operationsCmd.Flag("output", "Output format: table or json.").Short('o').Default("table").EnumVar(&o.output, "table", "json")
	operationsKey := operationsCmd.Arg("key", "Document key.").Required().String()

	operationCmd := app.Command("operation", "Show one operation of a document.")
	operationCmd.Flag("output", "Output format: table or json.").Short('o').Default("table").EnumVar(&o.output, "table", "json")
	operationKey := operationCmd.Arg("key", "Document key.").Required().String()
	operationSlug := operationCmd.Arg("slug", "Operation slug.").Required().String()

	routesCmd := app.Command("routes", "List every page href the catalog can serve.")

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	log.Default().SetOutput(io.Discard)
	ctrl.SetLogger(zap.New(zap.WriteTo(io.Discard)))

	zl := zap.New(zap.UseDevMode(o.debug))
	logr := logger.New(logging.NewLogrLogger(zl.WithName(appName)), o.debug)
	if o.debug {
		ctrl.SetLogger(zl)
	}

	ctx := ctrl.SetupSignalHandler()

	cfg, c, err := loadCatalog(ctx, o, logr)
	if err != nil {
		app.Fatalf("Cannot load catalog: %v", err)
	}

	switch cmd {
	case serveCmd.FullCommand():
		opts := []server.Option{
			server.WithLogger(logr),
			server.WithRoutePrefix(cfg.Spec.RoutePrefix),
		}
		if *metrics {
			opts = append(opts, server.WithMetrics(server.NewMetrics()))
		}
		err = server.New(c, opts...).ListenAndServe(ctx, *addr)

	case documentsCmd.FullCommand():
		err = printDocuments(os.Stdout, o.output, c.Documents())

	case operationsCmd.FullCommand():
		if _, ok := c.Document(*operationsKey); !ok {
			app.Fatalf("Unknown document %q", *operationsKey)
		}
		err = printOperations(os.Stdout, o.output, c.ListOperations(*operationsKey))

	case operationCmd.FullCommand():
		op, ok := c.GetOperation(*operationKey, *operationSlug)
		if !ok {
			app.Fatalf("Operation %q not found in document %q", *operationSlug, *operationKey)
		}
		err = printOperation(os.Stdout, o.output, op)

	case routesCmd.FullCommand():
		for _, r := range nav.NewBuilder(cfg.Spec.RoutePrefix).Routes(c) {
			fmt.Fprintln(os.Stdout, r)
		}
	}

	app.FatalIfError(err, "%s", cmd)
}

func loadCatalog(ctx context.Context, o *options, l logging.Logger) (*catalogsv1alpha1.Catalog, *catalog.Catalog, error) {
	cfg, err := catalogsv1alpha1.Load(o.catalogPath)
	if err != nil {
		return nil, nil, err
	}

	l.Debug("Loading catalog", "path", o.catalogPath, "documents", len(cfg.Spec.Documents),
		"instructionGroups", len(cfg.Spec.InstructionGroups))

	f := fetch.New(fetch.WithLogger(l), fetch.WithRetry(o.fetchAttempts, o.fetchDelay))
	ld := catalog.NewLoader(f, catalog.WithLoaderLogger(l), catalog.WithConcurrency(o.concurrency))

	c, err := ld.Load(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, c, nil
}

func printDocuments(w io.Writer, format string, docs []catalog.DocumentInfo) error {
	if format == "json" {
		return printJSON(w, docs)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tTITLE\tVERSION\tOPERATIONS")
	for _, d := range docs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", d.Key, d.Title, d.Version, d.Operations)
	}
	return tw.Flush()
}

func printOperations(w io.Writer, format string, ops []operations.IndexedOperation) error {
	if format == "json" {
		return printJSON(w, ops)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tMETHOD\tPATH\tTITLE")
	for _, op := range ops {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", op.Slug, strings.ToUpper(op.Method), op.Path, op.DisplayName())
	}
	return tw.Flush()
}

func printOperation(w io.Writer, format string, op operations.IndexedOperation) error {
	if format == "json" {
		return printJSON(w, op)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Slug:\t%s\n", op.Slug)
	fmt.Fprintf(tw, "Method:\t%s\n", strings.ToUpper(op.Method))
	fmt.Fprintf(tw, "Path:\t%s\n", op.Path)
	if op.OperationID != "" {
		fmt.Fprintf(tw, "Operation ID:\t%s\n", op.OperationID)
	}
	if op.Summary != "" {
		fmt.Fprintf(tw, "Summary:\t%s\n", op.Summary)
	}
	if len(op.Tags) > 0 {
		fmt.Fprintf(tw, "Tags:\t%s\n", strings.Join(op.Tags, ", "))
	}
	if op.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", op.Description)
	}
	return tw.Flush()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
