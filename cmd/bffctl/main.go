// Package main implements bffctl, a small CLI over the BFF SDK for poking
// at cluster resources from a terminal.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/KimMachineGun/automemlimit/memlimit"
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	charm "github.com/charmbracelet/log"
	bffsdk "github.com/kubeagi/bff-sdk-go"
	"github.com/kubeagi/bff-sdk-go/arcadia"
	"github.com/mattn/go-isatty"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

var _logHandler *charm.Logger

// cli contains our command-line flags.
type cli struct {
	List list `cmd:"" help:"List resources in a namespace."`
	Get  get  `cmd:"" help:"Get a single resource."`
}

type clientconfig struct {
	Server       string `default:"http://localhost:8099" env:"BFF_SERVER" help:"Base URL of the BFF server."`
	AuthDataFile string `env:"BFF_AUTH_DATA_FILE" type:"path" help:"File holding the OIDC auth data JSON."`
}

// sdk builds the SDK from the connection flags.
func (c *clientconfig) sdk() *bffsdk.Sdk {
	endpoint := strings.TrimRight(c.Server, "/") + bffsdk.DefaultEndpoint

	opts := []bffsdk.Option{
		bffsdk.WithReactor(bffsdk.NewReactor(bffsdk.ReactorConfig{
			ShowInvalidTokenModal: func(err *gqlerror.Error) {
				slog.Error("session expired, log in again", "err", err.Message)
			},
			ShowForbiddenNotification: func(n bffsdk.Notification) {
				slog.Warn(n.Message, "description", n.Description)
			},
		})),
	}
	if c.AuthDataFile != "" {
		opts = append(opts, bffsdk.WithTokenProvider(bffsdk.AuthDataFile(c.AuthDataFile)))
	}

	client := bffsdk.NewClient(endpoint, opts...)
	return bffsdk.NewSdk(client, nil)
}

type logconfig struct {
	Verbose bool `env:"VERBOSE" help:"increase log verbosity"`
}

// Run sets logging to DEBUG if verbose is enabled.
func (c *logconfig) Run() error {
	if c.Verbose {
		_logHandler.SetLevel(charm.DebugLevel)
	}
	return nil
}

type list struct {
	clientconfig
	logconfig

	Kind      string `arg:"" enum:"dataset,datasource,model,versioneddataset,embedder,knowledgebase" help:"Resource kind to list."`
	Namespace string `short:"n" default:"default" env:"BFF_NAMESPACE" help:"Namespace to list in."`
	Keyword   string `help:"Filter by keyword."`
	Page      int    `default:"1" help:"Page to fetch."`
	PageSize  int    `default:"10" help:"Page size."`
}

func (l *list) Run() error {
	_ = l.logconfig.Run()

	ctx := context.Background()
	sdk := l.sdk()

	var (
		out any
		err error
	)
	switch l.Kind {
	case "dataset":
		out, err = sdk.ListDatasets(ctx, &arcadia.ListDatasetInput{
			Namespace: l.Namespace,
			Keyword:   l.Keyword,
			Page:      l.Page,
			PageSize:  l.PageSize,
		}, arcadia.ListVersionedDatasetInput{Namespace: l.Namespace}, nil)
	case "datasource":
		out, err = sdk.ListDatasources(ctx, arcadia.ListDatasourceInput{
			Namespace: l.Namespace,
			Keyword:   l.Keyword,
			Page:      l.Page,
			PageSize:  l.PageSize,
		})
	case "model":
		out, err = sdk.ListModels(ctx, arcadia.ListModelInput{
			Namespace: l.Namespace,
			Keyword:   l.Keyword,
			Page:      l.Page,
			PageSize:  l.PageSize,
		})
	case "versioneddataset":
		out, err = sdk.ListVersionedDatasets(ctx, arcadia.ListVersionedDatasetInput{
			Namespace: l.Namespace,
			Keyword:   l.Keyword,
			Page:      l.Page,
			PageSize:  l.PageSize,
		}, nil)
	case "embedder":
		out, err = sdk.ListEmbedders(ctx, arcadia.ListEmbedderInput{
			Namespace: l.Namespace,
			Keyword:   l.Keyword,
			Page:      l.Page,
			PageSize:  l.PageSize,
		})
	case "knowledgebase":
		out, err = sdk.ListKnowledgeBases(ctx, arcadia.ListKnowledgeBaseInput{
			Namespace: l.Namespace,
			Keyword:   l.Keyword,
			Page:      l.Page,
			PageSize:  l.PageSize,
		})
	}
	if err != nil {
		return err
	}
	return dump(out)
}

type get struct {
	clientconfig
	logconfig

	Kind      string `arg:"" enum:"dataset,datasource,model,versioneddataset,embedder,knowledgebase" help:"Resource kind to get."`
	Name      string `arg:"" help:"Resource name."`
	Namespace string `short:"n" default:"default" env:"BFF_NAMESPACE" help:"Namespace to look in."`
}

func (g *get) Run() error {
	_ = g.logconfig.Run()

	ctx := context.Background()
	sdk := g.sdk()

	var (
		out any
		err error
	)
	switch g.Kind {
	case "dataset":
		out, err = sdk.GetDataset(ctx, g.Name, g.Namespace)
	case "datasource":
		out, err = sdk.GetDatasource(ctx, g.Name, g.Namespace)
	case "model":
		out, err = sdk.GetModel(ctx, g.Name, g.Namespace)
	case "versioneddataset":
		out, err = sdk.GetVersionedDataset(ctx, g.Name, g.Namespace, nil)
	case "embedder":
		out, err = sdk.GetEmbedder(ctx, g.Name, g.Namespace)
	case "knowledgebase":
		out, err = sdk.GetKnowledgeBase(ctx, g.Name, g.Namespace)
	}
	if err != nil {
		return err
	}
	return dump(out)
}

// dump prints a response as indented JSON.
func dump(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	kctx := kong.Parse(&cli{})
	err := kctx.Run()
	if err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// set up our default log handler and formatting.
func init() {
	styles := charm.DefaultStyles()
	styles.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true)
	styles.Values["description"] = lipgloss.NewStyle().Faint(true)

	_logHandler = charm.NewWithOptions(os.Stdout, charm.Options{
		ReportTimestamp: true,
		TimeFormat:      time.StampMilli,
		Level:           charm.InfoLevel,
	})
	_logHandler.SetStyles(styles)

	// Output JSON in containers.
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		_logHandler.SetFormatter(
			charm.JSONFormatter,
		)
		_logHandler.SetTimeFormat(time.RFC3339)
	}

	slog.SetDefault(slog.New(_logHandler))
}

func init() {
	// Limit our memory to 90% of what's free. This affects cache sizes.
	_, err := memlimit.SetGoMemLimitWithOpts(
		memlimit.WithRatio(0.9),
		memlimit.WithLogger(slog.Default()),
		memlimit.WithProvider(
			memlimit.ApplyFallback(
				memlimit.FromCgroup,
				memlimit.FromSystem,
			),
		),
	)
	if err != nil {
		panic(err)
	}
}
