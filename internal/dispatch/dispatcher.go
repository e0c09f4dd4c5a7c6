package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/saharshpoddar/learning-gateway/internal/atlassian"
	"github.com/saharshpoddar/learning-gateway/internal/config"
	"github.com/saharshpoddar/learning-gateway/internal/discovery"
	"github.com/saharshpoddar/learning-gateway/internal/export"
	"github.com/saharshpoddar/learning-gateway/internal/httpx"
	"github.com/saharshpoddar/learning-gateway/internal/scrape"
	"github.com/saharshpoddar/learning-gateway/internal/vault"
)

// Dispatcher is the single entry point for tool invocations.
type Dispatcher struct {
	cfg *config.Config

	jira       *atlassian.JiraClient
	confluence *atlassian.ConfluenceClient
	bitbucket  *atlassian.BitbucketClient

	store    *vault.Store
	engine   *discovery.Engine
	scraper  *scrape.Scraper
	exporter *export.Exporter

	tools map[string]toolSpec
	order []string

	mu         sync.Mutex
	lastResult *discovery.Result
}

// New wires the dispatcher over the runtime config and the shared HTTP
// engine. Every tool is registered regardless of product liveness; calls to
// an inactive product fail at dispatch time with a clear message.
func New(cfg *config.Config, http *httpx.Engine) (*Dispatcher, error) {
	store, err := vault.NewStore(vault.SeedRecords())
	if err != nil {
		return nil, fmt.Errorf("hydrate vault: %w", err)
	}

	d := &Dispatcher{
		cfg:        cfg,
		jira:       atlassian.NewJiraClient(cfg.Jira.URL, http),
		confluence: atlassian.NewConfluenceClient(cfg.Confluence.URL, http),
		bitbucket:  atlassian.NewBitbucketClient(cfg.Bitbucket.URL, http),
		store:      store,
		scraper:    scrape.NewScraper(http),
		exporter:   export.NewExporter(),
		tools:      make(map[string]toolSpec),
	}
	d.engine = discovery.NewEngine(store)

	d.registerJiraTools()
	d.registerConfluenceTools()
	d.registerBitbucketTools()
	d.registerLearningTools()
	d.registerUnifiedSearch()
	return d, nil
}

// Store exposes the vault for the demo surface.
func (d *Dispatcher) Store() *vault.Store {
	return d.store
}

func (d *Dispatcher) register(spec toolSpec) {
	if _, exists := d.tools[spec.Name]; !exists {
		d.order = append(d.order, spec.Name)
	}
	d.tools[spec.Name] = spec
}

// ListTools returns the catalog in registration order.
func (d *Dispatcher) ListTools() []ToolInfo {
	out := make([]ToolInfo, 0, len(d.order))
	for _, name := range d.order {
		spec := d.tools[name]
		out = append(out, ToolInfo{
			Name:        spec.Name,
			Product:     spec.Product,
			Description: spec.Description,
			Required:    append([]string(nil), spec.Required...),
		})
	}
	return out
}

// Dispatch parses and routes one tool invocation. It never returns an
// error; every failure is folded into the envelope.
func (d *Dispatcher) Dispatch(ctx context.Context, toolName string, args map[string]string) ToolResponse {
	name := strings.ToLower(strings.TrimSpace(toolName))
	spec, ok := d.tools[name]
	if !ok {
		return errorResponse(ProductSystem, name,
			fmt.Sprintf("Unknown tool %q. Use list-tools to see the available tools.", toolName))
	}
	if args == nil {
		args = map[string]string{}
	}

	for _, required := range spec.Required {
		if strings.TrimSpace(args[required]) == "" {
			return errorResponse(spec.Product, name,
				fmt.Sprintf("Missing required argument: '%s'", required))
		}
	}
	for _, numeric := range spec.Numeric {
		value := strings.TrimSpace(args[numeric])
		if value == "" {
			continue
		}
		if _, err := strconv.Atoi(value); err != nil {
			return errorResponse(spec.Product, name,
				fmt.Sprintf("Argument '%s' must be numeric, got %q", numeric, value))
		}
	}

	if msg := d.liveCheck(spec.Product); msg != "" {
		return errorResponse(spec.Product, name, msg)
	}

	timeout := time.Duration(d.cfg.Preferences.TimeoutSeconds) * time.Second
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	content, err := spec.Handler(callCtx, args)
	if err != nil {
		log.Debug().Str("tool", name).Err(err).Msg("Tool call failed")
		return errorResponse(spec.Product, name, formatError(spec.Product, err))
	}
	return successResponse(spec.Product, name, content)
}

// liveCheck rejects calls to products that are disabled or unconfigured.
func (d *Dispatcher) liveCheck(product Product) string {
	var pc config.ProductConfig
	switch product {
	case ProductJira:
		pc = d.cfg.Jira
	case ProductConfluence:
		pc = d.cfg.Confluence
	case ProductBitbucket:
		pc = d.cfg.Bitbucket
	default:
		return ""
	}
	if !pc.Live() {
		return fmt.Sprintf("%s: product is not configured; set its URL and enabled flag", product)
	}
	return ""
}

// formatError renders `<product>: <kind>: <detail>` for the operator.
func formatError(product Product, err error) string {
	kind, detail := classifyError(err)
	return fmt.Sprintf("%s: %s: %s", product, kind, detail)
}

func classifyError(err error) (string, string) {
	var terr *httpx.TransportError
	if errors.As(err, &terr) {
		return "TransportError", terr.Error()
	}
	var cerr *httpx.ClientError
	if errors.As(err, &cerr) {
		if cerr.NotFound {
			return "NotFoundError", cerr.Message
		}
		return "ClientError", cerr.Message
	}
	var serr *httpx.ServerError
	if errors.As(err, &serr) {
		return "ServerError", serr.Error()
	}
	var perr *httpx.ProtocolError
	if errors.As(err, &perr) {
		return "ProtocolError", perr.Error()
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "TransportError", "cancelled"
	}
	// Input validation surfaced by a client or handler.
	return "ArgumentError", err.Error()
}

// rememberResult stages the latest discovery result for export_results.
func (d *Dispatcher) rememberResult(result discovery.Result) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastResult = &result
}

func (d *Dispatcher) recallResult() (discovery.Result, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.lastResult == nil {
		return discovery.Result{}, false
	}
	return *d.lastResult, true
}

// intArg reads an optional numeric argument already validated by Dispatch.
func intArg(args map[string]string, name string) int {
	value := strings.TrimSpace(args[name])
	if value == "" {
		return 0
	}
	n, _ := strconv.Atoi(value)
	return n
}
