// Command ncall performs an HTTP call and prints its result as JSON.
//
// Usage:
//
//	ncall [flags] URL
//
// The exit code is 0 when the call succeeds, 1 when it fails, and 2
// when the command is misused.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/ooni/netresult/internal/callmetrics"
	"github.com/ooni/netresult/internal/config"
	"github.com/ooni/netresult/internal/log/handlers/cli"
	"github.com/ooni/netresult/internal/model"
	"github.com/ooni/netresult/internal/scrubber"
	"github.com/ooni/netresult/pkg/calladapter"
	"github.com/ooni/netresult/pkg/endpoint"
	"github.com/ooni/netresult/pkg/errclass"
	"github.com/ooni/netresult/pkg/httpcall"
	"github.com/ooni/netresult/pkg/netcall"
	"github.com/ooni/netresult/pkg/netresult"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/net/http/httpguts"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitMisuse  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options contains the command line options.
type options struct {
	configPath string
	data       string
	debug      bool
	headers    []string
	method     string
	metrics    bool
	sync       bool
	timeout    time.Duration
}

// run runs ncall with the given arguments and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	exitcode := exitSuccess
	ran := false
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "ncall [flags] URL",
		Short:         "Performs an HTTP call and prints its result as JSON",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true
			code, err := opts.main(cmd.Context(), args[0], stdout, stderr)
			exitcode = code
			return err
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Path of the JSONC config file")
	flags.StringVarP(&opts.data, "data", "d", "", "JSON request body")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringArrayVarP(&opts.headers, "header", "H", nil, "Extra header as 'Key: value' (repeatable)")
	flags.StringVarP(&opts.method, "method", "X", "", "Request method (default GET, or POST with --data)")
	flags.BoolVar(&opts.metrics, "metrics", false, "Print Prometheus metrics after the call")
	flags.BoolVar(&opts.sync, "sync", false, "Use the blocking calling convention")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Call timeout (overrides the config)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "ncall: %s\n", err.Error())
		if !ran {
			exitcode = exitMisuse
		}
	}
	return exitcode
}

// errMisuse wraps the errors caused by invalid arguments.
var errMisuse = errors.New("invalid usage")

func (opts *options) main(ctx context.Context, rawURL string, stdout, stderr io.Writer) (int, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return exitMisuse, err
	}
	level := cfg.Level()
	if opts.debug {
		level = log.DebugLevel
	}
	logger := &log.Logger{Level: level, Handler: cli.New(stderr)}

	URL, err := resolveURL(cfg.BaseURL, rawURL)
	if err != nil {
		return exitMisuse, err
	}
	header, err := mergeHeaders(cfg.Header(), opts.headers)
	if err != nil {
		return exitMisuse, err
	}
	desc, err := opts.newDescriptor(URL, time.Duration(cfg.Timeout), cfg.MaxBodySize)
	if err != nil {
		return exitMisuse, err
	}

	reg := prometheus.NewRegistry()
	dispatcher := httpcall.NewDispatcher(cfg.MaxConcurrency)
	client := &http.Client{}
	defer client.CloseIdleConnections()
	svc := &endpoint.Service{
		Authorization: cfg.Authorization,
		BaseURL:       (&url.URL{Scheme: URL.Scheme, Host: URL.Host}).String(),
		Client:        client,
		Dispatcher:    dispatcher,
		Header:        header,
		Logger:        scrubber.NewLogger(logger),
		Observer:      callmetrics.New(reg),
		UserAgent:     cfg.UserAgent,
	}

	t0 := time.Now()
	result, err := opts.call(ctx, svc, desc)
	if err != nil {
		return exitMisuse, err
	}
	dispatcher.Wait()
	logResult(logger, desc.Method+" "+URL.Redacted(), result, time.Since(t0))

	data, err := json.Marshal(result)
	if err != nil {
		return exitFailure, err
	}
	fmt.Fprintln(stdout, string(data))
	if opts.metrics {
		if err := callmetrics.WriteText(stdout, reg); err != nil {
			return exitFailure, err
		}
	}
	if result.IsFailure() {
		return exitFailure, nil
	}
	return exitSuccess, nil
}

// call declares the endpoint using the selected calling convention and calls it.
func (opts *options) call(ctx context.Context, svc *endpoint.Service, desc *endpoint.Descriptor) (netresult.Result[any], error) {
	decl := calladapter.Suspending[any]()
	if opts.sync {
		decl = calladapter.Direct[any]()
	}
	ep, err := endpoint.Declare(svc, desc, decl, httpcall.JSON[any]())
	if err != nil {
		return netresult.Result[any]{}, err
	}
	if opts.sync {
		return ep.Do(ctx), nil
	}
	return netcall.Await(ctx, ep.Call(ctx)), nil
}

func (opts *options) loadConfig() (*config.Config, error) {
	cfg := config.New()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.ReadConfig(opts.configPath); err != nil {
			return nil, err
		}
	}
	if opts.timeout > 0 {
		cfg.Timeout = config.Duration(opts.timeout)
	}
	return cfg, nil
}

func (opts *options) newDescriptor(URL *url.URL, timeout time.Duration, maxBodySize int64) (*endpoint.Descriptor, error) {
	desc := endpoint.NewGETJSONDescriptor(URL.Path, URL.Query())
	if opts.data != "" {
		if !json.Valid([]byte(opts.data)) {
			return nil, fmt.Errorf("%w: --data is not valid JSON", errMisuse)
		}
		desc.ContentType = model.HTTPContentTypeJSON
		desc.Method = http.MethodPost
		desc.RequestBody = []byte(opts.data)
	}
	if opts.method != "" {
		desc.Method = strings.ToUpper(opts.method)
	}
	desc.MaxBodySize = maxBodySize
	return desc.WithTimeout(timeout).WithBodyLogging(opts.debug), nil
}

// resolveURL resolves rawURL against baseURL, when the latter is set.
func resolveURL(baseURL, rawURL string) (*url.URL, error) {
	URL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errMisuse, err)
	}
	if baseURL != "" {
		base, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errMisuse, err)
		}
		URL = base.ResolveReference(URL)
	}
	if URL.Scheme != "http" && URL.Scheme != "https" {
		return nil, fmt.Errorf("%w: expected an http or https URL", errMisuse)
	}
	return URL, nil
}

// mergeHeaders adds the "Key: value" headers to the base headers.
func mergeHeaders(base http.Header, headers []string) (http.Header, error) {
	out := base.Clone()
	if out == nil {
		out = http.Header{}
	}
	for _, entry := range headers {
		key, value, found := strings.Cut(entry, ":")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !found || !httpguts.ValidHeaderFieldName(key) || !httpguts.ValidHeaderFieldValue(value) {
			return nil, fmt.Errorf("%w: invalid header: %q", errMisuse, entry)
		}
		out.Add(key, value)
	}
	return out, nil
}

// logResult emits a "result" typed log entry.
func logResult(logger log.Interface, message string, result netresult.Result[any], elapsed time.Duration) {
	fields := log.Fields{
		"type":    "result",
		"outcome": netcall.OutcomeSuccess,
		"elapsed": elapsed,
	}
	if err := result.ExceptionOrNull(); err != nil {
		fields["outcome"] = string(errclass.KindOf(err))
		fields["failure"] = err.Error()
		if code, ok := errclass.StatusCode(err); ok {
			fields["status_code"] = code
		}
	}
	logger.WithFields(fields).Info(message)
}
