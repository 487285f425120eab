// Package pwned implements the breach lookup client against a k-anonymity
// range API such as api.pwnedpasswords.com. Only the 5-character prefix of a
// password digest ever leaves the process.
package pwned

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"pwaudit/config"
	"pwaudit/internal/domain/entity"
	domainerrors "pwaudit/internal/domain/errors"
	"pwaudit/internal/domain/service"
	"pwaudit/internal/errors"

	"go.uber.org/fx"
)

const (
	rangePath = "/range/"

	headerUserAgent  = "User-Agent"
	headerAddPadding = "Add-Padding"

	// drainLimit bounds how much of an error response body is read before close
	drainLimit = 4 << 10
)

// HTTPDoer is the HTTP surface the client needs. *http.Client satisfies it,
// and tests substitute stubs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a range client
type Options struct {
	BaseURL          string
	UserAgent        string
	Timeout          time.Duration
	AddPadding       bool
	MaxResponseBytes int64
}

// OptionsFromConfig maps the breach config section onto client options.
func OptionsFromConfig(cfg config.BreachConfig) Options {
	return Options{
		BaseURL:          cfg.BaseURL,
		UserAgent:        cfg.UserAgent,
		Timeout:          cfg.Timeout,
		AddPadding:       cfg.AddPadding,
		MaxResponseBytes: cfg.MaxResponseBytes,
	}
}

// rangeClient implements service.BreachLookup over HTTP GET.
type rangeClient struct {
	doer   HTTPDoer
	opts   Options
	logger *slog.Logger
}

// Params holds dependencies for the range client, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the production range client from configuration.
func New(params Params) service.BreachLookup {
	return NewRangeClient(&http.Client{}, OptionsFromConfig(params.Config.Breach), params.Logger)
}

// NewRangeClient creates a range client on top of doer.
func NewRangeClient(doer HTTPDoer, opts Options, logger *slog.Logger) service.BreachLookup {
	if logger == nil {
		logger = slog.Default()
	}

	return &rangeClient{
		doer:   doer,
		opts:   opts,
		logger: logger.With(slog.String("component", "pwned_range_client")),
	}
}

// Lookup issues a single GET {base}/range/{prefix} and parses the response.
// There is no retry and no caching.
func (c *rangeClient) Lookup(ctx context.Context, prefix entity.Prefix) (*entity.CandidateSet, error) {
	prefix, err := entity.ParsePrefix(string(prefix))
	if err != nil {
		return nil, err
	}

	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	url := c.opts.BaseURL + rangePath + string(prefix)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domainerrors.NewLookupFailedError(errors.WithStack(err), "failed to build range request")
	}
	if c.opts.UserAgent != "" {
		req.Header.Set(headerUserAgent, c.opts.UserAgent)
	}
	if c.opts.AddPadding {
		req.Header.Set(headerAddPadding, "true")
	}

	start := time.Now()
	resp, err := c.doer.Do(req)
	if err != nil {
		reason := "range request failed"
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			reason = "range request timed out"
		case errors.Is(err, context.Canceled):
			reason = "range request cancelled"
		}
		c.logger.Warn("Range lookup failed",
			slog.String("prefix", string(prefix)),
			slog.String("reason", reason),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewLookupFailedError(errors.WithStack(err), reason)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimit))
		c.logger.Warn("Range endpoint returned non-success status",
			slog.String("prefix", string(prefix)),
			slog.Int("status_code", resp.StatusCode),
		)

		return nil, domainerrors.NewLookupFailedError(
			errors.Errorf("range endpoint returned status %d", resp.StatusCode),
			"unexpected status "+strconv.Itoa(resp.StatusCode),
		)
	}

	body, err := c.readBody(resp.Body)
	if err != nil {
		c.logger.Warn("Failed to read range response",
			slog.String("prefix", string(prefix)),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewLookupFailedError(err, "failed to read range response")
	}

	set, skipped := ParseRange(prefix, body, c.opts.AddPadding)
	c.logger.Debug("Range lookup completed",
		slog.String("prefix", string(prefix)),
		slog.Int("candidates", set.Len()),
		slog.Int("skipped_lines", skipped),
		slog.Duration("latency", time.Since(start)),
	)

	return set, nil
}

// readBody reads the whole body, failing when it exceeds MaxResponseBytes.
func (c *rangeClient) readBody(body io.Reader) ([]byte, error) {
	if c.opts.MaxResponseBytes <= 0 {
		data, err := io.ReadAll(body)

		return data, errors.WithStack(err)
	}

	data, err := io.ReadAll(io.LimitReader(body, c.opts.MaxResponseBytes+1))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if int64(len(data)) > c.opts.MaxResponseBytes {
		return nil, errors.Errorf("range response exceeds %d bytes", c.opts.MaxResponseBytes)
	}

	return data, nil
}
