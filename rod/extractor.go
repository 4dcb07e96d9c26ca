package rod

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/storyllms"
	"github.com/fwojciec/storyllms/registry"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Extractor implements the browsing interfaces at compile time.
var (
	_ storyllms.Extractor  = (*Extractor)(nil)
	_ storyllms.PageReader = (*Extractor)(nil)
)

const (
	// siteOrigin is the synthetic origin the static site is served under.
	// No network server runs; every request is answered from disk through
	// request interception.
	siteOrigin = "http://storybook.invalid"

	// previewPath is Storybook's fixed preview entry document.
	previewPath = "/iframe.html"

	// docsContainer is the element Storybook renders documentation views
	// into.
	docsContainer = "#storybook-docs"
)

// registryProbeJS reports whether the preview object has appeared.
const registryProbeJS = `() => typeof window.__STORYBOOK_PREVIEW__ !== 'undefined'`

const (
	// DefaultRegistryTimeout bounds the wait for the story registry to
	// appear on the preview page.
	DefaultRegistryTimeout = 30 * time.Second

	// DefaultDocsTimeout bounds the wait for a documentation page's
	// content container to attach.
	DefaultDocsTimeout = 2 * time.Second
)

// Extractor extracts story registry data and documentation pages from a
// built Storybook site using Chrome browser automation. The site is
// served entirely through request interception backed by an
// AssetResolver, so no network access is required.
type Extractor struct {
	resolver storyllms.AssetResolver
	browser  *rod.Browser
	launcher *launcher.Launcher
	router   *rod.HijackRouter
	logger   *slog.Logger

	registryTimeout time.Duration
	docsTimeout     time.Duration

	closed atomic.Bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRegistryTimeout sets the bound on the story registry wait.
// Defaults to DefaultRegistryTimeout.
func WithRegistryTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		e.registryTimeout = d
	}
}

// WithDocsTimeout sets the bound on the docs container wait.
// Defaults to DefaultDocsTimeout.
func WithDocsTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		e.docsTimeout = d
	}
}

// WithLogger sets the logger for strategy selection and skipped registry
// items. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates a new Extractor that launches a headless Chrome
// browser and installs request interception serving the given resolver.
// Close must be called when the Extractor is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewExtractor(resolver storyllms.AssetResolver, opts ...Option) (*Extractor, error) {
	e := &Extractor{
		resolver:        resolver,
		logger:          slog.Default(),
		registryTimeout: DefaultRegistryTimeout,
		docsTimeout:     DefaultDocsTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}

	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	// The router is shared by every page opened for the run.
	router := browser.HijackRequests()
	if err := router.Add("*", "", e.serve); err != nil {
		_ = browser.Close()
		lnchr.Kill()
		return nil, fmt.Errorf("installing request interception: %w", err)
	}
	go router.Run()

	e.browser = browser
	e.launcher = lnchr
	e.router = router
	return e, nil
}

// Extract loads the preview page, waits for the story registry to appear
// and returns the normalized entry collection.
func (e *Extractor) Extract(ctx context.Context) ([]*storyllms.Entry, error) {
	page, err := e.openPage(ctx)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	if err := page.Navigate(siteOrigin + previewPath); err != nil {
		return nil, fmt.Errorf("navigating to preview: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("loading preview: %w", err)
	}

	if err := e.waitRegistry(ctx, page); err != nil {
		return nil, err
	}

	entries, report, err := registry.Locate(ctx, &pageEvaluator{page: page})
	if err != nil {
		return nil, err
	}

	e.logger.Debug("story registry located", "strategy", report.Strategy, "entries", len(entries))
	for _, reason := range report.Skipped {
		e.logger.Info("registry item skipped", "reason", reason)
	}

	return entries, nil
}

// ReadPage navigates to the documentation view of the given story and
// returns the inner HTML of its content container.
func (e *Extractor) ReadPage(ctx context.Context, storyID string) (string, error) {
	page, err := e.openPage(ctx)
	if err != nil {
		return "", err
	}
	defer page.Close()

	docsURL := fmt.Sprintf("%s%s?viewMode=docs&id=%s",
		siteOrigin, previewPath, url.QueryEscape(storyllms.DocsPageID(storyID)))
	if err := page.Navigate(docsURL); err != nil {
		return "", fmt.Errorf("navigating to docs page: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("loading docs page: %w", err)
	}

	el, err := page.Timeout(e.docsTimeout).Element(docsContainer)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", storyllms.Errorf(storyllms.ENOTFOUND,
			"docs container did not attach for story %q within %s", storyID, e.docsTimeout)
	}

	obj, err := el.CancelTimeout().Eval(`() => this.innerHTML`)
	if err != nil {
		return "", fmt.Errorf("reading docs container: %w", err)
	}

	return obj.Value.Str(), nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (e *Extractor) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}

	err := e.router.Stop()
	if cerr := e.browser.Close(); err == nil {
		err = cerr
	}
	e.launcher.Kill()
	return err
}

// openPage creates a fresh page bound to ctx with content security
// policy bypass enabled. Interception responses are cross-origin-shaped,
// so a site policy would otherwise block them.
func (e *Extractor) openPage(ctx context.Context) (*rod.Page, error) {
	if e.closed.Load() {
		return nil, storyllms.Errorf(storyllms.EINVALID, "extractor is closed")
	}

	page, err := e.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	page = page.Context(ctx)

	if err := (proto.PageSetBypassCSP{Enabled: true}).Call(page); err != nil {
		page.Close()
		return nil, fmt.Errorf("bypassing content security policy: %w", err)
	}

	return page, nil
}

// waitRegistry blocks until the preview object appears on the page,
// bounded by the registry timeout.
func (e *Extractor) waitRegistry(ctx context.Context, page *rod.Page) error {
	if err := page.Timeout(e.registryTimeout).Wait(rod.Eval(registryProbeJS)); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return storyllms.Errorf(storyllms.ENOTFOUND,
			"story registry did not appear within %s; the site does not look like a built storybook", e.registryTimeout)
	}
	return nil
}

// serve answers one intercepted browser request from the site tree.
func (e *Extractor) serve(h *rod.Hijack) {
	asset, err := e.resolver.Resolve(h.Request.URL().Path)
	if err != nil {
		if storyllms.ErrorCode(err) == storyllms.ENOTFOUND {
			h.Response.Payload().ResponseCode = http.StatusNotFound
		} else {
			h.Response.Payload().ResponseCode = http.StatusInternalServerError
		}
		h.Response.SetBody(storyllms.ErrorMessage(err))
		return
	}

	h.Response.Payload().ResponseCode = http.StatusOK
	h.Response.SetHeader("Content-Type", asset.ContentType)
	h.Response.SetBody(asset.Body)
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (e *Extractor) LauncherPID() int {
	return e.launcher.PID()
}
