// Package pdf prints invoices with a headless Chrome.
package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/ports"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

var _ ports.InvoiceRenderer = (*ChromedpInvoiceRenderer)(nil)

const (
	defaultRenderTimeout = 30 * time.Second

	// A4 in inches.
	paperWidth  = 8.27
	paperHeight = 11.69
	margin      = 0.4
)

type ChromedpConfig struct {
	// RemoteURL points at a running Chrome DevTools endpoint. When empty a
	// local browser is launched.
	RemoteURL string
	NoSandbox bool
	Timeout   time.Duration
}

type ChromedpInvoiceRenderer struct {
	timeout     time.Duration
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

func NewChromedpInvoiceRenderer(cfg ChromedpConfig, logger *zap.Logger) *ChromedpInvoiceRenderer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}

	r := &ChromedpInvoiceRenderer{
		timeout: timeout,
		logger:  logger.Named("pdf"),
	}

	if cfg.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), cfg.RemoteURL)
		return r
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if cfg.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}
	r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)

	return r
}

func (r *ChromedpInvoiceRenderer) Render(ctx context.Context, doc ports.InvoiceDocument) ([]byte, error) {
	html, err := RenderInvoiceHTML(doc)
	if err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", doc.Reference, err)
	}

	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx, chromedp.WithLogf(r.logger.Sugar().Debugf))
	defer browserCancel()

	browserCtx, cancel := context.WithTimeout(browserCtx, r.timeout)
	defer cancel()

	// Stop the browser tab when the caller gives up.
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithMarginRight(margin).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print invoice %s: %w", doc.Reference, err)
	}

	return pdf, nil
}

// Close shuts the browser allocator down.
func (r *ChromedpInvoiceRenderer) Close() {
	r.allocCancel()
}
