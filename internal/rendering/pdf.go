package rendering

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/jonathan/cv-studio/internal/types"
)

const pdfRenderTimeout = 60 * time.Second

// A4 paper size in inches for PrintToPDF.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

// RenderPDF renders the print projection of a document to PDF bytes using a
// headless browser. The returned bytes are a complete artifact; any failure
// returns an error and no partial output.
func RenderPDF(ctx context.Context, doc types.ResumeDocument) ([]byte, error) {
	html, err := RenderPrint(doc)
	if err != nil {
		return nil, err
	}
	return htmlToPDF(ctx, html)
}

func htmlToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(browserCtx, pdfRenderTimeout)
	defer cancelRun()

	// Serve the page from a temp file so relative/data image references load
	// the same way they would from disk.
	tmpDir, err := os.MkdirTemp("", "cvstudio-")
	if err != nil {
		return nil, &RenderError{Message: "failed to create temp dir", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &RenderError{Message: "failed to write render input", Cause: err}
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "headless browser render failed", Cause: err}
	}
	return pdfBuf, nil
}
