package rendering

import (
	"github.com/jonathan/cv-studio/internal/types"
	"golang.org/x/sync/errgroup"
)

// Output bundles both projections of one document snapshot.
type Output struct {
	Preview string
	Print   string
}

// RenderBoth renders the preview and print projections of the same snapshot
// concurrently. Both read the document without mutating it, so this is safe;
// it is what the editor uses to refresh the screen while an export is
// prepared.
func RenderBoth(doc types.ResumeDocument, opts PreviewOptions) (*Output, error) {
	var out Output
	var g errgroup.Group

	g.Go(func() error {
		html, err := RenderPreview(doc, opts)
		if err != nil {
			return err
		}
		out.Preview = html
		return nil
	})
	g.Go(func() error {
		html, err := RenderPrint(doc)
		if err != nil {
			return err
		}
		out.Print = html
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
