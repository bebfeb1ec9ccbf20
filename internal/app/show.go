package app

import (
	"context"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/ui/output"
	"go.trai.ch/stamp/internal/ui/style"
)

// Show renders the selected targets and prints their metadata to w the way the
// demo consumer prints the generated packages: an identity line followed by one
// line per project dependency, then per target dependency. Nothing is written.
func (a *App) Show(ctx context.Context, w io.Writer, opts TargetOptions) error {
	manifests, err := a.load(opts)
	if err != nil {
		return err
	}

	out := output.New(w)
	for _, m := range manifests {
		result, err := a.generator.Render(ctx, m)
		if err != nil {
			return err
		}
		if err := printMetadata(out, result.Metadata); err != nil {
			return err
		}
	}
	return nil
}

func printMetadata(out *termenv.Output, meta *domain.Metadata) error {
	identity := fmt.Sprintf("! '%s' '%s' '%s'",
		meta.Identity.Name, meta.Identity.Version, meta.Identity.Description)
	if _, err := fmt.Fprintln(out, output.Paint(out, identity, termenv.RGBColor(string(style.Iris)))); err != nil {
		return err
	}

	for _, set := range meta.Sets() {
		for _, dep := range set.Dependencies {
			if _, err := fmt.Fprintf(out, "* %s %s\n", dep.Name, dep.Version); err != nil {
				return err
			}
		}
	}
	return nil
}
