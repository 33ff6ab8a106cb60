package maintpage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alnah/go-maintpage/internal/purge"
)

// Pruner removes CSS rules that no content source references.
type Pruner interface {
	Prune(ctx context.Context, css string, content []Content, safelist Safelist) (PruneResult, error)
}

// ContentPruner extracts selector candidates from the content sources and
// keeps only the rules they reference. Rejected selectors are logged at
// debug level.
type ContentPruner struct {
	Logger zerolog.Logger
}

// Compile-time interface check.
var _ Pruner = (*ContentPruner)(nil)

// Prune returns the surviving CSS in expanded form. Unreadable content,
// globs that match nothing, invalid patterns and unparseable CSS wrap
// ErrPrune.
func (p *ContentPruner) Prune(ctx context.Context, css string, content []Content, safelist Safelist) (PruneResult, error) {
	compiled, err := purge.CompileSafelist(safelist.Standard, safelist.Deep, safelist.Greedy)
	if err != nil {
		return PruneResult{}, fmt.Errorf("%w: safelist: %w", ErrPrune, err)
	}

	sources := make([]purge.Source, len(content))
	for i, c := range content {
		sources[i] = purge.Source{Path: c.Path, Raw: c.Raw, Extension: c.Extension}
	}
	candidates, err := purge.Extract(ctx, sources)
	if err != nil {
		if ctx.Err() != nil {
			return PruneResult{}, err
		}
		return PruneResult{}, fmt.Errorf("%w: %w", ErrPrune, err)
	}
	if e := p.Logger.Debug(); e.Enabled() {
		e.Int("candidates", candidates.Len()).
			Strs("files", candidates.Files).
			Strs("words", candidates.Words()).
			Msg("Extracted selector candidates")
	}

	out, rejected, err := purge.CSS(css, candidates, compiled)
	if err != nil {
		return PruneResult{}, fmt.Errorf("%w: %w", ErrPrune, err)
	}
	for _, sel := range rejected {
		p.Logger.Debug().Str("selector", sel).Msg("Rejected")
	}

	return PruneResult{CSS: out, Rejected: rejected}, nil
}
