package resolver

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/rivetbuild/rivet/internal/fspath"
)

// Loop is the slice of the full resolution pipeline that import map results
// get replayed into. Resolve attempts a single request, scoped to root
// unless root is zero. It reports ok=false when nothing was found, which is
// not an error: errors are reserved for malformed input and infrastructure
// failures.
type Loop interface {
	Resolve(ctx context.Context, request Request, root fspath.Path) (result ResolveResult, ok bool, err error)
}

// An Applier interprets ImportMapResult values against a resolution loop.
//
// Apply owns the fallback contract that the mapping types themselves
// deliberately don't:
//
//   - ResolvedResult is returned as-is.
//   - AliasResult resolves the derived request first; if that misses, the
//     ORIGINAL request is retried unchanged (scoped to originalRoot).
//   - AlternativesResult tries each element in order and accepts the first
//     hit; when every alternative is exhausted, the original request is
//     retried once.
//   - NoEntryResult falls through to resolving the original request.
//
// A miss from the final original-request attempt is reported as ok=false,
// never as an error.
type Applier struct {
	Loop Loop

	// Log, when set, traces each interpretation step.
	Log *log.Logger
}

// Apply carries out an import map result. original must be the request whose
// lookup produced the result.
func (a Applier) Apply(ctx context.Context, result ImportMapResult, original Request, originalRoot fspath.Path) (ResolveResult, bool, error) {
	resolved, ok, err := a.applyOne(ctx, result)
	if err != nil || ok {
		return resolved, ok, err
	}
	if a.Log != nil {
		if text, hasText := original.RequestString(); hasText {
			a.Log.Debug("falling back to original request", "request", text)
		}
	}
	return a.Loop.Resolve(ctx, original, originalRoot)
}

// applyOne interprets a single result without the original-request fallback;
// Apply adds that exactly once at the top level.
func (a Applier) applyOne(ctx context.Context, result ImportMapResult) (ResolveResult, bool, error) {
	if err := ctx.Err(); err != nil {
		return ResolveResult{}, false, err
	}

	switch r := result.(type) {
	case ResolvedResult:
		return r.Result, true, nil

	case AliasResult:
		if a.Log != nil {
			if text, hasText := r.Request.RequestString(); hasText {
				a.Log.Debug("resolving alias", "request", text, "root", r.Root.Text)
			}
		}
		return a.Loop.Resolve(ctx, r.Request, r.Root)

	case AlternativesResult:
		for _, alternative := range r.Results {
			resolved, ok, err := a.applyOne(ctx, alternative)
			if err != nil {
				return ResolveResult{}, false, err
			}
			if ok {
				return resolved, true, nil
			}
		}
		return ResolveResult{}, false, nil

	case NoEntryResult:
		return ResolveResult{}, false, nil
	}

	panic("Internal error: unhandled import map result kind")
}
