// Package detect orchestrates the per-cipher solvers: it parses the caller's
// cipher hint, fans the work out, and merges everything into one ranked,
// formatted candidate list.
package detect

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/plainsight-dev/plainsight/internal/classical"
	"github.com/plainsight-dev/plainsight/internal/english"
	"github.com/plainsight-dev/plainsight/internal/logging"
	"github.com/plainsight-dev/plainsight/internal/metrics"
	"github.com/plainsight-dev/plainsight/internal/ranker"
)

// ErrUnsupportedCipher is returned for hint strings outside the recognized
// set.
var ErrUnsupportedCipher = errors.New("unsupported cipher")

// DefaultTopN caps the ranked response when the caller does not ask for a
// specific count.
const DefaultTopN = 3

// hints maps the recognized cipher hint strings (lower-cased) to kinds.
var hints = map[string]classical.CipherKind{
	"auto detect":           classical.KindAuto,
	"caesar cipher":         classical.KindCaesar,
	"vigenere cipher":       classical.KindVigenere,
	"atbash cipher":         classical.KindAtbash,
	"affine cipher":         classical.KindAffine,
	"monoalphabetic cipher": classical.KindMonoalphabetic,
}

// ParseKind maps a cipher hint string to its CipherKind. Matching is
// case-insensitive and ignores surrounding whitespace; anything outside the
// recognized set yields ErrUnsupportedCipher.
func ParseKind(hint string) (classical.CipherKind, error) {
	kind, ok := hints[strings.ToLower(strings.TrimSpace(hint))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCipher, hint)
	}
	return kind, nil
}

// Hints returns the recognized cipher hint strings in display form.
func Hints() []string {
	return []string{
		"Auto Detect",
		"Caesar Cipher",
		"Vigenere Cipher",
		"Atbash Cipher",
		"Affine Cipher",
		"Monoalphabetic Cipher",
	}
}

// Options configures an Engine. The zero value is usable: it scores with the
// English scorer and uses the default solver tunables.
type Options struct {
	// Score overrides the English-likeness scorer.
	Score classical.ScoreFunc

	// Params tunes the solvers.
	Params classical.Params

	// Logger receives solver_degraded audit events from auto mode. Nil
	// disables them.
	Logger *logging.AuditLogger
}

// Engine runs detection requests. It holds no per-request state and is safe
// for concurrent use.
type Engine struct {
	score  classical.ScoreFunc
	params classical.Params
	logger *logging.AuditLogger
}

// New constructs an Engine from opts.
func New(opts Options) *Engine {
	score := opts.Score
	if score == nil {
		score = english.Score
	}
	return &Engine{
		score:  score,
		params: opts.Params,
		logger: opts.Logger,
	}
}

// Detect normalizes raw ciphertext, runs the solver(s) selected by kind, and
// returns up to topN formatted candidates, best first. KindAuto fans out all
// registered solvers concurrently and merges their output; any other kind
// runs exactly that solver. Identical (raw, kind, topN) input always yields
// an identical response.
func (e *Engine) Detect(ctx context.Context, raw string, kind classical.CipherKind, topN int) ([]classical.Record, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	norm, err := classical.Normalize(raw)
	if err != nil {
		return nil, err
	}

	var results []classical.ScoredResult
	if kind == classical.KindAuto {
		results = e.solveAll(ctx, norm.Letters)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	} else {
		solver, ok := classical.GetSolver(kind)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedCipher, kind)
		}
		results, err = e.runSolver(ctx, solver, norm.Letters)
		if err != nil {
			return nil, err
		}
	}

	ranked := ranker.Truncate(ranker.Rank(results), topN)

	records := make([]classical.Record, len(ranked))
	for i, r := range ranked {
		records[i] = classical.Format(r, norm.Restore)
	}
	return records, nil
}

// solveAll fans out every registered solver and concatenates their output in
// the registry's fixed order. A family whose search degenerates contributes
// nothing rather than failing the request; cancellation is surfaced by the
// caller's context check.
func (e *Engine) solveAll(ctx context.Context, letters string) []classical.ScoredResult {
	solvers := classical.Solvers()
	perSolver := make([][]classical.ScoredResult, len(solvers))
	errs := make([]error, len(solvers))

	var wg sync.WaitGroup
	for i, solver := range solvers {
		wg.Add(1)
		go func(i int, solver classical.Solver) {
			defer wg.Done()
			perSolver[i], errs[i] = e.runSolver(ctx, solver, letters)
		}(i, solver)
	}
	wg.Wait()

	var merged []classical.ScoredResult
	for i, results := range perSolver {
		if errs[i] != nil {
			if e.logger != nil && !errors.Is(errs[i], context.Canceled) && !errors.Is(errs[i], context.DeadlineExceeded) {
				_ = e.logger.Emit(logging.AuditEvent{
					EventType: logging.EventSolverDegraded,
					Decision:  logging.DecisionInfo,
					Reason:    errs[i].Error(),
					Metadata:  map[string]any{"cipher": string(solvers[i].Kind())},
				})
			}
			continue
		}
		merged = append(merged, results...)
	}
	return merged
}

func (e *Engine) runSolver(ctx context.Context, solver classical.Solver, letters string) ([]classical.ScoredResult, error) {
	start := time.Now()
	results, err := solver.Solve(ctx, letters, e.score, e.params)
	metrics.ObserveSolver(string(solver.Kind()), time.Since(start))
	return results, err
}
