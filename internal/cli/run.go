// Package cli implements the command-line flows behind cmd/bramble.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/bramble"
	"github.com/aretw0/bramble/internal/logging"
	"github.com/aretw0/bramble/internal/presentation/tui"
	"github.com/aretw0/bramble/pkg/adapters/yamlfile"
	"github.com/aretw0/bramble/pkg/domain"
	"github.com/aretw0/bramble/pkg/ports"
)

// SolveOptions contains the configuration for the solve command.
type SolveOptions struct {
	ProblemPath string
	Demo        bool
	JSON        bool
	Debug       bool
	DepthLimit  int
	Goals       []string
	Initial     []string
}

// Solve handles the 'solve' command: it loads a problem (from a YAML file
// or the bundled demo), runs the solver and renders the result to out.
func Solve(ctx context.Context, opts SolveOptions, out io.Writer) error {
	logger := logging.NewNop()
	if opts.Debug {
		logger = logging.New(slog.LevelDebug)
	}

	loader, name, err := resolveLoader(opts)
	if err != nil {
		return err
	}

	eng, err := bramble.New(loader,
		bramble.WithLogger(logger),
		bramble.WithDepthLimit(opts.DepthLimit),
		bramble.WithName(name),
	)
	if err != nil {
		return err
	}

	result, err := solveWithOverrides(ctx, eng, loader, opts)
	if err != nil {
		return err
	}

	if opts.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprint(out, tui.RenderResult(result))
	return nil
}

func resolveLoader(opts SolveOptions) (ports.ProblemLoader, string, error) {
	if opts.Demo {
		loader, err := SchoolLoader().Build()
		if err != nil {
			return nil, "", err
		}
		return loader, "school", nil
	}

	if opts.ProblemPath == "" {
		return nil, "", fmt.Errorf("a problem file is required (or use --demo)")
	}

	loader, err := yamlfile.Load(opts.ProblemPath)
	if err != nil {
		return nil, "", err
	}
	return loader, loader.Name(), nil
}

// solveWithOverrides runs either the bundled problem or, when --goal /
// --fact flags are given, a problem assembled from the command line.
func solveWithOverrides(ctx context.Context, eng *bramble.Engine, loader ports.ProblemLoader, opts SolveOptions) (*domain.Result, error) {
	if len(opts.Goals) == 0 && len(opts.Initial) == 0 {
		return eng.SolveProblem(ctx)
	}

	initial, goals, err := loader.Problem()
	if err != nil {
		return nil, err
	}
	if len(opts.Initial) > 0 {
		initial = toFacts(opts.Initial)
	}
	if len(opts.Goals) > 0 {
		goals = toFacts(opts.Goals)
	}

	return eng.Solve(ctx, domain.NewState(initial...), goals)
}

func toFacts(raw []string) domain.Facts {
	facts := make([]domain.Fact, len(raw))
	for i, r := range raw {
		facts[i] = domain.Fact(r)
	}
	return domain.NewFacts(facts...)
}
