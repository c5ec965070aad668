package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strings"

	"github.com/katalvlaran/paratope/exact"
	"github.com/katalvlaran/paratope/parallelotope"
	"github.com/katalvlaran/paratope/symbolic"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type flags struct {
	file          string
	vars          []string
	format        string
	checkTopology bool
	parallel      bool
	corners       bool
	logLevel      string
}

// report is the YAML shape of the result. Expressions marshal through
// symbolic.Affine's TextMarshaler.
type report struct {
	Vars        []string          `yaml:"vars"`
	Base        string            `yaml:"base"`
	Generators  []string          `yaml:"generators"`
	Expressions []symbolic.Affine `yaml:"expressions"`
	Corners     []string          `yaml:"corners,omitempty"`
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "genrep",
		Short: "Generator representation of a parallelotope",
		Long: `genrep reads a half-space description (A, b) of a parallelotope and prints
its base vertex, edge generators and one affine expression per axis over
variables ranging in [0,1].

Rows i < dim of A are upper facets A_i·x <= b[i]; b[i+dim] is the matching
lower offset A_i·x >= -b[i+dim].`,
		Version:       Version + " (" + Commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			err := run(stdin, stdout, stderr, f)
			if err != nil {
				fmt.Fprintln(stderr, "error:", err)
			}
			return err
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.Flags().StringVarP(&f.file, "file", "f", "-", "input file (YAML or JSON), - for stdin")
	cmd.Flags().StringSliceVar(&f.vars, "vars", nil, "variable names, overriding the file (comma separated)")
	cmd.Flags().StringVar(&f.format, "format", formatText, "output format: text or yaml")
	cmd.Flags().BoolVar(&f.checkTopology, "check-topology", false, "reject empty, flat or non-parallel descriptions")
	cmd.Flags().BoolVar(&f.parallel, "parallel", false, "solve the per-axis systems concurrently")
	cmd.Flags().BoolVar(&f.corners, "corners", false, "also list all 2^dim vertices")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	return cmd
}

func run(stdin io.Reader, stdout, stderr io.Writer, f flags) error {
	if f.format != formatText && f.format != formatYAML {
		return fmt.Errorf("unknown format %q", f.format)
	}
	level, err := parseLevel(f.logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	in, err := readInput(stdin, f.file)
	if err != nil {
		return err
	}

	opts := []parallelotope.Option{parallelotope.WithLogger(logger)}
	if f.checkTopology {
		opts = append(opts, parallelotope.WithTopologyCheck())
	}
	if f.parallel {
		opts = append(opts, parallelotope.WithParallelAxes())
	}
	p, err := in.build(f.vars, opts...)
	if err != nil {
		return err
	}

	rep, err := compute(p, f.corners)
	if err != nil {
		return err
	}
	logger.Info("generator representation", "dim", p.Dim())

	if f.format == formatYAML {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err = enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	}

	return writeText(stdout, rep)
}

func readInput(stdin io.Reader, path string) (*inputFile, error) {
	if path == "" || path == "-" {
		return decodeInput(stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return decodeInput(fh)
}

func compute(p *parallelotope.Parallelotope, withCorners bool) (*report, error) {
	base, err := p.BaseVertex()
	if err != nil {
		return nil, err
	}
	gens, err := p.Generators(base)
	if err != nil {
		return nil, err
	}
	exprs, err := p.GeneratorRep()
	if err != nil {
		return nil, err
	}

	vars := p.Vars()
	rep := &report{
		Vars:        make([]string, len(vars)),
		Base:        exact.FormatVec(base),
		Generators:  formatVecs(gens),
		Expressions: exprs,
	}
	for i, v := range vars {
		rep.Vars[i] = v.Name()
	}
	if withCorners {
		corners, err := p.Corners()
		if err != nil {
			return nil, err
		}
		rep.Corners = formatVecs(corners)
	}

	return rep, nil
}

func formatVecs(vs [][]*big.Rat) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = exact.FormatVec(v)
	}

	return out
}

func writeText(w io.Writer, rep *report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "base: %s\n", rep.Base)
	for j, g := range rep.Generators {
		fmt.Fprintf(&b, "gen[%s]: %s\n", rep.Vars[j], g)
	}
	for i, e := range rep.Expressions {
		fmt.Fprintf(&b, "x[%d] = %s\n", i, e)
	}
	for k, c := range rep.Corners {
		fmt.Fprintf(&b, "corner[%d]: %s\n", k, c)
	}
	_, err := io.WriteString(w, b.String())

	return err
}

func parseLevel(lvl string) (slog.Level, error) {
	switch strings.ToUpper(lvl) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", lvl)
	}
}
