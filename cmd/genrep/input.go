package main

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/katalvlaran/paratope/exact"
	"github.com/katalvlaran/paratope/parallelotope"
	"github.com/katalvlaran/paratope/symbolic"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyInput is returned when the input carries no matrix rows.
	ErrEmptyInput = errors.New("genrep: empty input")

	// ErrBadNumber is returned for a scalar that is not an integer, decimal or fraction.
	ErrBadNumber = errors.New("genrep: bad number")
)

// number is a YAML scalar decoded straight into an exact rational, so
// "0.1" and "1/3" never pass through float64.
type number struct {
	*big.Rat
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number: %w", node.Line, ErrBadNumber)
	}
	r, err := exact.ParseRat(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %q: %w: %w", node.Line, node.Value, ErrBadNumber, err)
	}
	n.Rat = r

	return nil
}

// inputFile is the on-disk half-space description:
//
//	vars: [x, y]
//	A:
//	  - [1, 0]
//	  - [0, 1]
//	b: [2, 3, 0, 0]
type inputFile struct {
	Vars []string   `yaml:"vars"`
	A    [][]number `yaml:"A"`
	B    []number   `yaml:"b"`
}

// decodeInput reads a single YAML (or JSON) document. Unknown keys are rejected.
func decodeInput(r io.Reader) (*inputFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var in inputFile
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("decode input: %w", err)
	}
	if len(in.A) == 0 {
		return nil, ErrEmptyInput
	}

	return &in, nil
}

// variables picks the variable names: override, then the file, then x0..x{n-1}.
func (in *inputFile) variables(override []string) ([]symbolic.Var, error) {
	names := override
	if len(names) == 0 {
		names = in.Vars
	}
	if len(names) == 0 {
		n := len(in.A[0])
		names = make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("x%d", i)
		}
	}

	return symbolic.NewVars(names...)
}

// build converts the decoded input into a Parallelotope.
func (in *inputFile) build(override []string, opts ...parallelotope.Option) (*parallelotope.Parallelotope, error) {
	vars, err := in.variables(override)
	if err != nil {
		return nil, err
	}

	rows := make([][]*big.Rat, len(in.A))
	for i, row := range in.A {
		rows[i] = ratsOf(row)
	}
	A, err := exact.NewRatDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("matrix A: %w", err)
	}

	return parallelotope.NewExact(A, ratsOf(in.B), vars, opts...)
}

func ratsOf(ns []number) []*big.Rat {
	out := make([]*big.Rat, len(ns))
	for i, n := range ns {
		out[i] = n.Rat
	}

	return out
}
