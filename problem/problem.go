// SPDX-License-Identifier: MIT

package problem

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/fahp/comparison"
	"github.com/katalvlaran/fahp/topsis"
	"gopkg.in/yaml.v3"
)

// Problem is a decision problem document.
type Problem struct {
	Name                 string                `yaml:"name"`
	Criteria             []Criterion           `yaml:"criteria"`
	Alternatives         []string              `yaml:"alternatives"`
	CriteriaJudgments    []Judgment            `yaml:"criteria_judgments"`
	AlternativeJudgments map[string][]Judgment `yaml:"alternative_judgments"`
}

// Criterion is a named criterion with its TOPSIS polarity.
type Criterion struct {
	Name     string          `yaml:"name"`
	Polarity topsis.Polarity `yaml:"polarity"`
}

// UnmarshalYAML accepts either a mapping or a bare scalar name.
func (c *Criterion) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		c.Name, c.Polarity = node.Value, topsis.Benefit

		return nil
	}

	type plain Criterion
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = Criterion(p)

	return nil
}

// Judgment is one pairwise judgment: A compared with B.
type Judgment struct {
	A     string  `yaml:"a"`
	B     string  `yaml:"b"`
	Value string  `yaml:"value,omitempty"`
	Level *int    `yaml:"level,omitempty"`
	Delta float64 `yaml:"delta,omitempty"`
}

// toComparison converts j to a builder judgment.
func (j Judgment) toComparison() (comparison.Judgment, error) {
	switch {
	case j.Value != "" && j.Level != nil:
		return comparison.Judgment{}, fmt.Errorf("judgment (%q, %q) sets both value and level: %w", j.A, j.B, ErrInvalidProblem)
	case j.Level != nil:
		return comparison.ByLevel(j.A, j.B, *j.Level, j.Delta), nil
	case j.Value != "":
		if j.Delta != 0 {
			return comparison.Judgment{}, fmt.Errorf("judgment (%q, %q) sets delta without level: %w", j.A, j.B, ErrInvalidProblem)
		}
		return comparison.ByText(j.A, j.B, j.Value), nil
	default:
		return comparison.Judgment{}, fmt.Errorf("judgment (%q, %q) has neither value nor level: %w", j.A, j.B, ErrInvalidProblem)
	}
}

// Decode reads one YAML document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode problem: empty document: %w", ErrInvalidProblem)
		}
		return nil, fmt.Errorf("decode problem: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Load reads and decodes the problem file at path.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read problem: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Validate checks the document's structure. Name resolution inside
// judgments is left to Build.
func (p *Problem) Validate() error {
	if len(p.Criteria) == 0 {
		return fmt.Errorf("Validate: no criteria: %w", ErrInvalidProblem)
	}
	if len(p.Alternatives) == 0 {
		return fmt.Errorf("Validate: no alternatives: %w", ErrInvalidProblem)
	}
	known := make(map[string]bool, len(p.Criteria))
	for i, c := range p.Criteria {
		if c.Name == "" {
			return fmt.Errorf("Validate: criterion %d has no name: %w", i, ErrInvalidProblem)
		}
		known[c.Name] = true
	}
	for i, a := range p.Alternatives {
		if a == "" {
			return fmt.Errorf("Validate: alternative %d has no name: %w", i, ErrInvalidProblem)
		}
	}
	for name := range p.AlternativeJudgments {
		if !known[name] {
			return fmt.Errorf("Validate: alternative judgments for unknown criterion %q: %w", name, ErrInvalidProblem)
		}
	}

	return nil
}

// CriteriaNames returns the criterion names in declaration order.
func (p *Problem) CriteriaNames() []string {
	out := make([]string, len(p.Criteria))
	for i, c := range p.Criteria {
		out[i] = c.Name
	}

	return out
}

// Polarity returns the per-criterion polarity vector.
func (p *Problem) Polarity() []topsis.Polarity {
	out := make([]topsis.Polarity, len(p.Criteria))
	for i, c := range p.Criteria {
		out[i] = c.Polarity
	}

	return out
}

// Matrices are the comparison matrices of a built problem.
type Matrices struct {
	Criteria     *comparison.Matrix
	Alternatives []*comparison.Matrix // index-aligned with Criteria
}

// Build validates p and assembles its matrices. opts are passed to every
// comparison.Build call.
//
// Errors:
//   - ErrInvalidProblem for structural problems.
//   - comparison and fuzzy sentinels for bad names or judgment values.
func (p *Problem) Build(opts ...comparison.Option) (*Matrices, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	crit, err := buildMatrix(p.CriteriaNames(), p.CriteriaJudgments, opts)
	if err != nil {
		return nil, fmt.Errorf("Build: criteria: %w", err)
	}

	alts := make([]*comparison.Matrix, len(p.Criteria))
	for k, c := range p.Criteria {
		alts[k], err = buildMatrix(p.Alternatives, p.AlternativeJudgments[c.Name], opts)
		if err != nil {
			return nil, fmt.Errorf("Build: alternatives under %q: %w", c.Name, err)
		}
	}

	return &Matrices{Criteria: crit, Alternatives: alts}, nil
}

func buildMatrix(names []string, js []Judgment, opts []comparison.Option) (*comparison.Matrix, error) {
	cjs := make([]comparison.Judgment, len(js))
	for i, j := range js {
		cj, err := j.toComparison()
		if err != nil {
			return nil, err
		}
		cjs[i] = cj
	}

	return comparison.Build(names, cjs, opts...)
}
