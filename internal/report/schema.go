package report

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaSource string

// ValidationError lists every schema violation found in a report.
type ValidationError struct {
	Problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("report does not match schema: %s", strings.Join(e.Problems, "; "))
}

// Validator checks reports against the embedded #Report definition.
//
// A Validator owns its CUE context and is not safe for concurrent use.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()
	root := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("compile report schema: %w", err)
	}

	schema := root.LookupPath(cue.ParsePath("#Report"))
	if !schema.Exists() {
		return nil, fmt.Errorf("report schema has no #Report definition")
	}

	return &Validator{ctx: ctx, schema: schema}, nil
}

// Validate unifies r with #Report and reports any conflict.
func (v *Validator) Validate(r *Report) error {
	if r == nil {
		return &ValidationError{Problems: []string{"report is nil"}}
	}

	data := v.ctx.Encode(r)
	if err := data.Err(); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	unified := v.schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		var problems []string
		for _, e := range cueerrors.Errors(err) {
			problems = append(problems, e.Error())
		}
		return &ValidationError{Problems: problems}
	}
	return nil
}
