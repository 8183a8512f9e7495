package puzzle

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
	cueyaml "cuelang.org/go/encoding/yaml"
)

// puzzleSchema is the CUE schema every document must satisfy before
// the loader interprets a single field. Cross-field rules (clue
// presence, dimensions, totals) live in Build; the schema only pins
// down field shapes.
const puzzleSchema = `
name?: string
rows?: [...int & >=0]
cols?: [...int & >=0]
fleet!: [...int & >0]
hints?: [...{
	row:    int & >=0
	col:    int & >=0
	state:  "ship" | "sea"
	shape?: "sub" | "top" | "bottom" | "left" | "right" | "mid_h" | "mid_v"
}]
solution?: [...string & =~"^[S~]+$"]
`

// Format selects the document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// validateSchema checks raw document bytes against the embedded CUE
// schema. The returned error carries CUE's position information.
func validateSchema(name string, data []byte, format Format) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(puzzleSchema, cue.Filename("puzzle-schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile puzzle schema: %w", err)
	}

	var doc cue.Value
	switch format {
	case FormatJSON:
		expr, err := cuejson.Extract(name, data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		doc = ctx.BuildExpr(expr)
	case FormatYAML:
		file, err := cueyaml.Extract(name, data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		doc = ctx.BuildFile(file)
	default:
		return fmt.Errorf("unknown document format %d", format)
	}
	if err := doc.Err(); err != nil {
		return fmt.Errorf("build %s: %w", name, err)
	}

	// Unifying against an absent list field leaves a satisfiable open
	// list behind, so presence of the one required field is checked on
	// the document itself.
	if !doc.LookupPath(cue.ParsePath("fleet")).Exists() {
		return fmt.Errorf("%s does not satisfy the puzzle schema: missing required field fleet", name)
	}

	unified := schema.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%s does not satisfy the puzzle schema: %w", name, err)
	}
	return nil
}
