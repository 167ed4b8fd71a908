package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	//go:embed schema/extension.schema.json
	tomlSchemaBytes []byte
	//go:embed schema/extension-legacy.schema.json
	jsonSchemaBytes []byte
)

// compiledSchema compiles one embedded schema on first use.
type compiledSchema struct {
	name   string
	source []byte

	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

var (
	schemas = map[Format]*compiledSchema{
		FormatTOML: {name: "extension.schema.json", source: tomlSchemaBytes},
		FormatJSON: {name: "extension-legacy.schema.json", source: jsonSchemaBytes},
	}
	printer = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/id", "/grammars/rust/repository")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Err folds the issues of an invalid result into one error. It returns nil
// for a valid result.
func (r *ValidationResult) Err() error {
	if r == nil || r.Valid {
		return nil
	}
	msgs := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		msgs = append(msgs, issue.String())
	}
	return fmt.Errorf("invalid manifest: %s", strings.Join(msgs, "; "))
}

func (c *compiledSchema) get() (*jsonschema.Schema, error) {
	c.once.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(c.source))
		if err != nil {
			c.err = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(c.name, doc); err != nil {
			c.err = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		c.schema, c.err = compiler.Compile(c.name)
		if c.err != nil {
			c.err = fmt.Errorf("compiling schema: %w", c.err)
		}
	})
	return c.schema, c.err
}

// Validate checks a decoded manifest document against the schema of its
// format. The error return is for schema compilation failures; validation
// issues are returned in the ValidationResult.
func Validate(raw map[string]any, format Format) (*ValidationResult, error) {
	cs, ok := schemas[format]
	if !ok {
		return nil, fmt.Errorf("no schema for manifest format %s", format)
	}
	schema, err := cs.get()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	// Round-trip through JSON so TOML integers and datetimes reach the
	// validator as the JSON types it expects.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: extractIssues(validationErr),
	}, nil
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{
			Message: ve.Error(),
		}}
	}
	return deduplicateIssues(issues)
}

func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		msg := ""
		if ve.ErrorKind != nil {
			if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Container keywords only say that a branch failed.
		if keyword == "anyOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ValidationIssue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectValidationIssues(cause, issues)
	}
}

func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
