package feed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tylerneylon/rss/pkg/errors"
)

// itemsSchema is the shape contract for rss_items.json files. Extra
// properties are allowed; hand-maintained files sometimes carry fields
// like category that the tool passes through untouched.
const itemsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["author", "description", "link", "pubDate", "title"],
    "properties": {
      "author": {"type": "string", "minLength": 1},
      "description": {"type": "string", "minLength": 1},
      "guid": {"type": "string"},
      "link": {"type": "string", "minLength": 1},
      "pubDate": {"type": "string", "minLength": 1},
      "title": {"type": "string", "minLength": 1}
    }
  }
}`

// rootSchema is the shape contract for rss_root.json.
const rootSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["description", "link", "title"],
  "properties": {
    "copyright": {"type": "string"},
    "description": {"type": "string", "minLength": 1},
    "language": {"type": "string"},
    "link": {"type": "string", "minLength": 1},
    "managingEditor": {"type": "string"},
    "title": {"type": "string", "minLength": 1},
    "webMaster": {"type": "string"}
  }
}`

var (
	compiledItemsSchema = jsonschema.MustCompileString("rss_items.schema.json", itemsSchema)
	compiledRootSchema  = jsonschema.MustCompileString("rss_root.schema.json", rootSchema)

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Report collects the validation problems found in one file. An empty
// Problems slice means the file passed every check.
type Report struct {
	Path     string
	Problems []string
}

// OK reports whether the file passed validation.
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

// CheckItemsFile validates one rss_items.json file: JSON shape against
// the embedded schema, per-item field validation, template-value
// detection, and pubDate parseability.
func CheckItemsFile(path string) Report {
	report := Report{Path: path}

	raw, problem := checkSchema(path, compiledItemsSchema)
	if problem != "" {
		report.Problems = append(report.Problems, problem)
		return report
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		report.Problems = append(report.Problems, fmt.Sprintf("decode: %v", err))
		return report
	}

	for i, item := range items {
		prefix := fmt.Sprintf("item %d", i)
		for _, field := range item.TemplateFields() {
			report.Problems = append(report.Problems,
				fmt.Sprintf("%s: %s still holds the template value", prefix, field))
		}
		report.Problems = append(report.Problems, fieldProblems(prefix, item)...)
		if item.PubDate != "" {
			if _, err := ParseNetDate(item.PubDate); err != nil {
				report.Problems = append(report.Problems,
					fmt.Sprintf("%s: %s", prefix, errors.UserMessage(err)))
			}
		}
	}
	return report
}

// CheckChannelFile validates the rss_root.json channel metadata file.
func CheckChannelFile(path string) Report {
	report := Report{Path: path}

	raw, problem := checkSchema(path, compiledRootSchema)
	if problem != "" {
		report.Problems = append(report.Problems, problem)
		return report
	}

	var ch Channel
	if err := json.Unmarshal(raw, &ch); err != nil {
		report.Problems = append(report.Problems, fmt.Sprintf("decode: %v", err))
		return report
	}
	report.Problems = append(report.Problems, fieldProblems("channel", ch)...)
	return report
}

// checkSchema reads path and validates its raw JSON against schema.
// It returns the raw bytes and, when something is wrong, a problem string.
func checkSchema(path string, schema *jsonschema.Schema) ([]byte, string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Sprintf("read: %v", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Sprintf("not valid JSON: %v", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Sprintf("schema: %s", schemaErrorSummary(err))
	}
	return raw, ""
}

// schemaErrorSummary extracts the most specific cause from a jsonschema
// validation error, which otherwise prints its whole tree.
func schemaErrorSummary(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation != "" {
		return fmt.Sprintf("%s: %s", ve.InstanceLocation, ve.Message)
	}
	return ve.Message
}

// fieldProblems runs struct-level validation and renders each failure as
// a short problem string.
func fieldProblems(prefix string, v any) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{fmt.Sprintf("%s: %v", prefix, err)}
	}
	var problems []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s: %s is required", prefix, fieldName(fe)))
		case "url":
			problems = append(problems, fmt.Sprintf("%s: %s must be a URL (got %q)", prefix, fieldName(fe), fe.Value()))
		case "email":
			problems = append(problems, fmt.Sprintf("%s: %s must be an email address (got %q)", prefix, fieldName(fe), fe.Value()))
		default:
			problems = append(problems, fmt.Sprintf("%s: %s fails %s", prefix, fieldName(fe), fe.Tag()))
		}
	}
	return problems
}

// fieldName lowercases the struct field name to match the JSON key.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "field"
	}
	return string(name[0]|0x20) + name[1:]
}
