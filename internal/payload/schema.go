package payload

import (
	"embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	resumeProfileSchema    = mustSchema("schemas/resume_profile.json")
	skillGapAnalysisSchema = mustSchema("schemas/skill_gap_analysis.json")
)

func mustSchema(name string) *gojsonschema.Schema {
	b, err := schemaFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("read schema %s: %v", name, err))
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(b))
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", name, err))
	}
	return s
}

// validate cleans raw, checks it against schema and returns the cleaned
// document.
func validate(schema *gojsonschema.Schema, raw []byte) ([]byte, error) {
	doc := []byte(CleanJSONBlock(string(raw)))
	if len(doc) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if result.Valid() {
		return doc, nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, re := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{Field: re.Field(), Message: re.Description()})
	}
	return nil, ve
}
