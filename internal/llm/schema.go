package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is the JSON shape a structured-output reply must satisfy. It
// compiles its definition once, on first use, so the shared package
// vars (the question-set schema) pay compilation once per process.
//
// Schemas hold compilation state and must be passed by pointer.
type Schema struct {
	// Name identifies the schema to the provider; kebab-case, e.g.
	// "exam-question-set".
	Name string

	// Description tells the model what the shape represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any

	once       sync.Once
	compiled   *jsonschema.Schema
	compileErr error
}

// Check validates a reply against the schema. Parse and validation
// failures come back as *ErrBadReply carrying the reply.
func (s *Schema) Check(raw json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrBadReply{Content: raw, Err: fmt.Errorf("reply is not JSON: %w", err)}
	}

	s.once.Do(s.compile)
	if s.compileErr != nil {
		return fmt.Errorf("schema %q does not compile: %w", s.Name, s.compileErr)
	}

	if err := s.compiled.Validate(doc); err != nil {
		return &ErrBadReply{Content: raw, Err: fmt.Errorf("reply fails schema %q: %w", s.Name, err)}
	}
	return nil
}

func (s *Schema) compile() {
	// The compiler wants a parsed document, not a Go map with typed
	// values; round-trip through JSON to normalise it.
	buf, err := json.Marshal(s.Definition)
	if err != nil {
		s.compileErr = fmt.Errorf("marshal definition: %w", err)
		return
	}
	var doc any
	if err := json.Unmarshal(buf, &doc); err != nil {
		s.compileErr = fmt.Errorf("parse definition: %w", err)
		return
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("mem://%s.json", s.Name)
	if err := c.AddResource(url, doc); err != nil {
		s.compileErr = fmt.Errorf("add resource: %w", err)
		return
	}
	s.compiled, s.compileErr = c.Compile(url)
}
