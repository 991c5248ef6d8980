package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"foodorder/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var openAPIDocument []byte

var registerDocOnce sync.Once

// APIContract is the embedded OpenAPI document. It validates request bodies
// against the component schemas and serves the document to swagger UI.
type APIContract struct {
	doc *openapi3.T
}

func LoadAPIContract(ctx context.Context) (*APIContract, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	contract := &APIContract{doc: doc}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, contract)
	})
	return contract, nil
}

// ReadDoc implements swag.Swagger.
func (a *APIContract) ReadDoc() string {
	return string(openAPIDocument)
}

// ValidateBody checks a JSON request body against the named component schema.
func (a *APIContract) ValidateBody(schema string, body []byte) error {
	ref, ok := a.doc.Components.Schemas[schema]
	if !ok || ref.Value == nil {
		return fmt.Errorf("openapi schema %q is not defined", schema)
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	if err := ref.Value.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}
