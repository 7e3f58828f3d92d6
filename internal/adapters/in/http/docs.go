package http

import (
	"encoding/json"

	"waterdelivery/internal/generated/servers"

	"github.com/swaggo/swag"
)

func init() {
	swag.Register(swag.Name, contractDoc{})
}

// contractDoc serves the embedded OpenAPI contract as /swagger/doc.json.
type contractDoc struct{}

func (contractDoc) ReadDoc() string {
	spec, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}

	doc, err := json.Marshal(spec)
	if err != nil {
		return "{}"
	}
	return string(doc)
}
