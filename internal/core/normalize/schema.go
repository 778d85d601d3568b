package normalize

import (
	"github.com/cloudwego/eino/schema"
	"github.com/eino-contrib/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"extractor/internal/domain"
)

type fieldSpec struct {
	key         string
	kind        schema.DataType
	items       schema.DataType
	description string
}

// toolRecordFields mirrors domain.ToolRecordKeys, in the same order.
var toolRecordFields = []fieldSpec{
	{key: "name", kind: schema.String, description: "Tool name derived from the scraped title"},
	{key: "tagline", kind: schema.String, description: "Short explicit tagline or empty"},
	{key: "description", kind: schema.String, description: "Faithful summary of the scraped snippet"},
	{key: "website_url", kind: schema.String, description: "The evidence URL"},
	{key: "logo_url", kind: schema.String, description: "Explicit logo URL or empty"},
	{key: "tool_thumbnail_url", kind: schema.String, description: "Scraped thumbnail URL or empty"},
	{key: "twitter_url", kind: schema.String, description: "Explicit Twitter/X URL or empty"},
	{key: "linkedin_url", kind: schema.String, description: "Explicit LinkedIn URL or empty"},
	{key: "team_members", kind: schema.Array, items: schema.String, description: "Explicitly named team members"},
	{key: "is_verified", kind: schema.Boolean, description: "Always false"},
	{key: "company_name", kind: schema.String, description: "Explicitly named company or empty"},
	{key: "company_website", kind: schema.String, description: "Explicit company website or empty"},
	{key: "company_logo", kind: schema.String, description: "Explicit company logo URL or empty"},
	{key: "company_verified", kind: schema.Boolean, description: "Always false"},
	{key: "company_team_size", kind: schema.String, description: "Explicit team size or empty"},
	{key: "company_funding_round", kind: schema.String, description: "Explicit funding round or empty"},
	{key: "company_funding_amount", kind: schema.String, description: "Explicit funding amount or empty"},
	{key: "company_funding_info", kind: schema.String, description: "Explicit funding details or empty"},
	{key: "categories", kind: schema.Array, items: schema.Integer, description: "Category IDs strongly supported by the evidence"},
	{key: "subcategories", kind: schema.Array, items: schema.Integer, description: "Subcategory IDs strongly supported by the evidence"},
	{key: "tags", kind: schema.Array, items: schema.Integer, description: "Tag IDs strongly supported by the evidence"},
}

// ToolRecordSchema forces the model to answer with the exact ToolRecord shape.
func ToolRecordSchema() *jsonschema.Schema {
	props := orderedmap.New[string, *jsonschema.Schema]()
	for _, f := range toolRecordFields {
		field := &jsonschema.Schema{
			Type:        string(f.kind),
			Description: f.description,
		}
		if f.kind == schema.Array {
			field.Items = &jsonschema.Schema{Type: string(f.items)}
		}
		props.Set(f.key, field)
	}
	return &jsonschema.Schema{
		Type:       string(schema.Object),
		Required:   append([]string(nil), domain.ToolRecordKeys...),
		Properties: props,
	}
}
