package prompts

import (
	"github.com/cloudwego/eino/components/prompt"
)

// Template variables expected by ToolRecord
const (
	VarCategories     = "categories"
	VarSubcategories  = "subcategories"
	VarTags           = "tags"
	VarOutputTemplate = "output_template"
	VarURL            = "url"
	VarFragment       = "fragment"
)

// SystemPrompts contains the prompt templates used by the normalizer
type SystemPrompts struct {
	ToolRecord prompt.ChatTemplate
}

// NewSystemPrompts creates and initializes all prompt templates
func NewSystemPrompts() *SystemPrompts {
	return &SystemPrompts{
		ToolRecord: createToolRecordTemplate(),
	}
}
