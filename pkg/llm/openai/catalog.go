package openai

import "github.com/user/courier/pkg/llm"

// Canonical chat model identifiers for the built-in catalog.
const (
	ModelGPT35Turbo = "gpt-3.5-turbo"
	ModelGPT4       = "gpt-4"
	ModelGPT4Turbo  = "gpt-4-turbo-preview"
	ModelGPT4O      = "gpt-4o"
)

// builtinCatalog enumerates the models this adapter knows out of the box,
// with their context windows. Custom models are never listed here; they are
// constructed by the user with llm.Custom.
var builtinCatalog = []llm.Model{
	llm.OpenAI(ModelGPT35Turbo, 16385),
	llm.OpenAI(ModelGPT4, 8192),
	llm.OpenAI(ModelGPT4Turbo, 128000),
	llm.OpenAI(ModelGPT4O, 128000),
}

// BuiltinModels returns a copy of the built-in model catalog.
func BuiltinModels() []llm.Model {
	out := make([]llm.Model, len(builtinCatalog))
	copy(out, builtinCatalog)
	return out
}

// ModelByID resolves a built-in model by its canonical identifier.
func ModelByID(id string) (llm.Model, bool) {
	for _, m := range builtinCatalog {
		if m.ID == id {
			return m, true
		}
	}
	return llm.Model{}, false
}
