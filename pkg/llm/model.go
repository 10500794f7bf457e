package llm

// Family identifies the backend family a model belongs to. The set is
// closed: dispatch on it with a switch, not reflection.
type Family string

const (
	FamilyOpenAI    Family = "openai"
	FamilyAnthropic Family = "anthropic"

	// FamilyCustom marks a user-defined model served by an OpenAI-compatible
	// endpoint. Custom models cannot be looked up in any built-in catalog,
	// so they carry their own context window.
	FamilyCustom Family = "custom"
)

// Model selects a concrete model within a backend family. The zero value is
// invalid; use one of the constructors.
type Model struct {
	Family Family
	ID     string

	// ContextWindow is the model's context size in tokens, used for prompt
	// budgeting. Always set by the constructors.
	ContextWindow int
}

// OpenAI returns a selector for a model in the OpenAI family.
func OpenAI(id string, contextWindow int) Model {
	return Model{Family: FamilyOpenAI, ID: id, ContextWindow: contextWindow}
}

// Anthropic returns a selector for a model in the Anthropic family. Only the
// selector exists here; no Anthropic wire adapter is modeled.
func Anthropic(id string, contextWindow int) Model {
	return Model{Family: FamilyAnthropic, ID: id, ContextWindow: contextWindow}
}

// Custom returns a selector for a user-defined model. The caller must supply
// the context window explicitly since there is no catalog to consult.
func Custom(id string, contextWindow int) Model {
	return Model{Family: FamilyCustom, ID: id, ContextWindow: contextWindow}
}

// IsZero reports whether the selector is the invalid zero value.
func (m Model) IsZero() bool {
	return m.Family == "" && m.ID == ""
}
