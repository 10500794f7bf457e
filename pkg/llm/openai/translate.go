package openai

import "github.com/user/courier/pkg/llm"

// toWireRequest converts a neutral request into the chat completions body.
// Translation is total and side-effect-free: every documented request shape
// produces a body, and provider state is never touched.
//
// Model resolution: the request's model is used when it belongs to this
// adapter (the OpenAI family, or a custom model served by an OpenAI-style
// endpoint). A model from any other family substitutes the provider's
// configured default. That is a compatibility policy for requests built
// against a different active backend, not an error.
func toWireRequest(req llm.Request, defaultModel llm.Model) wireRequest {
	model := req.Model
	switch model.Family {
	case llm.FamilyOpenAI, llm.FamilyCustom:
	default:
		model = defaultModel
	}
	if model.IsZero() {
		model = defaultModel
	}

	messages := make([]wireMessage, len(req.Messages))
	for i, msg := range req.Messages {
		wm := wireMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
		// Assistant turns carry the tool-call field, always empty: tool
		// calling is not modeled, but the shape stays additive.
		if msg.Role == llm.RoleAssistant {
			wm.ToolCalls = []wireToolCall{}
		}
		messages[i] = wm
	}

	return wireRequest{
		Model:       model.ID,
		Messages:    messages,
		Stream:      true,
		Stop:        req.Stop,
		Temperature: req.Temperature,
	}
}
