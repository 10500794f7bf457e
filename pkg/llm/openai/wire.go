package openai

// Wire types for the chat completions protocol. The request reserves the
// tool-related fields even though this adapter never populates them, so
// adding tool calling later only fills in existing shapes.

// wireRequest is the chat completions request body.
type wireRequest struct {
	Model       string        `json:"model"`
	Messages    []wireMessage `json:"messages"`
	Stream      bool          `json:"stream"`
	Stop        []string      `json:"stop,omitempty"`
	Temperature *float32      `json:"temperature,omitempty"`
	Tools       []wireTool    `json:"tools,omitempty"`
	ToolChoice  *string       `json:"tool_choice,omitempty"`
}

// wireMessage is the role-tagged message shape. ToolCalls is non-nil and
// empty on assistant messages and nil on the others.
type wireMessage struct {
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	ToolCalls []wireToolCall `json:"tool_calls,omitempty"`
}

// wireTool and wireToolCall exist only to reserve the protocol shapes.
type wireTool struct {
	Type     string `json:"type"`
	Function any    `json:"function"`
}

type wireToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function any    `json:"function"`
}

// streamChunk is one server-sent fragment of a streaming response. Only the
// delta path matters here; everything else is carried for completeness.
type streamChunk struct {
	ID      string         `json:"id"`
	Object  string         `json:"object"`
	Model   string         `json:"model"`
	Choices []streamChoice `json:"choices"`
}

type streamChoice struct {
	Index        int         `json:"index"`
	Delta        streamDelta `json:"delta"`
	FinishReason *string     `json:"finish_reason"`
}

// streamDelta carries the incremental content of a fragment. Content is a
// pointer so a role-only or keep-alive fragment (no content at all) is
// distinguishable from an empty-string delta.
type streamDelta struct {
	Role    string  `json:"role,omitempty"`
	Content *string `json:"content,omitempty"`
}

// errorBody is the shape of a non-streaming error response.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
