package llm

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single turn in a conversation. Messages are value
// objects: build one per turn and never mutate it afterwards.
type Message struct {
	Role    Role
	Content string
}

// Request is a backend-neutral chat completion request. The message order is
// the caller's order and adapters must preserve it verbatim. Interactive use
// always streams, so there is no per-request streaming toggle; the wire
// adapter forces the flag on.
type Request struct {
	Model       Model
	Messages    []Message
	Stop        []string
	Temperature *float32
}
