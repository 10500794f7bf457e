package openai

import (
	"reflect"
	"testing"

	"github.com/user/courier/pkg/llm"
)

func TestToWireRequestRoleMapping(t *testing.T) {
	req := llm.Request{
		Model: llm.OpenAI(ModelGPT4, 8192),
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "be brief"},
			{Role: llm.RoleUser, Content: "hello"},
			{Role: llm.RoleAssistant, Content: "hi"},
			{Role: llm.RoleUser, Content: "bye"},
		},
	}

	wire := toWireRequest(req, llm.OpenAI(ModelGPT35Turbo, 16385))

	if len(wire.Messages) != len(req.Messages) {
		t.Fatalf("expected %d messages, got %d", len(req.Messages), len(wire.Messages))
	}
	for i, msg := range req.Messages {
		if wire.Messages[i].Role != string(msg.Role) {
			t.Errorf("message %d: expected role %q, got %q", i, msg.Role, wire.Messages[i].Role)
		}
		if wire.Messages[i].Content != msg.Content {
			t.Errorf("message %d: expected content %q, got %q", i, msg.Content, wire.Messages[i].Content)
		}
	}

	// Assistant turns reserve the tool-call field as empty; other roles
	// leave it unset.
	if wire.Messages[2].ToolCalls == nil || len(wire.Messages[2].ToolCalls) != 0 {
		t.Errorf("expected empty non-nil tool calls on assistant message, got %#v", wire.Messages[2].ToolCalls)
	}
	if wire.Messages[1].ToolCalls != nil {
		t.Errorf("expected nil tool calls on user message, got %#v", wire.Messages[1].ToolCalls)
	}

	if !wire.Stream {
		t.Error("expected stream flag forced true")
	}
	if wire.Model != ModelGPT4 {
		t.Errorf("expected model %q, got %q", ModelGPT4, wire.Model)
	}
}

func TestToWireRequestForeignFamilyFallsBackToDefault(t *testing.T) {
	temp := float32(0.5)
	req := llm.Request{
		Model:       llm.Anthropic("claude-3-opus", 200000),
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: "hello"}},
		Stop:        []string{"STOP"},
		Temperature: &temp,
	}
	def := llm.OpenAI(ModelGPT4O, 128000)

	wire := toWireRequest(req, def)

	if wire.Model != ModelGPT4O {
		t.Errorf("expected default model %q, got %q", ModelGPT4O, wire.Model)
	}
	// Everything except the model passes through unchanged.
	if !reflect.DeepEqual(wire.Stop, req.Stop) {
		t.Errorf("expected stop %v, got %v", req.Stop, wire.Stop)
	}
	if wire.Temperature == nil || *wire.Temperature != temp {
		t.Errorf("expected temperature %v, got %v", temp, wire.Temperature)
	}
	if len(wire.Messages) != 1 || wire.Messages[0].Content != "hello" {
		t.Errorf("messages altered by fallback: %#v", wire.Messages)
	}
}

func TestToWireRequestCustomModelIsServedDirectly(t *testing.T) {
	req := llm.Request{
		Model:    llm.Custom("local-llama", 32768),
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "hello"}},
	}

	wire := toWireRequest(req, llm.OpenAI(ModelGPT4O, 128000))

	if wire.Model != "local-llama" {
		t.Errorf("expected custom model to pass through, got %q", wire.Model)
	}
}

func TestToWireRequestOmitsUnsetFields(t *testing.T) {
	req := llm.Request{
		Model:    llm.OpenAI(ModelGPT4, 8192),
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "hello"}},
	}

	wire := toWireRequest(req, llm.OpenAI(ModelGPT4, 8192))

	if wire.Temperature != nil {
		t.Errorf("expected nil temperature, got %v", *wire.Temperature)
	}
	if wire.Stop != nil {
		t.Errorf("expected nil stop, got %v", wire.Stop)
	}
	if wire.Tools != nil || wire.ToolChoice != nil {
		t.Error("tool fields must stay empty")
	}
}
