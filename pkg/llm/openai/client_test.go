package openai

import (
	"context"
	"testing"
	"time"

	"github.com/user/courier/pkg/llm"
)

func TestAvailableModelsBuiltinCatalog(t *testing.T) {
	client := New(&Config{Model: llm.OpenAI(ModelGPT4, 8192)}, &fakeStore{})

	models := client.AvailableModels()
	if len(models) != len(BuiltinModels()) {
		t.Fatalf("expected the built-in catalog, got %d models", len(models))
	}
	for _, m := range models {
		if m.Family != llm.FamilyOpenAI {
			t.Errorf("unexpected family %q in built-in catalog", m.Family)
		}
	}
}

func TestAvailableModelsCustomActiveModel(t *testing.T) {
	custom := llm.Custom("local-llama", 32768)
	client := New(&Config{Model: custom}, &fakeStore{})

	models := client.AvailableModels()
	if len(models) != 1 || models[0] != custom {
		t.Fatalf("expected exactly the custom model, got %v", models)
	}
}

func TestAvailableModelsOverrideWins(t *testing.T) {
	override := []llm.Model{
		llm.OpenAI("gpt-4o-mini", 128000),
		llm.Custom("local-llama", 32768),
	}
	client := New(&Config{
		Model:          llm.OpenAI(ModelGPT4, 8192),
		ModelOverrides: override,
	}, &fakeStore{})

	models := client.AvailableModels()
	if len(models) != len(override) {
		t.Fatalf("expected the override catalog, got %v", models)
	}
	for i := range override {
		if models[i] != override[i] {
			t.Errorf("model %d: expected %v, got %v", i, override[i], models[i])
		}
	}
}

func TestUpdateReplacesConfigAtomically(t *testing.T) {
	client := New(&Config{
		BaseURL:         "https://old.example.test/v1",
		Model:           llm.OpenAI(ModelGPT4, 8192),
		SettingsVersion: 1,
	}, &fakeStore{})

	newModel := llm.OpenAI(ModelGPT4O, 128000)
	client.Update(newModel, "https://new.example.test/v1", 10*time.Second, 2)

	if got := client.Model(); got != newModel {
		t.Errorf("expected model %v, got %v", newModel, got)
	}
	if got := client.SettingsVersion(); got != 2 {
		t.Errorf("expected settings version 2, got %d", got)
	}
}

func TestUpdateDoesNotTouchCredential(t *testing.T) {
	client := New(&Config{BaseURL: "https://example.test/v1"}, &fakeStore{})
	if err := client.SetCredential(context.Background(), "secret"); err != nil {
		t.Fatal(err)
	}

	client.Update(llm.OpenAI(ModelGPT4O, 128000), "https://example.test/v1", 0, 2)

	if !client.IsAuthenticated() {
		t.Error("reconfiguration must not clear the credential")
	}
}

func TestDefaultModel(t *testing.T) {
	client := New(&Config{}, &fakeStore{})
	if got := client.Model().ID; got != ModelGPT4O {
		t.Errorf("expected default model %q, got %q", ModelGPT4O, got)
	}
}
