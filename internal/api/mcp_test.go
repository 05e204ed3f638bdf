package api

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/imfiit/fitcoach/internal/coach"
	"github.com/imfiit/fitcoach/internal/storage"
)

// --- helpers ---

func newTestMCPCoach(t *testing.T) *coach.Coach {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return coach.New(store)
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("no content in result")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return tc.Text
}

func makeCallToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func makeReadResourceRequest(uri string) mcp.ReadResourceRequest {
	return mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func profileArgs() map[string]interface{} {
	return map[string]interface{}{
		"user_id": "mcp-user",
		"age":     30,
		"weight":  80.0,
		"height":  180.0,
		"gender":  "male",
		"goals":   []interface{}{"weight_loss"},
	}
}

// --- tests ---

func TestMCPCreateProfile(t *testing.T) {
	c := newTestMCPCoach(t)
	handler := mcpCreateProfile(c)

	result, err := handler(context.Background(), makeCallToolRequest("create_profile", profileArgs()))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool error: %s", toolText(t, result))
	}

	var payload struct {
		UserID  string `json:"user_id"`
		Profile struct {
			BMI      float64 `json:"bmi"`
			Category string  `json:"category"`
		} `json:"profile"`
		Assessment json.RawMessage `json:"initial_assessment"`
	}
	if err := json.Unmarshal([]byte(toolText(t, result)), &payload); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if payload.UserID != "mcp-user" {
		t.Errorf("user_id = %q", payload.UserID)
	}
	if payload.Profile.BMI != 24.69 || payload.Profile.Category != "normal" {
		t.Errorf("profile = %+v", payload.Profile)
	}
	if len(payload.Assessment) == 0 {
		t.Error("initial_assessment missing")
	}
}

func TestMCPCreateProfile_GeneratesUserID(t *testing.T) {
	c := newTestMCPCoach(t)
	handler := mcpCreateProfile(c)

	args := profileArgs()
	delete(args, "user_id")
	result, err := handler(context.Background(), makeCallToolRequest("create_profile", args))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool error: %s", toolText(t, result))
	}

	var payload struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal([]byte(toolText(t, result)), &payload); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if payload.UserID == "" {
		t.Error("user_id not generated")
	}
}

func TestMCPCreateProfile_InvalidInput(t *testing.T) {
	c := newTestMCPCoach(t)
	handler := mcpCreateProfile(c)

	args := profileArgs()
	args["gender"] = "robot"
	result, err := handler(context.Background(), makeCallToolRequest("create_profile", args))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for invalid gender")
	}
}

func TestMCPChat(t *testing.T) {
	c := newTestMCPCoach(t)

	createResult, err := mcpCreateProfile(c)(context.Background(), makeCallToolRequest("create_profile", profileArgs()))
	if err != nil || createResult.IsError {
		t.Fatalf("create_profile failed: %v / %v", err, createResult)
	}

	result, err := mcpChat(c)(context.Background(), makeCallToolRequest("chat", map[string]interface{}{
		"user_id": "mcp-user",
		"message": "hi",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool error: %s", toolText(t, result))
	}

	var payload struct {
		Text   string `json:"response"`
		Intent string `json:"intent"`
	}
	if err := json.Unmarshal([]byte(toolText(t, result)), &payload); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if payload.Intent != "greeting" {
		t.Errorf("intent = %q, want greeting", payload.Intent)
	}
	if !strings.Contains(payload.Text, "24.69") {
		t.Errorf("response does not quote the BMI: %q", payload.Text)
	}
}

func TestMCPChat_NoProfile(t *testing.T) {
	c := newTestMCPCoach(t)

	result, err := mcpChat(c)(context.Background(), makeCallToolRequest("chat", map[string]interface{}{
		"user_id": "stranger",
		"message": "hi",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool error: %s", toolText(t, result))
	}

	var payload struct {
		RequiresProfile bool `json:"requires_profile"`
	}
	if err := json.Unmarshal([]byte(toolText(t, result)), &payload); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if !payload.RequiresProfile {
		t.Error("requires_profile = false, want true")
	}
}

func TestMCPGetAssessment_NotFound(t *testing.T) {
	c := newTestMCPCoach(t)

	result, err := mcpGetAssessment(c)(context.Background(), makeCallToolRequest("get_assessment", map[string]interface{}{
		"user_id": "nobody",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for unknown user")
	}
}

func TestMCPResourceIntents(t *testing.T) {
	contents, err := mcpResourceIntents()(context.Background(), makeReadResourceRequest("coach://intents"))
	if err != nil {
		t.Fatalf("resource error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(contents))
	}

	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("expected TextResourceContents, got %T", contents[0])
	}

	var intents []string
	if err := json.Unmarshal([]byte(tc.Text), &intents); err != nil {
		t.Fatalf("unmarshal intents: %v", err)
	}
	if len(intents) != 15 {
		t.Errorf("got %d intents, want 15", len(intents))
	}
}
