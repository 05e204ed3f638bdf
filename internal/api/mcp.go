package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/imfiit/fitcoach/internal/coach"
	"github.com/imfiit/fitcoach/internal/intent"
	"github.com/imfiit/fitcoach/internal/profile"
	"github.com/imfiit/fitcoach/internal/storage"
)

// NewMCPServer creates an MCP server exposing the coach as tools and
// the intent vocabulary as a resource.
func NewMCPServer(c *coach.Coach) *server.MCPServer {
	s := server.NewMCPServer(
		"fitcoach",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("fitcoach — personalized fitness and nutrition coaching: profiles, assessments, and chat."),
		server.WithRecovery(),
	)

	// Tools
	s.AddTool(
		mcp.NewTool("create_profile",
			mcp.WithDescription("Create or replace a user's fitness profile and return the initial assessment."),
			mcp.WithString("user_id", mcp.Description("Stable user identifier; generated when omitted")),
			mcp.WithNumber("age", mcp.Description("Age in years"), mcp.Required()),
			mcp.WithNumber("weight", mcp.Description("Weight in kilograms"), mcp.Required()),
			mcp.WithNumber("height", mcp.Description("Height in centimeters"), mcp.Required()),
			mcp.WithString("gender", mcp.Description("male or female"), mcp.Required()),
			mcp.WithString("activity_level", mcp.Description("sedentary, light, moderate, active, or very_active")),
			mcp.WithString("fitness_level", mcp.Description("beginner, intermediate, advanced, or elite")),
			mcp.WithArray("goals", mcp.Description("Fitness goals, e.g. weight_loss, muscle_gain")),
			mcp.WithArray("dietary_restrictions", mcp.Description("Dietary restrictions, e.g. vegetarian, vegan")),
		),
		mcpCreateProfile(c),
	)

	s.AddTool(
		mcp.NewTool("chat",
			mcp.WithDescription("Send a message to the fitness coach on behalf of a user."),
			mcp.WithString("user_id", mcp.Description("User identifier"), mcp.Required()),
			mcp.WithString("message", mcp.Description("The user's message"), mcp.Required()),
		),
		mcpChat(c),
	)

	s.AddTool(
		mcp.NewTool("get_assessment",
			mcp.WithDescription("Return the full fitness assessment for a user with a stored profile."),
			mcp.WithString("user_id", mcp.Description("User identifier"), mcp.Required()),
		),
		mcpGetAssessment(c),
	)

	// Resources
	s.AddResource(
		mcp.NewResource(
			"coach://intents",
			"Intent Vocabulary",
			mcp.WithResourceDescription("The intents the coach can resolve messages to"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceIntents(),
	)

	return s
}

func mcpCreateProfile(c *coach.Coach) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		gender, err := req.RequireString("gender")
		if err != nil {
			return mcpError("gender is required"), nil
		}
		age, err := req.RequireInt("age")
		if err != nil {
			return mcpError("age is required"), nil
		}
		weight, err := req.RequireFloat("weight")
		if err != nil {
			return mcpError("weight is required"), nil
		}
		height, err := req.RequireFloat("height")
		if err != nil {
			return mcpError("height is required"), nil
		}

		userID := req.GetString("user_id", "")
		if userID == "" {
			userID = uuid.New().String()
		}

		in := profile.Input{
			UserID:              userID,
			Age:                 age,
			Weight:              weight,
			Height:              height,
			Gender:              gender,
			ActivityLevel:       req.GetString("activity_level", ""),
			FitnessLevel:        req.GetString("fitness_level", ""),
			Goals:               req.GetStringSlice("goals", nil),
			DietaryRestrictions: req.GetStringSlice("dietary_restrictions", nil),
		}

		res, err := c.CreateProfile(in)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to create profile: %v", err)), nil
		}

		b, err := json.Marshal(map[string]any{
			"user_id":            userID,
			"profile":            res.Profile,
			"initial_assessment": res.Assessment,
		})
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal result: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpChat(c *coach.Coach) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		userID, err := req.RequireString("user_id")
		if err != nil {
			return mcpError("user_id is required"), nil
		}
		message, err := req.RequireString("message")
		if err != nil {
			return mcpError("message is required"), nil
		}

		res, err := c.ProcessMessage(userID, message)
		if err != nil {
			return mcpError(fmt.Sprintf("chat failed: %v", err)), nil
		}

		b, err := json.Marshal(res)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal result: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpGetAssessment(c *coach.Coach) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		userID, err := req.RequireString("user_id")
		if err != nil {
			return mcpError("user_id is required"), nil
		}

		rep, err := c.GetAssessment(userID)
		if errors.Is(err, storage.ErrNotFound) {
			return mcpError(fmt.Sprintf("no profile for user %s", userID)), nil
		}
		if err != nil {
			return mcpError(fmt.Sprintf("assessment failed: %v", err)), nil
		}

		b, err := json.Marshal(rep)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal assessment: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpResourceIntents() server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.Marshal(intent.Vocabulary())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal intents: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
