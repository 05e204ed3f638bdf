// Package coach wires profile validation, intent resolution, response
// building, and storage into the conversational entry points the API
// and MCP surfaces call.
package coach

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/imfiit/fitcoach/internal/intent"
	"github.com/imfiit/fitcoach/internal/profile"
	"github.com/imfiit/fitcoach/internal/responder"
	"github.com/imfiit/fitcoach/internal/storage"
)

// noProfileReply is sent when a user chats before creating a profile.
// The exchange is not recorded: history starts with the first coached reply.
const noProfileReply = "I need your basic information first. Please provide your age, weight, height, and gender."

// Coach is the conversation orchestrator.
type Coach struct {
	store     *storage.Store
	resolver  *intent.Resolver
	responder *responder.Responder
	now       func() time.Time
}

// Option customizes a Coach.
type Option func(*Coach)

// WithResponder overrides the default responder (tests pin the random source).
func WithResponder(r *responder.Responder) Option {
	return func(c *Coach) { c.responder = r }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Coach) { c.now = now }
}

// New creates a Coach over a store with an untrained resolver. Call
// Train (or TrainDefault) to activate the statistical classifier; until
// then the keyword fallback handles every message.
func New(store *storage.Store, opts ...Option) *Coach {
	c := &Coach{
		store:     store,
		resolver:  intent.NewResolver(),
		responder: responder.New(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Train builds the intent classifier from a labeled corpus.
func (c *Coach) Train(samples []intent.Sample) error {
	if err := c.resolver.Train(samples); err != nil {
		return fmt.Errorf("training intent classifier: %w", err)
	}
	slog.Info("intent classifier trained", "samples", len(samples))
	return nil
}

// TrainDefault trains on the built-in corpus.
func (c *Coach) TrainDefault() error {
	return c.Train(intent.DefaultCorpus())
}

// ClassifierTrained reports whether the statistical classifier is active.
func (c *Coach) ClassifierTrained() bool {
	return c.resolver.Trained()
}

// ProfileSummary is the condensed profile echo returned on creation.
type ProfileSummary struct {
	BMI          float64              `json:"bmi"`
	Category     profile.BMICategory  `json:"category"`
	FitnessLevel profile.FitnessLevel `json:"fitness_level"`
}

// CreateResult is the profile-creation response: a summary plus the
// full initial assessment.
type CreateResult struct {
	Profile    ProfileSummary   `json:"profile"`
	Assessment responder.Report `json:"initial_assessment"`
}

// CreateProfile validates the input, persists the profile, and returns
// the initial assessment. Re-creating a profile for the same user
// replaces it without touching chat history.
func (c *Coach) CreateProfile(in profile.Input) (CreateResult, error) {
	p, err := profile.New(in)
	if err != nil {
		return CreateResult{}, err
	}
	if err := c.store.SaveProfile(p); err != nil {
		return CreateResult{}, fmt.Errorf("saving profile: %w", err)
	}

	slog.Info("profile created", "user_id", p.UserID, "bmi", p.BMI, "category", p.BMICategory)
	return CreateResult{
		Profile: ProfileSummary{
			BMI:          p.BMI,
			Category:     p.BMICategory,
			FitnessLevel: p.FitnessLevel,
		},
		Assessment: responder.Assessment(p),
	}, nil
}

// ChatResult is one processed message.
type ChatResult struct {
	MessageID       string         `json:"message_id,omitempty"`
	Text            string         `json:"response"`
	Intent          intent.Intent  `json:"intent,omitempty"`
	Confidence      float64        `json:"confidence,omitempty"`
	Data            map[string]any `json:"data,omitempty"`
	Suggestions     []string       `json:"suggestions,omitempty"`
	RequiresProfile bool           `json:"requires_profile,omitempty"`
}

// ProcessMessage resolves the message's intent and builds the reply.
// Without a stored profile the user gets a fixed prompt for their
// details and nothing is recorded; with one, exactly one history entry
// is appended per call.
func (c *Coach) ProcessMessage(userID, text string) (ChatResult, error) {
	p, err := c.store.GetProfile(userID)
	if err == storage.ErrNotFound {
		return ChatResult{Text: noProfileReply, RequiresProfile: true}, nil
	}
	if err != nil {
		return ChatResult{}, fmt.Errorf("loading profile: %w", err)
	}

	label, confidence := c.resolver.Predict(text)
	resp := c.responder.Respond(p, label, text)

	msg, err := c.store.AppendMessage(storage.Message{
		UserID:    userID,
		CreatedAt: c.now().UTC(),
		Body:      text,
		Intent:    string(label),
		Response:  resp.Text,
	})
	if err != nil {
		return ChatResult{}, fmt.Errorf("recording message: %w", err)
	}

	slog.Debug("message processed", "user_id", userID, "intent", label, "confidence", confidence)
	return ChatResult{
		MessageID:   msg.ID,
		Text:        resp.Text,
		Intent:      label,
		Confidence:  confidence,
		Data:        resp.Data,
		Suggestions: resp.Suggestions,
	}, nil
}

// GetAssessment rebuilds the full assessment for a stored profile.
// Returns storage.ErrNotFound when the user has no profile.
func (c *Coach) GetAssessment(userID string) (responder.Report, error) {
	p, err := c.store.GetProfile(userID)
	if err != nil {
		return responder.Report{}, err
	}
	return responder.Assessment(p), nil
}

// History returns a user's chat history, oldest first.
func (c *Coach) History(userID string, limit int) ([]storage.Message, error) {
	return c.store.History(userID, limit)
}
