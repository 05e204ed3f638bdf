package intent

import (
	"log/slog"
	"sync"
)

// Resolver is the two-tier classifier. Until Train succeeds it always
// uses the keyword fallback; afterwards the trained model takes over,
// with the fallback still catching any trained-path failure. Predict
// never returns an error — chat availability beats classifier quality.
type Resolver struct {
	mu    sync.RWMutex
	model *bayesModel
}

// NewResolver returns an untrained Resolver (fallback only).
func NewResolver() *Resolver {
	return &Resolver{}
}

// Trained reports whether a trained model is active.
func (r *Resolver) Trained() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.model != nil
}

// Train builds a classifier from the corpus and swaps it in atomically.
// Retraining replaces the previous model; on error the previous model
// (or untrained state) is kept.
func (r *Resolver) Train(samples []Sample) error {
	m, err := train(samples)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.model = m
	r.mu.Unlock()
	return nil
}

// Predict resolves text to an intent and a confidence in [0,1].
func (r *Resolver) Predict(text string) (Intent, float64) {
	r.mu.RLock()
	m := r.model
	r.mu.RUnlock()

	if m == nil {
		return Fallback(text)
	}

	label, confidence, ok := predictSafe(m, text)
	if !ok {
		return Fallback(text)
	}
	return label, confidence
}

// predictSafe runs the trained model, converting a panic into a
// downgrade signal instead of letting it escape the resolver.
func predictSafe(m *bayesModel, text string) (label Intent, confidence float64, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Warn("trained intent model failed, using keyword fallback", "panic", rec)
			ok = false
		}
	}()
	label, confidence = m.predict(text)
	return label, confidence, true
}
