package intent

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"
)

// tokenizeConcurrency bounds the corpus tokenization workers in train.
const tokenizeConcurrency = 4

// Sample is one labeled training example.
type Sample struct {
	Text   string `json:"text"`
	Intent Intent `json:"intent"`
}

// bayesModel is a multinomial naive Bayes text classifier over a
// bag-of-words vocabulary. A model is immutable once built; retraining
// builds a replacement.
type bayesModel struct {
	classes  []Intent
	vocab    map[string]int
	logPrior map[Intent]float64
	// logLikelihood[class][tokenIndex], Laplace-smoothed.
	logLikelihood map[Intent][]float64
	// logUnseen[class] is the smoothed likelihood for out-of-vocabulary
	// tokens, so unseen words penalize every class equally.
	logUnseen map[Intent]float64
}

// tokenize lower-cases text and splits it into alphanumeric runs.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// train builds a model from a labeled corpus. Sample texts are
// tokenized concurrently (bounded), then counted sequentially.
func train(samples []Sample) (*bayesModel, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("empty training corpus")
	}

	tokens := make([][]string, len(samples))
	g := new(errgroup.Group)
	g.SetLimit(tokenizeConcurrency)
	for i, s := range samples {
		i, s := i, s
		g.Go(func() error {
			if s.Intent == "" {
				return fmt.Errorf("sample %d has no intent label", i)
			}
			tokens[i] = tokenize(s.Text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	vocab := make(map[string]int)
	classDocs := make(map[Intent]int)
	classTokenCounts := make(map[Intent]map[int]int)
	classTotals := make(map[Intent]int)
	var classes []Intent

	for i, s := range samples {
		if _, seen := classDocs[s.Intent]; !seen {
			classes = append(classes, s.Intent)
			classTokenCounts[s.Intent] = make(map[int]int)
		}
		classDocs[s.Intent]++
		for _, tok := range tokens[i] {
			idx, ok := vocab[tok]
			if !ok {
				idx = len(vocab)
				vocab[tok] = idx
			}
			classTokenCounts[s.Intent][idx]++
			classTotals[s.Intent]++
		}
	}
	if len(vocab) == 0 {
		return nil, fmt.Errorf("training corpus has no tokens")
	}

	m := &bayesModel{
		classes:       classes,
		vocab:         vocab,
		logPrior:      make(map[Intent]float64, len(classes)),
		logLikelihood: make(map[Intent][]float64, len(classes)),
		logUnseen:     make(map[Intent]float64, len(classes)),
	}

	total := float64(len(samples))
	vocabSize := float64(len(vocab))
	for _, c := range classes {
		m.logPrior[c] = math.Log(float64(classDocs[c]) / total)
		denom := float64(classTotals[c]) + vocabSize
		likes := make([]float64, len(vocab))
		for _, idx := range vocab {
			count := float64(classTokenCounts[c][idx])
			likes[idx] = math.Log((count + 1) / denom)
		}
		m.logLikelihood[c] = likes
		m.logUnseen[c] = math.Log(1 / denom)
	}
	return m, nil
}

// predict scores text against every class and returns the argmax with
// its posterior probability. Text with no tokens yields General with
// the catch-all confidence, matching the fallback's no-match behavior.
func (m *bayesModel) predict(text string) (Intent, float64) {
	toks := tokenize(text)
	if len(toks) == 0 {
		return General, fallbackNoneConfidence
	}

	scores := make([]float64, len(m.classes))
	for ci, c := range m.classes {
		score := m.logPrior[c]
		likes := m.logLikelihood[c]
		for _, tok := range toks {
			if idx, ok := m.vocab[tok]; ok {
				score += likes[idx]
			} else {
				score += m.logUnseen[c]
			}
		}
		scores[ci] = score
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	// Posterior of the argmax via log-sum-exp normalization.
	var sum float64
	for _, s := range scores {
		sum += math.Exp(s - scores[best])
	}
	return m.classes[best], 1 / sum
}
