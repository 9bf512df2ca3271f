package reason

import (
	"fmt"
	"math"
	"strings"
)

// Config holds the full parameter set for a reasoning agent's search
// strategy. All fields are populated regardless of the active method;
// fields irrelevant to the method are inert but present. Derive returns
// the method-scoped view.
//
// A Config is immutable by convention once built: construct it with
// Parse or Default and do not mutate it afterward.
type Config struct {
	// Method is the tree-search method to run.
	Method Method `json:"method"`
	// MaxDepth is the maximum tree depth. Shared by all methods.
	MaxDepth int `json:"max_depth"`
	// ForestSize is the number of independent trees. Shared by all methods.
	ForestSize int `json:"forest_size"`
	// RatingScale is the upper bound of the node rating scale. Shared by all methods.
	RatingScale int `json:"rating_scale"`
	// BeamSize is the number of candidates kept per level (beam_search, dfs).
	BeamSize int `json:"beam_size"`
	// AnswerApproach selects the final-answer policy (beam_search only).
	AnswerApproach AnswerApproach `json:"answer_approach"`
	// NSim is the number of simulations per expansion (mcts, lats).
	NSim int `json:"nsim"`
	// ExplorationConstant is the UCT exploration constant (mcts, lats).
	ExplorationConstant float64 `json:"exploration_constant"`
}

// Default returns a Config with the documented defaults.
func Default() Config {
	return Config{
		Method:              MethodBeamSearch,
		MaxDepth:            3,
		ForestSize:          1,
		RatingScale:         10,
		BeamSize:            3,
		AnswerApproach:      AnswerPool,
		NSim:                3,
		ExplorationConstant: 1.41,
	}
}

// ValidationError reports a config field that failed validation. It names
// the offending field, the rejected value, and the allowed value set or
// range.
type ValidationError struct {
	Field   string
	Value   any
	Allowed string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("reason config: invalid %s %v: must be %s", e.Field, e.Value, e.Allowed)
}

// Parse builds a Config from a raw record, as decoded from a YAML or JSON
// agent-definition document. Missing keys take their defaults; unknown
// keys are ignored so older definitions keep working against newer
// schemas. Parse is all-or-nothing: on the first invalid field it returns
// a *ValidationError and no Config.
func Parse(raw map[string]any) (Config, error) {
	cfg := Default()

	if v, ok := raw["method"]; ok {
		s, err := stringValue("method", v)
		if err != nil {
			return Config{}, err
		}
		cfg.Method = Method(s)
	}
	if v, ok := raw["answer_approach"]; ok {
		s, err := stringValue("answer_approach", v)
		if err != nil {
			return Config{}, err
		}
		cfg.AnswerApproach = AnswerApproach(s)
	}

	intFields := []struct {
		key  string
		dest *int
	}{
		{"max_depth", &cfg.MaxDepth},
		{"forest_size", &cfg.ForestSize},
		{"rating_scale", &cfg.RatingScale},
		{"beam_size", &cfg.BeamSize},
		{"nsim", &cfg.NSim},
	}
	for _, f := range intFields {
		if v, ok := raw[f.key]; ok {
			n, err := positiveInt(f.key, v)
			if err != nil {
				return Config{}, err
			}
			*f.dest = n
		}
	}

	if v, ok := raw["exploration_constant"]; ok {
		f, err := positiveReal("exploration_constant", v)
		if err != nil {
			return Config{}, err
		}
		cfg.ExplorationConstant = f
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks a Config built directly as a struct literal against the
// same constraints Parse enforces.
func (c Config) Validate() error {
	if !c.Method.Valid() {
		return &ValidationError{Field: "method", Value: c.Method, Allowed: "one of " + joinMethods()}
	}
	if !c.AnswerApproach.Valid() {
		return &ValidationError{Field: "answer_approach", Value: c.AnswerApproach, Allowed: "one of " + joinApproaches()}
	}
	ints := []struct {
		name  string
		value int
	}{
		{"max_depth", c.MaxDepth},
		{"forest_size", c.ForestSize},
		{"rating_scale", c.RatingScale},
		{"beam_size", c.BeamSize},
		{"nsim", c.NSim},
	}
	for _, f := range ints {
		if f.value < 1 {
			return &ValidationError{Field: f.name, Value: f.value, Allowed: "a positive integer"}
		}
	}
	if !(c.ExplorationConstant > 0) || math.IsInf(c.ExplorationConstant, 1) {
		return &ValidationError{Field: "exploration_constant", Value: c.ExplorationConstant, Allowed: "a positive real"}
	}
	return nil
}

// stringValue coerces a raw value to a string.
func stringValue(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &ValidationError{Field: field, Value: v, Allowed: "a string"}
	}
	return s, nil
}

// positiveInt coerces a raw value to a positive integer. YAML decoders
// produce int or int64; JSON decoding into map[string]any produces
// float64, which is accepted when it carries an integral value.
func positiveInt(field string, v any) (int, error) {
	var n int
	switch x := v.(type) {
	case int:
		n = x
	case int64:
		n = int(x)
	case uint64:
		n = int(x)
	case float64:
		if x != math.Trunc(x) {
			return 0, &ValidationError{Field: field, Value: v, Allowed: "a positive integer"}
		}
		n = int(x)
	default:
		return 0, &ValidationError{Field: field, Value: v, Allowed: "a positive integer"}
	}
	if n < 1 {
		return 0, &ValidationError{Field: field, Value: v, Allowed: "a positive integer"}
	}
	return n, nil
}

// positiveReal coerces a raw value to a positive float64.
func positiveReal(field string, v any) (float64, error) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	default:
		return 0, &ValidationError{Field: field, Value: v, Allowed: "a positive real"}
	}
	if !(f > 0) || math.IsInf(f, 1) || math.IsNaN(f) {
		return 0, &ValidationError{Field: field, Value: v, Allowed: "a positive real"}
	}
	return f, nil
}

func joinMethods() string {
	parts := make([]string, 0, len(Methods()))
	for _, m := range Methods() {
		parts = append(parts, string(m))
	}
	return strings.Join(parts, ", ")
}

func joinApproaches() string {
	parts := make([]string, 0, len(AnswerApproaches()))
	for _, a := range AnswerApproaches() {
		parts = append(parts, string(a))
	}
	return strings.Join(parts, ", ")
}
