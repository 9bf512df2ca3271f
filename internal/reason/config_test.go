package reason

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Method != MethodBeamSearch {
		t.Errorf("Method = %q, want %q", cfg.Method, MethodBeamSearch)
	}
	if cfg.MaxDepth != 3 {
		t.Errorf("MaxDepth = %d, want 3", cfg.MaxDepth)
	}
	if cfg.ForestSize != 1 {
		t.Errorf("ForestSize = %d, want 1", cfg.ForestSize)
	}
	if cfg.RatingScale != 10 {
		t.Errorf("RatingScale = %d, want 10", cfg.RatingScale)
	}
	if cfg.BeamSize != 3 {
		t.Errorf("BeamSize = %d, want 3", cfg.BeamSize)
	}
	if cfg.AnswerApproach != AnswerPool {
		t.Errorf("AnswerApproach = %q, want %q", cfg.AnswerApproach, AnswerPool)
	}
	if cfg.NSim != 3 {
		t.Errorf("NSim = %d, want 3", cfg.NSim)
	}
	if cfg.ExplorationConstant != 1.41 {
		t.Errorf("ExplorationConstant = %v, want 1.41", cfg.ExplorationConstant)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestParse_AllMethodsWithDefaults(t *testing.T) {
	for _, m := range Methods() {
		cfg, err := Parse(map[string]any{"method": string(m)})
		if err != nil {
			t.Fatalf("Parse(method=%s) failed: %v", m, err)
		}
		if cfg.Method != m {
			t.Errorf("Method = %q, want %q", cfg.Method, m)
		}
		// Inert fields stay populated with defaults regardless of method.
		if cfg.BeamSize != 3 || cfg.NSim != 3 {
			t.Errorf("method %s: inert fields not populated: beam_size=%d nsim=%d", m, cfg.BeamSize, cfg.NSim)
		}
	}
}

func TestParse_UnknownMethod(t *testing.T) {
	_, err := Parse(map[string]any{"method": "a_star"})
	if err == nil {
		t.Fatal("expected error for unknown method")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Field != "method" {
		t.Errorf("Field = %q, want %q", verr.Field, "method")
	}
}

func TestParse_UnknownAnswerApproach(t *testing.T) {
	_, err := Parse(map[string]any{"answer_approach": "median"})
	if err == nil {
		t.Fatal("expected error for unknown answer_approach")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Field != "answer_approach" {
		t.Errorf("Field = %q, want %q", verr.Field, "answer_approach")
	}
}

func TestParse_InvalidNumericFields(t *testing.T) {
	cases := []struct {
		name  string
		raw   map[string]any
		field string
	}{
		{"zero max_depth", map[string]any{"max_depth": 0}, "max_depth"},
		{"negative forest_size", map[string]any{"forest_size": -1}, "forest_size"},
		{"zero rating_scale", map[string]any{"rating_scale": 0}, "rating_scale"},
		{"fractional beam_size", map[string]any{"beam_size": 2.5}, "beam_size"},
		{"string nsim", map[string]any{"nsim": "three"}, "nsim"},
		{"zero exploration_constant", map[string]any{"exploration_constant": 0.0}, "exploration_constant"},
		{"negative exploration_constant", map[string]any{"exploration_constant": -1.41}, "exploration_constant"},
		{"non-numeric exploration_constant", map[string]any{"exploration_constant": "high"}, "exploration_constant"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.raw)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Field = %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

func TestParse_NumericCoercion(t *testing.T) {
	// JSON decoding into map[string]any yields float64 for every number;
	// integral values must still be accepted for the integer fields.
	cfg, err := Parse(map[string]any{
		"max_depth":            float64(5),
		"nsim":                 int64(7),
		"exploration_constant": 2,
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.MaxDepth != 5 {
		t.Errorf("MaxDepth = %d, want 5", cfg.MaxDepth)
	}
	if cfg.NSim != 7 {
		t.Errorf("NSim = %d, want 7", cfg.NSim)
	}
	if cfg.ExplorationConstant != 2 {
		t.Errorf("ExplorationConstant = %v, want 2", cfg.ExplorationConstant)
	}
}

func TestParse_IgnoresUnknownKeys(t *testing.T) {
	cfg, err := Parse(map[string]any{
		"method":        "dfs",
		"temperature":   0.7,
		"system_prompt": "be brief",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Method != MethodDFS {
		t.Errorf("Method = %q, want %q", cfg.Method, MethodDFS)
	}
}

func TestValidate_StructLiteral(t *testing.T) {
	cfg := Default()
	cfg.Method = "simulated_annealing"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown method in struct literal")
	}

	cfg = Default()
	cfg.BeamSize = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero beam_size")
	}
}

func TestDerive_KeySets(t *testing.T) {
	cases := []struct {
		method Method
		keys   []string
	}{
		{MethodBeamSearch, []string{"method", "max_depth", "forest_size", "rating_scale", "beam_size", "answer_approach"}},
		{MethodMCTS, []string{"method", "max_depth", "forest_size", "rating_scale", "nsim", "exploration_constant"}},
		{MethodLATS, []string{"method", "max_depth", "forest_size", "rating_scale", "nsim", "exploration_constant"}},
		{MethodDFS, []string{"method", "max_depth", "forest_size", "rating_scale"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.method), func(t *testing.T) {
			cfg, err := Parse(map[string]any{"method": string(tc.method)})
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			derived := cfg.Derive()

			if len(derived) != len(tc.keys) {
				t.Errorf("derived has %d keys, want %d: %v", len(derived), len(tc.keys), derived)
			}
			for _, k := range tc.keys {
				if _, ok := derived[k]; !ok {
					t.Errorf("derived missing key %q", k)
				}
			}
		})
	}
}

func TestDerive_MCTSExample(t *testing.T) {
	cfg, err := Parse(map[string]any{
		"method":               "mcts",
		"max_depth":            3,
		"forest_size":          1,
		"rating_scale":         10,
		"nsim":                 3,
		"exploration_constant": 1.41,
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := map[string]any{
		"method":               "mcts",
		"max_depth":            3,
		"forest_size":          1,
		"rating_scale":         10,
		"nsim":                 3,
		"exploration_constant": 1.41,
	}
	got := cfg.Derive()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Derive() = %v, want %v", got, want)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	cfg, err := Parse(map[string]any{"method": "beam_search", "beam_size": 5})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	first := cfg.Derive()
	for i := 0; i < 10; i++ {
		if got := cfg.Derive(); !reflect.DeepEqual(got, first) {
			t.Fatalf("Derive() call %d = %v, want %v", i, got, first)
		}
	}
}

func TestValidationError_Message(t *testing.T) {
	_, err := Parse(map[string]any{"method": "bfs"})
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"method", "beam_search", "mcts", "lats", "dfs"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}
