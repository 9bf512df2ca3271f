package reason

// Derive returns the method-scoped parameter mapping passed to the search
// executor. The mapping always carries method, max_depth, forest_size and
// rating_scale; beam_search adds beam_size and answer_approach; mcts and
// lats add nsim and exploration_constant.
//
// dfs adds nothing: it is documented as beam search with an implicit beam
// width of 1, and the executor supplies that width itself. Injecting
// beam_size here would change the executor contract, so the omission is
// deliberate.
//
// Derive never fails for a Config that passed validation.
func (c Config) Derive() map[string]any {
	m := map[string]any{
		"method":       string(c.Method),
		"max_depth":    c.MaxDepth,
		"forest_size":  c.ForestSize,
		"rating_scale": c.RatingScale,
	}
	switch c.Method {
	case MethodBeamSearch:
		m["beam_size"] = c.BeamSize
		m["answer_approach"] = string(c.AnswerApproach)
	case MethodMCTS, MethodLATS:
		m["nsim"] = c.NSim
		m["exploration_constant"] = c.ExplorationConstant
	case MethodDFS:
		// Implicit beam width of 1; no extra keys.
	}
	return m
}
