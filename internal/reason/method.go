// Package reason models the search-strategy configuration for reasoning
// agents. A Config describes one tree-search method and its parameters;
// Derive produces the method-scoped parameter set handed to the search
// executor.
package reason

// Method identifies a tree-search reasoning method.
type Method string

const (
	// MethodBeamSearch expands the best beam_size candidates per level.
	MethodBeamSearch Method = "beam_search"
	// MethodMCTS runs Monte Carlo Tree Search rollouts.
	MethodMCTS Method = "mcts"
	// MethodLATS runs Language-Agent Tree Search rollouts.
	MethodLATS Method = "lats"
	// MethodDFS is beam search with an implicit beam width of 1.
	MethodDFS Method = "dfs"
)

// Valid returns true if the method is a known value.
func (m Method) Valid() bool {
	switch m {
	case MethodBeamSearch, MethodMCTS, MethodLATS, MethodDFS:
		return true
	default:
		return false
	}
}

// Methods returns all known methods, in a stable order.
func Methods() []Method {
	return []Method{MethodBeamSearch, MethodMCTS, MethodLATS, MethodDFS}
}

// AnswerApproach selects how beam search picks the final answer.
type AnswerApproach string

const (
	// AnswerPool synthesizes the answer from the whole candidate pool.
	AnswerPool AnswerApproach = "pool"
	// AnswerBest takes the single highest-rated candidate.
	AnswerBest AnswerApproach = "best"
)

// Valid returns true if the approach is a known value.
func (a AnswerApproach) Valid() bool {
	switch a {
	case AnswerPool, AnswerBest:
		return true
	default:
		return false
	}
}

// AnswerApproaches returns all known approaches, in a stable order.
func AnswerApproaches() []AnswerApproach {
	return []AnswerApproach{AnswerPool, AnswerBest}
}
