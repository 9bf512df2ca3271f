package main

import (
	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/agentdef"
	"github.com/grovekit/grove/internal/reason"
)

var deriveFlags = struct {
	method              string
	maxDepth            int
	forestSize          int
	ratingScale         int
	beamSize            int
	answerApproach      string
	nsim                int
	explorationConstant float64
}{}

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive the method-scoped parameter set from flags",
	Long: `Derive builds a strategy config from flags and prints the parameter
mapping the search executor would receive. Useful for checking what a
given method actually consumes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := reason.Config{
			Method:              reason.Method(deriveFlags.method),
			MaxDepth:            deriveFlags.maxDepth,
			ForestSize:          deriveFlags.forestSize,
			RatingScale:         deriveFlags.ratingScale,
			BeamSize:            deriveFlags.beamSize,
			AnswerApproach:      reason.AnswerApproach(deriveFlags.answerApproach),
			NSim:                deriveFlags.nsim,
			ExplorationConstant: deriveFlags.explorationConstant,
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return printDerived(&agentdef.Definition{Name: "(flags)", Reason: cfg})
	},
}

func init() {
	d := reason.Default()
	deriveCmd.Flags().StringVar(&deriveFlags.method, "method", string(d.Method), "Search method (beam_search, mcts, lats, dfs)")
	deriveCmd.Flags().IntVar(&deriveFlags.maxDepth, "max-depth", d.MaxDepth, "Maximum tree depth")
	deriveCmd.Flags().IntVar(&deriveFlags.forestSize, "forest-size", d.ForestSize, "Number of independent trees")
	deriveCmd.Flags().IntVar(&deriveFlags.ratingScale, "rating-scale", d.RatingScale, "Upper bound of the node rating scale")
	deriveCmd.Flags().IntVar(&deriveFlags.beamSize, "beam-size", d.BeamSize, "Candidates kept per level (beam_search, dfs)")
	deriveCmd.Flags().StringVar(&deriveFlags.answerApproach, "answer-approach", string(d.AnswerApproach), "Final-answer policy (pool, best)")
	deriveCmd.Flags().IntVar(&deriveFlags.nsim, "nsim", d.NSim, "Simulations per expansion (mcts, lats)")
	deriveCmd.Flags().Float64Var(&deriveFlags.explorationConstant, "exploration-constant", d.ExplorationConstant, "UCT exploration constant (mcts, lats)")
}
