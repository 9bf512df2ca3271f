package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/agentdef"
)

var validateWatch bool

var validateCmd = &cobra.Command{
	Use:   "validate <agent.yaml>",
	Short: "Validate an agent definition and print its derived strategy config",
	Long: `Validate loads an agent definition, checks its reason block against
the four known search methods, and prints the derived method-scoped
parameter set as JSON.

With --watch, the file is revalidated every time it changes until
interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if !validateWatch {
			return validateOnce(path)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Report the initial state before waiting for changes.
		def, err := agentdef.Load(path)
		reportValidation(def, err)
		return agentdef.Watch(ctx, path, reportValidation)
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateWatch, "watch", false, "Revalidate whenever the file changes")
}

// validateOnce validates a single definition and prints the derived
// config, failing the command on invalid input.
func validateOnce(path string) error {
	def, err := agentdef.Load(path)
	if err != nil {
		return err
	}

	printStatus("✓", fmt.Sprintf("%s: valid (%s)", def.Name, def.Reason.Method), color.FgGreen)
	return printDerived(def)
}

// reportValidation prints a status line per watch event, never failing.
func reportValidation(def *agentdef.Definition, err error) {
	if err != nil {
		printStatus("✗", err.Error(), color.FgRed)
		return
	}
	printStatus("✓", fmt.Sprintf("%s: valid (%s)", def.Name, def.Reason.Method), color.FgGreen)
	if err := printDerived(def); err != nil {
		printStatus("✗", err.Error(), color.FgRed)
	}
}

// printDerived renders the derived mapping as indented JSON.
func printDerived(def *agentdef.Definition) error {
	out, err := json.MarshalIndent(def.Reason.Derive(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode derived config: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printStatus prints a colored status line.
func printStatus(symbol, message string, attr color.Attribute) {
	c := color.New(attr)
	c.Printf("%s ", symbol)
	fmt.Println(message)
}
