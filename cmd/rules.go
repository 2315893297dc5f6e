package cmd

import (
	"github.com/mj1618/a11ycheck/internal/output"
	"github.com/mj1618/a11ycheck/internal/rules"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the accessibility rules and presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(cmd, output.NewRulesResult(rules.Describe()))
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
