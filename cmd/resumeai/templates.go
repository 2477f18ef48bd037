package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resumeai/internal/resume"
	"resumeai/internal/store"
)

var templatesStateDir string

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available layout variants",
	RunE:  runTemplates,
}

func init() {
	templatesCmd.Flags().StringVar(&templatesStateDir, "state-dir", "", "Directory for persisted document state")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("state-dir") {
		cfg.StateDir = templatesStateDir
	}

	st := store.New(cfg.StateDir)
	st.Load()
	current := st.Template()

	for _, t := range resume.Templates() {
		marker := "  "
		if t == current {
			marker = "* "
		}
		fmt.Printf("%s%s\n", marker, t)
	}
	return nil
}
