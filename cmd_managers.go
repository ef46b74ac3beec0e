package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var managersCmd = &cobra.Command{
	Use:   "managers",
	Short: "Print the manager to district table",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, m := range a.directory.Managers() {
			fmt.Fprintf(out, "%s: %s\n", m, strings.Join(a.directory.Resolve(m), ", "))
		}
		return nil
	},
}
