package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ki-krpto/New-Aeries-Calculator/internal/gradebook"
)

var (
	newClass   string
	newTeacher string
	newForce   bool
)

var newCmd = &cobra.Command{
	Use:   "new FILE",
	Short: "Create a record for entering assignments by hand",
	Long: `Write an empty record with a single "Assignments" category weighted 100%.

Edit the file to add assignments and categories, then run "aeries calc FILE".
The file is JSON when FILE ends in .json and YAML otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newClass, "class", "", "class name")
	newCmd.Flags().StringVar(&newTeacher, "teacher", "", "teacher name")
	newCmd.Flags().BoolVar(&newForce, "force", false, "overwrite an existing file")

	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil && !newForce {
		return NewExitError(ExitFailure, fmt.Sprintf("%s already exists (use --force to overwrite)", path))
	}

	rec := gradebook.ManualRecord(newClass, newTeacher)
	if err := rec.Save(path); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
