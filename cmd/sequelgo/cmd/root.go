package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	dialectName string
	dsn         string
	verbose     bool
)

// rootCmd is the root command of the sequelgo CLI.
var rootCmd = &cobra.Command{
	Use:   "sequelgo",
	Short: "sequelgo - dialect-aware SQL statement generation",
	Long: `sequelgo renders dialect-correct SQL statements from abstract
table definitions.

Examples:

  # Print the CREATE TABLE statements for a schema file
  sequelgo ddl --dialect sqlite schema.yaml

  # Apply them to a database
  sequelgo ddl --dialect sqlite --dsn "file:app.db" schema.yaml`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dialectName, "dialect", "d", "sqlite", "target dialect (sqlite, postgres)")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "execute statements against this data source instead of printing them")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log executed statements")

	rootCmd.AddCommand(ddlCmd)
	rootCmd.AddCommand(versionCmd)
}
