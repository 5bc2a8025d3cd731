package main

import (
	"github.com/spf13/cobra"
)

// insertCmd represents the insert command; update is the same
// operation and only exists so scripts read naturally
var insertCmd = &cobra.Command{
	Use:   "insert <key> <value>",
	Short: "Append a record for a key-value pair",
	Args:  cobra.ExactArgs(2),
	RunE:  runInsert,
}

var updateCmd = &cobra.Command{
	Use:   "update <key> <value>",
	Short: "Append a new record for an existing key",
	Args:  cobra.ExactArgs(2),
	RunE:  runInsert,
}

func runInsert(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.Insert([]byte(args[0]), []byte(args[1]))
}

func init() {
	rootCmd.AddCommand(insertCmd)
	rootCmd.AddCommand(updateCmd)
}
