package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/actionlog/go-actionkv/store"
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find <value>",
	Short: "Scan the log for the most recent record with a value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.Find([]byte(args[0]))
		if errors.Is(err, store.ErrValueNotFound) {
			fmt.Println("nil")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Println(string(rec.Key))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
