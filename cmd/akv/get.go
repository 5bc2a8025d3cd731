package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/actionlog/go-actionkv/store"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Retrieve the latest value for a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		value, err := s.Get([]byte(args[0]))
		if errors.Is(err, store.ErrKeyNotFound) {
			fmt.Println("nil")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Println(string(value))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
