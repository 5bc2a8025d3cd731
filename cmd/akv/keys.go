package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// keysCmd represents the keys command
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every indexed key",
	Long: `List every indexed key, one per line. With --index btree the keys
are printed in ascending order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		for _, key := range s.Keys() {
			fmt.Println(string(key))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
