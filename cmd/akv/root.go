package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/actionlog/go-actionkv/index"
	"github.com/actionlog/go-actionkv/store"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "akv",
	Short: "Operate directly on an ActionKV log file",
	Long: `akv opens an append-only ActionKV log file, rebuilds the in-memory
index by replaying it, and runs a single operation against it.

The file is created on first use. Deleted keys keep a tombstone record,
so 'get' on a deleted key prints an empty value rather than nil.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("file", "f", "", "Path of the log file")
	rootCmd.PersistentFlags().String("index", "map", "Index implementation: map or btree")
	rootCmd.MarkPersistentFlagRequired("file")
}

// openStore opens and loads the store named by the persistent flags.
// The caller owns the returned handle and must close it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}
	indexName, err := cmd.Flags().GetString("index")
	if err != nil {
		return nil, err
	}

	var opts []store.Option
	switch indexName {
	case "map":
		opts = append(opts, store.WithIndex(index.Map))
	case "btree":
		opts = append(opts, store.WithIndex(index.BTree))
	default:
		return nil, fmt.Errorf("unknown index %q, expected map or btree", indexName)
	}

	s, err := store.Open(path, opts...)
	if err != nil {
		return nil, err
	}

	if err := s.Load(); err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}
