package main

import (
	"context"
	"fmt"
	"os"

	"github.com/actionlog/go-actionkv/index"
	"github.com/actionlog/go-actionkv/internal/server"
	"github.com/actionlog/go-actionkv/internal/utils"
	"github.com/actionlog/go-actionkv/store"
)

func main() {
	path, port, indexName, syncOnWrite := utils.HandleCLIInputs()

	var opts []store.Option
	switch *indexName {
	case "map":
		opts = append(opts, store.WithIndex(index.Map))
	case "btree":
		opts = append(opts, store.WithIndex(index.BTree))
	default:
		fmt.Printf("Unknown index %q, expected map or btree\n", *indexName)
		os.Exit(1)
	}
	if *syncOnWrite {
		opts = append(opts, store.WithSyncOnWrite())
	}

	if !utils.PathExists(*path) {
		fmt.Println("Log file does not exist! Creating one...")
	}

	s, err := store.Open(*path, opts...)
	if err != nil {
		fmt.Println("Error while opening store:", err)
		os.Exit(1)
	}
	defer s.Close()

	if err := s.Load(); err != nil {
		fmt.Println("Error while rebuilding index:", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d keys from %s\n", s.Len(), s.Path())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := server.NewHandler(s)
	go func() {
		if err := server.Start(ctx, *port, handler.HandleConn); err != nil {
			fmt.Println("Server stopped abruptly:", err)
			os.Exit(1)
		}
	}()

	fmt.Println("ActionKV started succesfully...")
	fmt.Printf("Server listening on http://localhost:%d...\n", *port)

	utils.ListenForProcessInterruptOrKill()
}
