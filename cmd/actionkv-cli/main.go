package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/actionlog/go-actionkv/actionkv"
	"github.com/actionlog/go-actionkv/internal"
	"github.com/actionlog/go-actionkv/internal/utils"
)

func main() {
	host := flag.String("host", internal.DEFAULT_HOST, "ActionKV server host")
	port := flag.Int("port", internal.DEFAULT_PORT, "ActionKV server port")
	flag.Parse()

	client, err := actionkv.Connect(actionkv.WithHost(*host), actionkv.WithPort(*port))
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	fmt.Printf("Connected to %v:%d\n", *host, *port)
	fmt.Println("Type commands. 'help' for information or 'exit' to quit.")

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("input error:", err)
			return
		}

		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		if line == "exit" {
			return
		}

		cmd, key, value, err := utils.SplitStringIntoCommandAndArguments(line)
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}

		resp, err := client.Execute(cmd, []byte(key), []byte(value))
		if errors.Is(err, actionkv.ErrNotFound) {
			fmt.Println("nil")
			continue
		}
		if err != nil {
			fmt.Println("error:", err)
			continue
		}

		fmt.Println(string(resp))
	}
}
