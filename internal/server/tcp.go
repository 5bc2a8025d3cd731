package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// Start runs a TCP accept loop on the given port, invoking handler in
// a new goroutine for every accepted connection. If the port is taken
// it probes upward until a free one is found. Start blocks until ctx
// is cancelled.
func Start(ctx context.Context, port int, handler func(conn net.Conn)) error {
	var ln net.Listener
	var err error

	for {
		addr := fmt.Sprintf(":%d", port)
		ln, err = net.Listen("tcp", addr)
		if err != nil {
			if errors.Is(err, syscall.EADDRINUSE) {
				port++
				continue
			}
			return err
		}
		break
	}

	// When ctx is cancelled, close listener
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			// Closing the listener makes Accept return an error.
			// This is how we break out of the loop cleanly.
			select {
			case <-ctx.Done():
				return nil // graceful shutdown
			default:
				fmt.Println("Error accepting connection:", err)
				continue
			}
		}

		go handler(conn)
	}
}
