package server_test

import (
	"bytes"
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/actionlog/go-actionkv/actionkv"
	"github.com/actionlog/go-actionkv/internal/server"
	"github.com/actionlog/go-actionkv/store"
)

func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

func startServer(t *testing.T, port int) *store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "kv.akv")
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := s.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	handler := server.NewHandler(s)

	go func() {
		_ = server.Start(ctx, port, handler.HandleConn)
	}()

	// Give the TCP server a moment to bind
	time.Sleep(50 * time.Millisecond)

	t.Cleanup(func() {
		cancel()
		s.Close()
	})

	return s
}

func connectClient(t *testing.T, port int) *actionkv.Client {
	t.Helper()

	client, err := actionkv.Connect(
		actionkv.WithHost("127.0.0.1"),
		actionkv.WithPort(port),
	)
	if err != nil {
		t.Fatalf("failed to connect client: %v", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestServerPing(t *testing.T) {
	port := freePort(t)
	startServer(t, port)
	client := connectClient(t, port)

	if err := client.Ping(); err != nil {
		t.Fatal(err)
	}
}

func TestServerInsertGet(t *testing.T) {
	port := freePort(t)
	startServer(t, port)
	client := connectClient(t, port)

	if err := client.Insert([]byte("foo"), []byte("bar")); err != nil {
		t.Fatal(err)
	}

	value, err := client.Get([]byte("foo"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(value, []byte("bar")) {
		t.Fatalf("expected bar, got %q", value)
	}
}

func TestServerGetMissing(t *testing.T) {
	port := freePort(t)
	startServer(t, port)
	client := connectClient(t, port)

	if _, err := client.Get([]byte("missing")); err != actionkv.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServerDeleteReturnsEmptyValue(t *testing.T) {
	port := freePort(t)
	startServer(t, port)
	client := connectClient(t, port)

	if err := client.Insert([]byte("k"), []byte("v")); err != nil {
		t.Fatal(err)
	}
	if err := client.Delete([]byte("k")); err != nil {
		t.Fatal(err)
	}

	// a tombstone is an empty value, not an absent key
	value, err := client.Get([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	if len(value) != 0 {
		t.Fatalf("expected empty value after delete, got %q", value)
	}
}

func TestServerUpdateShadowsOldValue(t *testing.T) {
	port := freePort(t)
	startServer(t, port)
	client := connectClient(t, port)

	if err := client.Insert([]byte("k"), []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if err := client.Update([]byte("k"), []byte("v2")); err != nil {
		t.Fatal(err)
	}

	value, err := client.Get([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(value, []byte("v2")) {
		t.Fatalf("expected v2, got %q", value)
	}
}

func TestServerFind(t *testing.T) {
	port := freePort(t)
	startServer(t, port)
	client := connectClient(t, port)

	if err := client.Insert([]byte("a"), []byte("1")); err != nil {
		t.Fatal(err)
	}
	if err := client.Insert([]byte("b"), []byte("2")); err != nil {
		t.Fatal(err)
	}

	key, err := client.Find([]byte("2"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(key, []byte("b")) {
		t.Fatalf("expected key b, got %q", key)
	}

	if _, err := client.Find([]byte("9")); err != actionkv.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServerExistsCountKeys(t *testing.T) {
	port := freePort(t)
	startServer(t, port)
	client := connectClient(t, port)

	if err := client.Insert([]byte("a"), []byte("1")); err != nil {
		t.Fatal(err)
	}
	if err := client.Insert([]byte("b"), []byte("2")); err != nil {
		t.Fatal(err)
	}

	ok, err := client.Exists([]byte("a"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected key a to exist")
	}

	ok, err = client.Exists([]byte("z"))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected key z to not exist")
	}

	count, err := client.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("expected count 2, got %d", count)
	}

	keys, err := client.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
}

func TestServerRejectsEmptyKeyInsert(t *testing.T) {
	port := freePort(t)
	startServer(t, port)
	client := connectClient(t, port)

	if err := client.Insert(nil, []byte("v")); err == nil {
		t.Fatal("expected error for empty key, got nil")
	}
}

func TestServerWritesAreDurable(t *testing.T) {
	port := freePort(t)
	s := startServer(t, port)
	client := connectClient(t, port)

	if err := client.Insert([]byte("durable"), []byte("yes")); err != nil {
		t.Fatal(err)
	}

	// reopen the same log file with a fresh handle and replay it
	reopened, err := store.Open(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}

	value, err := reopened.Get([]byte("durable"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(value, []byte("yes")) {
		t.Fatalf("expected yes, got %q", value)
	}
}
