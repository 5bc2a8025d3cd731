package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/actionlog/go-actionkv/internal/protocol"
	"github.com/actionlog/go-actionkv/store"
)

// Handler serves the wire protocol against a single store handle. The
// store serializes its own operations, so one handler may be shared by
// any number of connections.
type Handler struct {
	store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// HandleConn decodes commands off the connection until the client
// disconnects, dispatching each one against the store.
func (h *Handler) HandleConn(conn net.Conn) {
	defer conn.Close()

	for {
		command, err := protocol.DecodeCommand(conn)
		if err != nil {
			return // client disconnected
		}

		h.handleCommand(command, conn)
	}
}

func (h *Handler) handleCommand(command *protocol.Command, conn net.Conn) {
	switch strings.ToLower(command.Cmd) {
	case "ping":
		h.reply(conn, protocol.StatusOK, []byte("PONG!"))
	case "get":
		h.handleGet(conn, command.Key)
	case "insert", "update":
		h.handleInsert(conn, command.Key, command.Val)
	case "delete":
		h.handleDelete(conn, command.Key)
	case "find":
		h.handleFind(conn, command.Val)
	case "exists":
		h.handleExists(conn, command.Key)
	case "count":
		h.reply(conn, protocol.StatusOK, []byte(strconv.Itoa(h.store.Len())))
	case "keys":
		h.handleKeys(conn)
	case "help":
		h.reply(conn, protocol.StatusOK, []byte(strings.TrimSpace(helpText)))
	default:
		h.reply(conn, protocol.StatusErr, []byte("invalid command"))
	}
}

func (h *Handler) handleGet(conn net.Conn, key []byte) {
	value, err := h.store.Get(key)
	if errors.Is(err, store.ErrKeyNotFound) {
		h.reply(conn, protocol.StatusNotFound, nil)
		return
	}
	if err != nil {
		// corruption and I/O failures travel to the client as
		// errors, never as empty or stale data
		h.reply(conn, protocol.StatusErr, []byte(err.Error()))
		return
	}

	h.reply(conn, protocol.StatusOK, value)
}

func (h *Handler) handleInsert(conn net.Conn, key, value []byte) {
	if err := h.store.Insert(key, value); err != nil {
		h.reply(conn, protocol.StatusErr, []byte(err.Error()))
		return
	}

	h.reply(conn, protocol.StatusOK, []byte("ok"))
}

func (h *Handler) handleDelete(conn net.Conn, key []byte) {
	if err := h.store.Delete(key); err != nil {
		h.reply(conn, protocol.StatusErr, []byte(err.Error()))
		return
	}

	h.reply(conn, protocol.StatusOK, []byte("ok"))
}

func (h *Handler) handleFind(conn net.Conn, value []byte) {
	rec, err := h.store.Find(value)
	if errors.Is(err, store.ErrValueNotFound) {
		h.reply(conn, protocol.StatusNotFound, nil)
		return
	}
	if err != nil {
		h.reply(conn, protocol.StatusErr, []byte(err.Error()))
		return
	}

	// the value is already known to the caller; reply with the key
	h.reply(conn, protocol.StatusOK, rec.Key)
}

func (h *Handler) handleExists(conn net.Conn, key []byte) {
	if _, ok := h.store.Offset(key); ok {
		h.reply(conn, protocol.StatusOK, []byte("true"))
		return
	}

	h.reply(conn, protocol.StatusOK, []byte("false"))
}

func (h *Handler) handleKeys(conn net.Conn) {
	payload, err := protocol.EncodeKeyList(h.store.Keys())
	if err != nil {
		h.reply(conn, protocol.StatusErr, []byte(err.Error()))
		return
	}

	h.reply(conn, protocol.StatusOK, payload)
}

func (h *Handler) reply(conn net.Conn, status protocol.Status, payload []byte) {
	encoded, err := protocol.EncodeResponse(status, payload)
	if err != nil {
		fmt.Println("Error encoding response:", err)
		return
	}

	if _, err := conn.Write(encoded); err != nil {
		fmt.Println("client disconnected")
	}
}

const helpText = `
Available Commands:

PING
  Check if the server is alive.
  Response: PONG!

GET <key>
  Retrieve the value associated with the key.
  A deleted key returns an empty value, not "not found".

INSERT <key> <value>
UPDATE <key> <value>
  Append a record for the key. Both are the same operation.

DELETE <key>
  Append a tombstone for the key.

FIND <value>
  Scan the log for the most recent record with this value;
  returns its key.

EXISTS <key>
  Check if a key is indexed.

COUNT
  Return the total number of indexed keys.

KEYS
  List all indexed keys.

HELP (cli only)
  Show this help message.

EXIT (cli only)
  Close the client connection.
`
