package actionkv

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/actionlog/go-actionkv/internal"
	"github.com/actionlog/go-actionkv/internal/protocol"
)

// ErrNotFound is returned when the server has no record matching the
// requested key or value.
var ErrNotFound = errors.New("actionkv: not found")

type Client struct {
	conn net.Conn
}

func Connect(opts ...Option) (*Client, error) {
	cfg := internal.DefaultConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{conn: conn}, nil
}

// Ping checks that the server is alive.
func (c *Client) Ping() error {
	_, err := c.sendCommand("ping", nil, nil)
	return err
}

// Get returns the value of the most recent record for key. A deleted
// key yields an empty value, not ErrNotFound; only a key the server
// has never indexed yields ErrNotFound.
func (c *Client) Get(key []byte) ([]byte, error) {
	return c.sendCommand("get", key, nil)
}

// Insert stores a value for the given key.
func (c *Client) Insert(key, value []byte) error {
	_, err := c.sendCommand("insert", key, value)
	return err
}

// Update is Insert under another name; the server treats them alike.
func (c *Client) Update(key, value []byte) error {
	_, err := c.sendCommand("update", key, value)
	return err
}

// Delete removes the key by appending a tombstone on the server.
func (c *Client) Delete(key []byte) error {
	_, err := c.sendCommand("delete", key, nil)
	return err
}

// Find returns the key of the most recent record whose value equals
// value, or ErrNotFound if no record matches.
func (c *Client) Find(value []byte) ([]byte, error) {
	return c.sendCommand("find", nil, value)
}

// Exists reports whether the key is currently indexed on the server.
func (c *Client) Exists(key []byte) (bool, error) {
	res, err := c.sendCommand("exists", key, nil)
	if err != nil {
		return false, err
	}

	return string(res) == "true", nil
}

// Count returns the number of keys indexed on the server.
func (c *Client) Count() (int, error) {
	res, err := c.sendCommand("count", nil, nil)
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(string(res))
}

// Keys returns every key indexed on the server.
func (c *Client) Keys() ([][]byte, error) {
	res, err := c.sendCommand("keys", nil, nil)
	if err != nil {
		return nil, err
	}

	return protocol.DecodeKeyList(res)
}

// Execute sends an arbitrary command; useful for interactive clients.
func (c *Client) Execute(cmd string, key, value []byte) ([]byte, error) {
	return c.sendCommand(cmd, key, value)
}

func (c *Client) Close() {
	err := c.conn.Close()
	if err != nil {
		fmt.Println(err.Error())
	}
}

func (c *Client) sendCommand(cmd string, key, value []byte) ([]byte, error) {
	payload, err := protocol.EncodeCommand(cmd, key, value)
	if err != nil {
		return nil, err
	}

	_, err = c.conn.Write(payload)
	if err != nil {
		return nil, err
	}

	status, response, err := protocol.DecodeResponse(c.conn)
	if err != nil {
		return nil, err
	}

	switch status {
	case protocol.StatusOK:
		return response, nil
	case protocol.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("actionkv: server error: %s", response)
	}
}
