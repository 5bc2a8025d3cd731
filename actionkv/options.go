package actionkv

import "github.com/actionlog/go-actionkv/internal"

type Option func(*internal.Config)

func WithHost(host string) Option {
	return func(c *internal.Config) {
		c.Host = host
	}
}

func WithPort(port int) Option {
	return func(c *internal.Config) {
		c.Port = port
	}
}
