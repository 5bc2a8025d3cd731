package utils

import (
	"flag"
)

const DefaultStorePath = "actionkv.akv"
const DefaultPort = 9999

// HandleCLIInputs parses the server daemon's flags: the log file path,
// the TCP port, the index implementation, and whether to fsync on
// every write.
func HandleCLIInputs() (path *string, port *int, indexName *string, syncOnWrite *bool) {
	path = flag.String("file", DefaultStorePath, "Path of the append-only log file")
	port = flag.Int("port", DefaultPort, "Port to use for the TCP Server")
	indexName = flag.String("index", "map", "Index implementation: map or btree")
	syncOnWrite = flag.Bool("sync", false, "fsync the log after every write")
	flag.Parse()

	return path, port, indexName, syncOnWrite
}
