// Package actionkv provides a client for interacting with an ActionKV
// log-structured key-value store over TCP.
//
// Example:
//
//	client, err := actionkv.Connect()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	err = client.Insert([]byte("foo"), []byte("bar"))
//	val, err := client.Get([]byte("foo"))
package actionkv
