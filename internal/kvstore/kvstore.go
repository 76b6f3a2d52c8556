// Package kvstore provides the local durable key-value store backing all
// persisted storefront records. Each record is an opaque JSON blob owned by
// its store; corrupt or missing blobs are the caller's problem to default.
package kvstore

// Store reads and writes whole records by key. Get reports false when the
// key has never been written.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Close() error
}
