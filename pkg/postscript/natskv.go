package postscript

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
)

// NATSStoreConfig configures the NATS JetStream KV static-data backend.
type NATSStoreConfig struct {
	// URL is the NATS server URL, ignored when Conn is supplied.
	URL string

	// Bucket is the KV bucket name, created when it does not exist.
	Bucket string

	// Conn reuses an established connection instead of dialing URL. The
	// store does not close a supplied connection.
	Conn *nats.Conn
}

// NATSStaticData is a StaticDataStore backed by a NATS JetStream KV bucket,
// for hosts that need webhook ids to survive process restarts.
type NATSStaticData struct {
	kv       nats.KeyValue
	conn     *nats.Conn
	ownsConn bool
}

// NewNATSStaticData connects to NATS and binds the configured KV bucket.
func NewNATSStaticData(config *NATSStoreConfig) (*NATSStaticData, error) {
	if config == nil {
		return nil, ErrNATSConfigRequired
	}

	conn := config.Conn
	ownsConn := false

	if conn == nil {
		var err error

		conn, err = nats.Connect(config.URL)
		if err != nil {
			return nil, fmt.Errorf("connecting to NATS: %w", err)
		}

		ownsConn = true
	}

	js, err := conn.JetStream()
	if err != nil {
		if ownsConn {
			conn.Close()
		}

		return nil, fmt.Errorf("getting JetStream context: %w", err)
	}

	bucket := config.Bucket
	if bucket == "" {
		bucket = "postscript_static_data"
	}

	kv, err := js.KeyValue(bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{Bucket: bucket})
	}

	if err != nil {
		if ownsConn {
			conn.Close()
		}

		return nil, fmt.Errorf("binding KV bucket %s: %w", bucket, err)
	}

	return &NATSStaticData{kv: kv, conn: conn, ownsConn: ownsConn}, nil
}

// Get implements StaticDataStore.
func (s *NATSStaticData) Get(_ context.Context, key string) (string, error) {
	entry, err := s.kv.Get(key)
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
		}

		return "", fmt.Errorf("getting key %s: %w", key, err)
	}

	return string(entry.Value()), nil
}

// Set implements StaticDataStore.
func (s *NATSStaticData) Set(_ context.Context, key, value string) error {
	if _, err := s.kv.Put(key, []byte(value)); err != nil {
		return fmt.Errorf("putting key %s: %w", key, err)
	}

	return nil
}

// Delete implements StaticDataStore.
func (s *NATSStaticData) Delete(_ context.Context, key string) error {
	err := s.kv.Delete(key)
	if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
		return fmt.Errorf("deleting key %s: %w", key, err)
	}

	return nil
}

// Close releases the NATS connection when the store owns it.
func (s *NATSStaticData) Close() {
	if s.ownsConn && s.conn != nil {
		s.conn.Close()
	}
}
