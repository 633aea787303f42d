// Package localstore contains the concrete implementation of the
// persistence layer over a durable local key-value store. The store is a
// gocloud.dev blob bucket: a directory on disk in production, an
// in-memory bucket in tests. Three logical keys exist — the catalog, the
// order history and the theme preference — each written whole on every
// mutation (last write wins, single-process model).
package localstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"orderpad/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const (
	catalogKey = "catalog.json"
	historyKey = "history.json"
	themeKey   = "theme"
)

// Store wraps a blob bucket with JSON document access.
type Store struct {
	bucket *blob.Bucket
}

// Params holds dependencies for the store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the file-backed store at the configured path, creating the
// directory when missing, and closes the bucket on shutdown.
func New(params Params) (*Store, error) {
	path := params.Config.Storage.Path
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, errors.Wrap(err, "create storage directory")
	}

	bucket, err := fileblob.OpenBucket(path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open storage bucket")
	}

	params.Logger.Info("Local store opened", slog.String("path", path))

	store := &Store{bucket: bucket}
	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(store.Close())
		},
	})

	return store, nil
}

// NewMem returns a store backed by an in-memory bucket.
func NewMem() *Store {
	return &Store{bucket: memblob.OpenBucket(nil)}
}

// Close releases the underlying bucket.
func (s *Store) Close() error {
	return errors.Wrap(s.bucket.Close(), "close storage bucket")
}

// readJSON unmarshals the value at key into out. It reports false with a
// nil error when the key is absent; absence reads as empty.
func (s *Store) readJSON(ctx context.Context, key string, out any) (bool, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return false, nil
		}

		return false, errors.Wrapf(err, "read %s", key)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, errors.Wrapf(err, "decode %s", key)
	}

	return true, nil
}

// writeJSON marshals v and overwrites the value at key.
func (s *Store) writeJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	if err := s.bucket.WriteAll(ctx, key, data, nil); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	return nil
}

// readString returns the raw value at key, reporting false when absent.
func (s *Store) readString(ctx context.Context, key string) (string, bool, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", false, nil
		}

		return "", false, errors.Wrapf(err, "read %s", key)
	}

	return string(data), true, nil
}

// writeString overwrites the raw value at key.
func (s *Store) writeString(ctx context.Context, key, value string) error {
	return errors.Wrapf(s.bucket.WriteAll(ctx, key, []byte(value), nil), "write %s", key)
}
