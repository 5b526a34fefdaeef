package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store saves and loads encoded snapshots by name.
type Store interface {
	Put(ctx context.Context, name string, data []byte) error
	Get(ctx context.Context, name string) ([]byte, error)
}

// DirStore keeps snapshots as files below a local directory, using the same
// relative paths as the blob store.
type DirStore struct {
	opts StoreOptions
	root string
}

var _ Store = (*DirStore)(nil)

func NewDirStore(root string, opts ...StoreOption) *DirStore {
	return &DirStore{opts: newStoreOptions(opts), root: root}
}

func (d *DirStore) path(name string) (string, error) {
	rel, err := SnapshotPath(d.opts.prefix, name)
	if err != nil {
		return "", err
	}
	return filepath.Join(d.root, filepath.FromSlash(rel)), nil
}

// Put writes the snapshot through a temporary file so readers never observe a
// partial write.
func (d *DirStore) Put(_ context.Context, name string, data []byte) error {
	path, err := d.path(name)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if d.opts.log != nil {
		d.opts.log.Infof("snapshot stored: %s (%d bytes)", path, len(data))
	}
	return nil
}

func (d *DirStore) Get(_ context.Context, name string) ([]byte, error) {
	path, err := d.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
