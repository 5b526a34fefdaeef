package snapshot

import (
	"context"
	"fmt"
	"io"

	"github.com/datatrails/go-datatrails-common/azblob"
)

// BlobStorer is the subset of the azblob Storer used for snapshots.
type BlobStorer interface {
	Put(ctx context.Context, identity string, source io.ReadSeekCloser, opts ...azblob.Option) (*azblob.WriteResponse, error)
	Reader(ctx context.Context, identity string, opts ...azblob.Option) (*azblob.ReaderResponse, error)
}

// BlobStore keeps snapshots in a blob container.
type BlobStore struct {
	opts  StoreOptions
	store BlobStorer
}

var _ Store = (*BlobStore)(nil)

func NewBlobStore(store BlobStorer, opts ...StoreOption) *BlobStore {
	return &BlobStore{opts: newStoreOptions(opts), store: store}
}

// Put creates the blob, failing if a snapshot of the same name exists.
// Snapshots are immutable once written.
func (b *BlobStore) Put(ctx context.Context, name string, data []byte) error {
	path, err := SnapshotPath(b.opts.prefix, name)
	if err != nil {
		return err
	}
	_, err = b.store.Put(ctx, path, azblob.NewBytesReaderCloser(data),
		azblob.WithEtagNoneMatch("*"),
	)
	if err != nil {
		return err
	}
	if b.opts.log != nil {
		b.opts.log.Infof("snapshot stored: %s (%d bytes)", path, len(data))
	}
	return nil
}

func (b *BlobStore) Get(ctx context.Context, name string) ([]byte, error) {
	path, err := SnapshotPath(b.opts.prefix, name)
	if err != nil {
		return nil, err
	}
	rr, err := b.store.Reader(ctx, path)
	if err != nil {
		if IsBlobNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, path)
		}
		return nil, err
	}
	defer rr.Reader.Close()
	return io.ReadAll(rr.Reader)
}
