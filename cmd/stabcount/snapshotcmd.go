package main

import (
	"context"
	"fmt"
	"io"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/forestrie/go-stabcount/snapshot"
	"github.com/forestrie/go-stabcount/stab"
	"github.com/spf13/cobra"
)

func (a *app) newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Build the tree index from the stdin rectangles and store it",
		Long: `Builds the persistent tree index from the rectangles read from stdin and
stores it under --name, by default the generated snapshot id. Any points
in the input are ignored. The stored name is written to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ReadCase(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return a.runSnapshot(cmd.Context(), c.Rectangles, cmd.OutOrStdout())
		},
	}
	cmd.Flags().String(flagName, "", "snapshot name, defaults to the snapshot id")
	addStoreFlags(cmd)
	return cmd
}

func (a *app) runSnapshot(ctx context.Context, rects []stab.Rectangle, out io.Writer) error {
	ix := stab.NewIndex(rects, stab.WithLogger(a.log))
	if err := ix.Build(); err != nil {
		return err
	}

	codec, err := snapshot.NewCodec()
	if err != nil {
		return err
	}
	header := snapshot.NewHeader()
	data, err := snapshot.Encode(codec, header, ix)
	if err != nil {
		return err
	}

	name := a.cfg.Name
	if name == "" {
		name = header.ID.String()
	}
	store, err := a.openStore()
	if err != nil {
		return err
	}
	if err = store.Put(ctx, name, data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, name)
	return err
}

func (a *app) loadSnapshot(ctx context.Context, name string) (*stab.Index, error) {
	store, err := a.openStore()
	if err != nil {
		return nil, err
	}
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	codec, err := snapshot.NewCodec()
	if err != nil {
		return nil, err
	}
	header, ix, err := snapshot.Decode(codec, data, stab.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	a.log.Debugf("snapshot loaded: name=%s, id=%s, rectangles=%d", name, header.ID, header.Rectangles)
	return ix, nil
}

func (a *app) openStore() (snapshot.Store, error) {
	opts := []snapshot.StoreOption{snapshot.WithLogger(a.log)}
	switch a.cfg.Store {
	case storeDir, "":
		return snapshot.NewDirStore(a.cfg.Dir, opts...), nil
	case storeBlob:
		storer, err := azblob.NewDev(azblob.NewDevConfigFromEnv(), a.cfg.Container)
		if err != nil {
			return nil, err
		}
		return snapshot.NewBlobStore(storer, opts...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStore, a.cfg.Store)
}
