package snapshot

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/forestrie/go-stabcount/stab"
	"github.com/google/uuid"
)

const (
	FormatVersion = 1

	// RecordBytes is the fixed width of a packed tree record: left and right
	// refs followed by the sum, each a big endian 32 bit word.
	RecordBytes = 12
)

// Header identifies a snapshot.
type Header struct {
	ID         uuid.UUID
	CreatedMS  int64
	Rectangles int
}

// NewHeader returns a header with a fresh random ID stamped with the current
// time. Rectangles is filled in by Encode.
func NewHeader() Header {
	return Header{
		ID:        uuid.New(),
		CreatedMS: time.Now().UnixMilli(),
	}
}

// wireSnapshot is the CBOR layout. Keys are fixed integers; never reuse one.
type wireSnapshot struct {
	Version    uint32   `cbor:"1,keyasint"`
	ID         string   `cbor:"2,keyasint"`
	CreatedMS  int64    `cbor:"3,keyasint"`
	Rectangles uint64   `cbor:"4,keyasint"`
	Xs         []int64  `cbor:"5,keyasint"`
	Ys         []int64  `cbor:"6,keyasint"`
	Records    []byte   `cbor:"7,keyasint"`
	Roots      []uint32 `cbor:"8,keyasint"`
	RootXIdxs  []uint64 `cbor:"9,keyasint"`
}

// Encode serializes a built index. The header Rectangles field is taken from
// the index.
func Encode(codec dtcbor.CBORCodec, header Header, ix *stab.Index) ([]byte, error) {
	st, err := ix.State()
	if err != nil {
		return nil, err
	}

	w := wireSnapshot{
		Version:    FormatVersion,
		ID:         header.ID.String(),
		CreatedMS:  header.CreatedMS,
		Rectangles: uint64(st.Rectangles),
		Xs:         st.Xs,
		Ys:         st.Ys,
		Records:    PackRecords(st.Records),
		Roots:      make([]uint32, len(st.Roots)),
		RootXIdxs:  make([]uint64, len(st.RootXIdxs)),
	}
	for i, r := range st.Roots {
		w.Roots[i] = uint32(r)
	}
	for i, x := range st.RootXIdxs {
		w.RootXIdxs[i] = uint64(x)
	}
	return codec.MarshalCBOR(w)
}

// Decode parses a snapshot and reconstructs a built index. The index state is
// fully validated before it is returned.
func Decode(codec dtcbor.CBORCodec, data []byte, opts ...stab.Option) (Header, *stab.Index, error) {
	var w wireSnapshot
	if err := codec.UnmarshalInto(data, &w); err != nil {
		return Header{}, nil, fmt.Errorf("%w: %w", ErrBadFormat, err)
	}
	if w.Version != FormatVersion {
		return Header{}, nil, fmt.Errorf("%w: version %d", ErrBadFormat, w.Version)
	}
	id, err := uuid.Parse(w.ID)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: id: %w", ErrBadFormat, err)
	}
	if w.Rectangles > math.MaxInt32 {
		return Header{}, nil, fmt.Errorf("%w: rectangle count %d", ErrBadFormat, w.Rectangles)
	}
	records, err := UnpackRecords(w.Records)
	if err != nil {
		return Header{}, nil, err
	}

	st := stab.State{
		Rectangles: int(w.Rectangles),
		Xs:         w.Xs,
		Ys:         w.Ys,
		Records:    records,
	}
	if len(w.Roots) > 0 {
		st.Roots = make([]stab.Ref, len(w.Roots))
		for i, r := range w.Roots {
			st.Roots[i] = stab.Ref(r)
		}
	}
	if len(w.RootXIdxs) > 0 {
		st.RootXIdxs = make([]int, len(w.RootXIdxs))
		for i, x := range w.RootXIdxs {
			if x > math.MaxInt32 {
				return Header{}, nil, fmt.Errorf("%w: version anchor %d", ErrBadFormat, x)
			}
			st.RootXIdxs[i] = int(x)
		}
	}

	ix, err := stab.NewIndexFromState(st, opts...)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: %w", ErrBadFormat, err)
	}
	header := Header{
		ID:         id,
		CreatedMS:  w.CreatedMS,
		Rectangles: st.Rectangles,
	}
	return header, ix, nil
}

// PackRecords lays records out as consecutive RecordBytes wide entries.
func PackRecords(records []stab.NodeRecord) []byte {
	if len(records) == 0 {
		return nil
	}
	data := make([]byte, len(records)*RecordBytes)
	for i, rec := range records {
		b := data[i*RecordBytes:]
		binary.BigEndian.PutUint32(b[0:4], uint32(rec.Left))
		binary.BigEndian.PutUint32(b[4:8], uint32(rec.Right))
		binary.BigEndian.PutUint32(b[8:12], uint32(rec.Sum))
	}
	return data
}

func UnpackRecords(data []byte) ([]stab.NodeRecord, error) {
	if len(data)%RecordBytes != 0 {
		return nil, fmt.Errorf("%w: %d record bytes is not a multiple of %d", ErrBadFormat, len(data), RecordBytes)
	}
	if len(data) == 0 {
		return nil, nil
	}
	records := make([]stab.NodeRecord, len(data)/RecordBytes)
	for i := range records {
		b := data[i*RecordBytes:]
		records[i] = stab.NodeRecord{
			Left:  stab.Ref(binary.BigEndian.Uint32(b[0:4])),
			Right: stab.Ref(binary.BigEndian.Uint32(b[4:8])),
			Sum:   int32(binary.BigEndian.Uint32(b[8:12])),
		}
	}
	return records, nil
}
