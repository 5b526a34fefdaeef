package snapshot

import (
	"math"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/fxamacker/cbor/v2"
)

// NewCodec returns the deterministic codec used for snapshots. Coordinate
// arrays grow with the rectangle count, so the decoder array limit is lifted
// to the largest size the library accepts.
func NewCodec() (dtcbor.CBORCodec, error) {
	codec, err := dtcbor.NewCBORCodec(dtcbor.NewDeterministicEncOpts(), decOptions())
	if err != nil {
		return dtcbor.CBORCodec{}, err
	}
	return codec, nil
}

func decOptions() cbor.DecOptions {
	opts := dtcbor.NewDeterministicDecOpts()
	opts.MaxArrayElements = math.MaxInt32
	return opts
}
