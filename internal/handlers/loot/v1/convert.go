package v1

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// decodeRequest copies a struct request into a typed request through JSON
func decodeRequest(in *structpb.Struct, out any) error {
	if in == nil {
		return nil
	}
	data, err := in.MarshalJSON()
	if err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	return nil
}

// encodeResponse renders a typed response as a struct
func encodeResponse(in any) (*structpb.Struct, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	out := &structpb.Struct{}
	if err := out.UnmarshalJSON(data); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}
