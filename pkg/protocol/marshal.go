package protocol

import (
	"encoding/json"

	"github.com/pkg/errors"
)

func UnmarshalSnapshot(payload []byte) (*GameSnapshot, error) {
	snapshot := GameSnapshot{}
	err := json.Unmarshal(payload, &snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal snapshot")
	}
	return &snapshot, nil
}
