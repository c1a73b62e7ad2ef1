package store

import (
	"bytes"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/ayoisaiah/tracker/internal/models"
)

var codec = sonic.ConfigStd

// EncodeFocuses serialises the focus list into the interchange payload.
func EncodeFocuses(focuses []*models.Focus) ([]byte, error) {
	out := make([]*models.Focus, len(focuses))

	for i, f := range focuses {
		if f.Times == nil {
			f = f.Clone()
		}

		out[i] = f
	}

	b, err := codec.Marshal(out)
	if err != nil {
		return nil, errEncodeFocuses.Wrap(err)
	}

	return b, nil
}

// DecodeFocuses parses an interchange payload. An empty payload yields an
// empty list. Records missing optional fields are filled with defaults.
func DecodeFocuses(b []byte) ([]*models.Focus, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return []*models.Focus{}, nil
	}

	var focuses []*models.Focus

	err := codec.Unmarshal(b, &focuses)
	if err != nil {
		return []*models.Focus{}, ErrCorruptPayload.Wrap(err)
	}

	out := make([]*models.Focus, 0, len(focuses))

	for _, f := range focuses {
		if f == nil {
			continue
		}

		if f.ID == "" {
			f.ID = uuid.NewString()
		}

		if f.Times == nil {
			f.Times = []models.TimeInterval{}
		}

		out = append(out, f)
	}

	return out, nil
}
