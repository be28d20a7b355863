package rest

import (
	"bytes"
	"encoding/json"
	"strings"

	pkgerrors "github.com/fithouse/console/pkg/errors"
)

// Envelope is the {success, message, data} wrapper every backend response
// uses.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// HasData reports whether the envelope carries a non-null data payload.
func (e Envelope) HasData() bool {
	trimmed := bytes.TrimSpace(e.Data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// Decode enforces the strict envelope contract: success must be true and data
// non-null, otherwise an envelope error carrying the backend message (or the
// operation's fixed fallback) is returned. out may be nil to only check.
func (e Envelope) Decode(out any, fallback string) error {
	if !e.Success || !e.HasData() {
		return e.fail(fallback)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode envelope data")
	}
	return nil
}

// DecodeLoose requires success=true but tolerates an absent data payload,
// leaving out untouched in that case. A few endpoints respond this way on
// writes and filtered lists.
func (e Envelope) DecodeLoose(out any, fallback string) error {
	if !e.Success {
		return e.fail(fallback)
	}
	if out == nil || !e.HasData() {
		return nil
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode envelope data")
	}
	return nil
}

func (e Envelope) fail(fallback string) error {
	message := strings.TrimSpace(e.Message)
	if message == "" {
		message = fallback
	}
	return pkgerrors.New(pkgerrors.CodeEnvelope, message)
}
