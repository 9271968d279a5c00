package event

import (
	"encoding/json"
	"strings"
	"time"

	pkgerrors "github.com/angelmondragon/licensing-relay/pkg/errors"
)

// Envelope is the as-received webhook body. The business payload arrives
// double-encoded: the outer document carries the event name and a string
// field holding a second JSON document.
type Envelope struct {
	Data EnvelopeData `json:"data" validate:"required"`
}

type EnvelopeData struct {
	ID         string             `json:"id"`
	Type       string             `json:"type"`
	Attributes EnvelopeAttributes `json:"attributes" validate:"required"`
}

type EnvelopeAttributes struct {
	Event   string    `json:"event" validate:"required"`
	Payload string    `json:"payload" validate:"required"`
	Status  string    `json:"status"`
	Created time.Time `json:"created"`
}

// Payload is the fully decoded event: name, primary object, related objects,
// and the upstream creation timestamp. Immutable after decoding.
type Payload struct {
	DeliveryID string
	Event      string
	Object     Object
	Included   []Object
	CreatedAt  time.Time
}

type innerDocument struct {
	Data     Object   `json:"data"`
	Included []Object `json:"included"`
}

// Unwrap decodes the embedded payload string into a Payload. Every failure is
// a VALIDATION_ERROR: malformed third-party input is a recoverable per-request
// condition, never a crash.
func (e *Envelope) Unwrap() (*Payload, error) {
	name := strings.TrimSpace(e.Data.Attributes.Event)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "envelope is missing an event name")
	}
	raw := e.Data.Attributes.Payload
	if strings.TrimSpace(raw) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "envelope is missing the embedded payload")
	}

	var inner innerDocument
	if err := json.Unmarshal([]byte(raw), &inner); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "decode embedded payload").
			WithDetails(map[string]any{"event": name})
	}
	if inner.Data.ID == "" && inner.Data.Type == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "embedded payload has no primary object").
			WithDetails(map[string]any{"event": name})
	}

	return &Payload{
		DeliveryID: e.Data.ID,
		Event:      name,
		Object:     inner.Data,
		Included:   inner.Included,
		CreatedAt:  e.Data.Attributes.Created,
	}, nil
}

// RelatedAccount finds an account object among the included resources.
func (p *Payload) RelatedAccount() (Object, bool) {
	for _, obj := range p.Included {
		if obj.IsAccount() {
			return obj, true
		}
	}
	return Object{}, false
}
