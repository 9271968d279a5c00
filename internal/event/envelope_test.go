package event

import (
	"encoding/json"
	"testing"
	"time"

	pkgerrors "github.com/angelmondragon/licensing-relay/pkg/errors"
)

func buildEnvelope(t *testing.T, eventName string, inner any) *Envelope {
	t.Helper()

	raw, err := json.Marshal(inner)
	if err != nil {
		t.Fatalf("marshal inner payload: %v", err)
	}
	return &Envelope{
		Data: EnvelopeData{
			ID:   "del_1",
			Type: "webhook-events",
			Attributes: EnvelopeAttributes{
				Event:   eventName,
				Payload: string(raw),
				Created: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestUnwrapDecodesPrimaryAndIncluded(t *testing.T) {
	env := buildEnvelope(t, "license.created", map[string]any{
		"data": map[string]any{
			"id":   "lic_1",
			"type": "licenses",
			"attributes": map[string]any{
				"status": "ACTIVE",
			},
			"relationships": map[string]any{
				"account": map[string]any{
					"data": map[string]any{"type": "accounts", "id": "acct_1"},
				},
			},
		},
		"included": []map[string]any{
			{
				"id":         "acct_1",
				"type":       "accounts",
				"attributes": map[string]any{"name": "Acme"},
			},
		},
	})

	payload, err := env.Unwrap()
	if err != nil {
		t.Fatalf("unwrap: %v", err)
	}
	if payload.Event != "license.created" {
		t.Fatalf("unexpected event %q", payload.Event)
	}
	if payload.Object.ID != "lic_1" {
		t.Fatalf("unexpected primary object %q", payload.Object.ID)
	}
	if payload.Object.AccountID() != "acct_1" {
		t.Fatalf("unexpected account id %q", payload.Object.AccountID())
	}
	if payload.DeliveryID != "del_1" {
		t.Fatalf("unexpected delivery id %q", payload.DeliveryID)
	}

	account, ok := payload.RelatedAccount()
	if !ok {
		t.Fatal("expected related account")
	}
	if account.Attributes["name"] != "Acme" {
		t.Fatalf("unexpected account attributes %v", account.Attributes)
	}
}

func TestUnwrapRejectsMalformedPayloadString(t *testing.T) {
	env := &Envelope{
		Data: EnvelopeData{
			Attributes: EnvelopeAttributes{
				Event:   "license.created",
				Payload: "{not json",
			},
		},
	}

	_, err := env.Unwrap()
	if err == nil {
		t.Fatal("expected parse error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
}

func TestUnwrapRejectsMissingEvent(t *testing.T) {
	env := buildEnvelope(t, "   ", map[string]any{
		"data": map[string]any{"id": "lic_1", "type": "licenses"},
	})

	if _, err := env.Unwrap(); err == nil {
		t.Fatal("expected missing event error")
	}
}

func TestUnwrapRejectsEmptyPayload(t *testing.T) {
	env := &Envelope{
		Data: EnvelopeData{
			Attributes: EnvelopeAttributes{Event: "license.created"},
		},
	}

	if _, err := env.Unwrap(); err == nil {
		t.Fatal("expected missing payload error")
	}
}

func TestUnwrapRejectsPayloadWithoutPrimaryObject(t *testing.T) {
	env := buildEnvelope(t, "license.created", map[string]any{"meta": map[string]any{}})

	if _, err := env.Unwrap(); err == nil {
		t.Fatal("expected missing primary object error")
	}
}

func TestAccountIDMissingRelationship(t *testing.T) {
	obj := Object{ID: "lic_1", Type: "licenses"}
	if got := obj.AccountID(); got != "" {
		t.Fatalf("expected empty account id, got %q", got)
	}

	obj.Relationships = map[string]Relationship{"account": {}}
	if got := obj.AccountID(); got != "" {
		t.Fatalf("expected empty account id for nil data, got %q", got)
	}
}
