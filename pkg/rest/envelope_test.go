package rest

import (
	"encoding/json"
	"testing"

	pkgerrors "github.com/fithouse/console/pkg/errors"
)

func TestEnvelopeDecodeSuccess(t *testing.T) {
	env := Envelope{Success: true, Data: json.RawMessage(`{"id":"m1"}`)}
	var out struct {
		ID string `json:"id"`
	}
	if err := env.Decode(&out, "Error al obtener membresías"); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.ID != "m1" {
		t.Fatalf("unexpected payload %+v", out)
	}
}

func TestEnvelopeDecodeFailures(t *testing.T) {
	cases := []struct {
		name    string
		env     Envelope
		wantMsg string
	}{
		{
			name:    "success false with backend message",
			env:     Envelope{Success: false, Message: "token inválido", Data: json.RawMessage(`{}`)},
			wantMsg: "token inválido",
		},
		{
			name:    "success false without message uses fallback",
			env:     Envelope{Success: false},
			wantMsg: "Error al obtener customers",
		},
		{
			name:    "null data uses fallback",
			env:     Envelope{Success: true, Data: json.RawMessage(`null`)},
			wantMsg: "Error al obtener customers",
		},
		{
			name:    "absent data uses fallback",
			env:     Envelope{Success: true},
			wantMsg: "Error al obtener customers",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.env.Decode(nil, "Error al obtener customers")
			typed := pkgerrors.As(err)
			if typed == nil {
				t.Fatalf("expected envelope error, got %v", err)
			}
			if typed.Code() != pkgerrors.CodeEnvelope {
				t.Fatalf("expected envelope code, got %s", typed.Code())
			}
			if typed.Message() != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, typed.Message())
			}
		})
	}
}

func TestEnvelopeDecodeLooseToleratesMissingData(t *testing.T) {
	env := Envelope{Success: true}
	var out struct {
		ID string `json:"id"`
	}
	if err := env.DecodeLoose(&out, "Error"); err != nil {
		t.Fatalf("loose decode should tolerate absent data: %v", err)
	}
	if out.ID != "" {
		t.Fatalf("out should stay untouched, got %+v", out)
	}

	failing := Envelope{Success: false, Message: "sin permisos"}
	if err := failing.DecodeLoose(&out, "Error"); pkgerrors.As(err) == nil {
		t.Fatalf("success=false must still fail, got %v", err)
	}
}
