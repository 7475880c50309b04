package request

import (
	"encoding/json"
	"testing"
)

func TestPaymentDataRequest_ToPaymentSource(t *testing.T) {
	r := PaymentDataRequest{
		Kind:            "card",
		Payload:         json.RawMessage(`{"token":"abc"}`),
		FraudMetadataID: "fn-1",
	}

	source := r.ToPaymentSource()
	if source.Kind != "card" {
		t.Fatalf("unexpected kind %q", source.Kind)
	}
	if string(source.Payload) != `{"token":"abc"}` {
		t.Fatalf("payload not forwarded verbatim: %s", source.Payload)
	}
	if source.FraudMetadataID != "fn-1" {
		t.Fatalf("unexpected fraud metadata id %q", source.FraudMetadataID)
	}
}
