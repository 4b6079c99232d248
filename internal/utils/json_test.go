package utils

import (
	"net/http/httptest"
	"strings"
	"testing"
)

type sample struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func TestDecodeJSONRequest(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"row":3,"col":4}`))
	var got sample
	if err := DecodeJSONRequest(r, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Row != 3 || got.Col != 4 {
		t.Fatalf("unexpected value: %+v", got)
	}
}

func TestDecodeJSONRequestRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"row":3,"x":1}`))
	var got sample
	if err := DecodeJSONRequest(r, &got); err == nil {
		t.Fatalf("expected an error for unknown fields")
	}
}

func TestDecodeJSONRequestEmptyBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(""))
	var got sample
	if err := DecodeJSONRequest(r, &got); err == nil {
		t.Fatalf("expected an error for an empty body")
	}
}

func TestDecodeOptionalJSONRequestEmptyBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(""))
	got := sample{Row: 1}
	if err := DecodeOptionalJSONRequest(r, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Row != 1 {
		t.Fatalf("empty body must leave dst untouched")
	}
}
