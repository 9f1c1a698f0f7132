package httpjson

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type samplePayload struct {
	Nome string `json:"nome"`
	Tipo string `json:"tipo"`
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestDecodeStrict_Valid(t *testing.T) {
	c := newContext(`{"nome":"UBS Teste","tipo":"UBS"}`)
	var p samplePayload
	if err := DecodeStrict(c, &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Nome != "UBS Teste" || p.Tipo != "UBS" {
		t.Errorf("unexpected decode result: %+v", p)
	}
}

func TestDecodeStrict_UnknownField(t *testing.T) {
	c := newContext(`{"nome":"UBS Teste","tipo":"UBS","extra":"x"}`)
	var p samplePayload
	if err := DecodeStrict(c, &p); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestDecodeStrict_MistypedField(t *testing.T) {
	c := newContext(`{"nome":42}`)
	var p samplePayload
	if err := DecodeStrict(c, &p); err == nil {
		t.Error("expected error for mistyped field")
	}
}

func TestDecodeStrict_TrailingData(t *testing.T) {
	c := newContext(`{"nome":"a"}{"nome":"b"}`)
	var p samplePayload
	if err := DecodeStrict(c, &p); err == nil {
		t.Error("expected error for trailing data")
	}
}

func TestDecodeStrict_EmptyBody(t *testing.T) {
	c := newContext(``)
	var p samplePayload
	if err := DecodeStrict(c, &p); err == nil {
		t.Error("expected error for empty body")
	}
}
