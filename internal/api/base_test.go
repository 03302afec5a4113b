package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	chargerr "github.com/will/chargify/internal/errors"
	"github.com/will/chargify/internal/types"
)

func isUnexpected(err error) bool { return chargerr.IsUnexpectedResponse(err) }

// Every read endpoint must turn a non-JSON body into an UnexpectedResponseError
// carrying both the parser message and the raw body.
func TestReads_InvalidJSON(t *testing.T) {
	t.Parallel()
	const raw = "<html>Chargify is down</html>"
	srv := serve(t, http.StatusOK, raw, nil)
	rc := newRC(srv.URL)
	ctx := context.Background()

	reads := map[string]func() error{
		"ListCustomers": func() error {
			_, err := ListCustomers(ctx, rc, types.ListCustomersOptions{})
			return err
		},
		"GetCustomer": func() error {
			_, err := GetCustomer(ctx, rc, 1)
			return err
		},
		"GetCustomerByReference": func() error {
			_, err := GetCustomerByReference(ctx, rc, "r1")
			return err
		},
		"ListCustomerSubscriptions": func() error {
			_, err := ListCustomerSubscriptions(ctx, rc, 1)
			return err
		},
		"GetSubscription": func() error {
			_, _, err := GetSubscription(ctx, rc, 1)
			return err
		},
		"ListProducts": func() error {
			_, err := ListProducts(ctx, rc)
			return err
		},
		"GetProduct": func() error {
			_, err := GetProduct(ctx, rc, 1)
			return err
		},
		"GetProductByHandle": func() error {
			_, err := GetProductByHandle(ctx, rc, "basic")
			return err
		},
	}

	for name, read := range reads {
		err := read()
		var ure *chargerr.UnexpectedResponseError
		if !errors.As(err, &ure) {
			t.Fatalf("%s: expected UnexpectedResponseError, got %v", name, err)
		}
		if ure.Body != raw {
			t.Fatalf("%s: raw body not preserved: %q", name, ure.Body)
		}
		if ure.Message == "" || !strings.Contains(err.Error(), ure.Message) || !strings.Contains(err.Error(), raw) {
			t.Fatalf("%s: message incomplete: %v", name, err)
		}
	}
}

func TestReads_WrongShape(t *testing.T) {
	t.Parallel()
	srv := serve(t, http.StatusOK, `{"not":"a list"}`, nil)
	if _, err := ListProducts(context.Background(), newRC(srv.URL)); !isUnexpected(err) {
		t.Fatalf("expected UnexpectedResponseError, got %v", err)
	}
}

func TestSpans_RecordOperationAndErrors(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	ok := serve(t, http.StatusOK, `{"product":{"id":1}}`, nil)
	if _, err := GetProduct(context.Background(), newRC(ok.URL), 1); err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	bad := serve(t, http.StatusOK, `nope`, nil)
	if _, err := GetProduct(context.Background(), newRC(bad.URL), 1); err == nil {
		t.Fatal("expected parse error")
	}

	spans := sr.Ended()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Name() != "get product" || spans[0].Status().Code == codes.Error {
		t.Fatalf("unexpected first span: %s %v", spans[0].Name(), spans[0].Status())
	}
	var sawStatus bool
	for _, kv := range spans[0].Attributes() {
		if kv.Key == "http.status_code" && kv.Value.AsInt64() == http.StatusOK {
			sawStatus = true
		}
	}
	if !sawStatus {
		t.Fatalf("status attribute missing: %v", spans[0].Attributes())
	}
	if spans[1].Status().Code != codes.Error {
		t.Fatalf("expected error status on second span, got %v", spans[1].Status())
	}
}
