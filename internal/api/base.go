package api

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	chargerr "github.com/will/chargify/internal/errors"
	"github.com/will/chargify/internal/types"
)

var tracer = otel.Tracer("github.com/will/chargify/internal/api")

// startSpan opens a client span for op. The returned func ends it and records
// err when non-nil.
func startSpan(ctx context.Context, op, method, path string) (context.Context, func(error)) {
	ctx, span := tracer.Start(ctx, op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("chargify.operation", op),
			attribute.String("http.method", method),
			attribute.String("chargify.path", path),
		),
	)
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, op+" failed")
		}
		span.End()
	}
}

// send executes one request. The resty client already carries the base URL,
// basic auth and JSON content type; send adds the per-call pieces.
func send(ctx context.Context, rc *resty.Client, op, method, path string, body any, query map[string]string) (*resty.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req := rc.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, chargerr.NewNetworkError(op, err)
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))
	return resp, nil
}

// decodeEnvelope parses a single JSON object. An empty body decodes to an
// empty envelope; anything unparseable is an UnexpectedResponseError.
func decodeEnvelope(op string, resp *resty.Response) (types.Envelope, error) {
	body := resp.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return types.Envelope{}, nil
	}
	var env types.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, chargerr.NewUnexpectedResponse(op, resp.StatusCode(), err, body)
	}
	if env == nil {
		env = types.Envelope{}
	}
	return env, nil
}

// unwrapOne decodes the entity under key. A missing key is classified by
// status: not found for 2xx/404, APIError otherwise.
func unwrapOne[T any](op string, resp *resty.Response, key string) (*T, error) {
	env, err := decodeEnvelope(op, resp)
	if err != nil {
		return nil, err
	}
	var v T
	ok, err := env.Decode(key, &v)
	if err != nil {
		return nil, chargerr.NewUnexpectedResponse(op, resp.StatusCode(), err, resp.Body())
	}
	if !ok {
		return nil, chargerr.MissingEntity(op, resp.StatusCode(), env)
	}
	return &v, nil
}

// unwrapList decodes a JSON array of envelopes, unwrapping key from each
// element. Elements without the key are decoded as bare entities.
func unwrapList[T any](op string, resp *resty.Response, key string) ([]T, error) {
	if !chargerr.IsSuccess(resp.StatusCode()) {
		env, err := decodeEnvelope(op, resp)
		if err != nil {
			return nil, err
		}
		return nil, chargerr.MissingEntity(op, resp.StatusCode(), env)
	}

	body := resp.Body()
	out := []T{}
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	var envs []types.Envelope
	if err := json.Unmarshal(body, &envs); err != nil {
		return nil, chargerr.NewUnexpectedResponse(op, resp.StatusCode(), err, body)
	}
	for _, env := range envs {
		var v T
		ok, err := env.Decode(key, &v)
		if err == nil && !ok {
			err = decodeBare(env, &v)
		}
		if err != nil {
			return nil, chargerr.NewUnexpectedResponse(op, resp.StatusCode(), err, body)
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeBare(env types.Envelope, v any) error {
	raw, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
