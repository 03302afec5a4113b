package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, body string) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(body), &env))
	return env
}

func TestEnvelope_Has(t *testing.T) {
	env := decodeEnvelope(t, `{"customer":{"id":1},"empty":{ },"nil":null,"list":[]}`)

	assert.True(t, env.Has("customer"))
	assert.True(t, env.Has("list"))
	assert.False(t, env.Has("empty"))
	assert.False(t, env.Has("nil"))
	assert.False(t, env.Has("missing"))
}

func TestEnvelope_Decode(t *testing.T) {
	env := decodeEnvelope(t, `{"customer":{"id":5,"first_name":"Ada","reference":"r5"}}`)

	var c Customer
	ok, err := env.Decode(KeyCustomer, &c)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, c.ID)
	assert.Equal(t, "Ada", c.FirstName)
	assert.Equal(t, "r5", c.Reference)

	var p Product
	ok, err = env.Decode(KeyProduct, &p)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, p.ID)
}

func TestEnvelope_DecodeTypeMismatch(t *testing.T) {
	env := decodeEnvelope(t, `{"customer":"not an object"}`)
	var c Customer
	_, err := env.Decode(KeyCustomer, &c)
	assert.Error(t, err)
}

func TestEnvelope_Errors(t *testing.T) {
	assert.Equal(t, []string{"Email: cannot be blank.", "Last name: cannot be blank."},
		decodeEnvelope(t, `{"errors":["Email: cannot be blank.","Last name: cannot be blank."]}`).Errors())
	assert.Equal(t, []string{"Not Found"}, decodeEnvelope(t, `{"errors":"Not Found"}`).Errors())
	assert.Nil(t, decodeEnvelope(t, `{"errors":{"x":1}}`).Errors())
	assert.Nil(t, decodeEnvelope(t, `{}`).Errors())

	var nilResult *SubscriptionResult
	assert.Nil(t, nilResult.Errors())
}

func TestCustomerUpdate_Serialization(t *testing.T) {
	b, err := json.Marshal(CustomerUpdateEnvelope{Customer: CustomerUpdate{
		ID:           42,
		FirstName:    String("X"),
		Organization: String(""),
	}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"customer":{"first_name":"X","organization":""}}`, string(b))
}

func TestCustomerAttributes_OmitsEmpty(t *testing.T) {
	b, err := json.Marshal(CustomerEnvelope{Customer: CustomerAttributes{FirstName: "X"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"customer":{"first_name":"X"}}`, string(b))
}

func TestCancellationEnvelope(t *testing.T) {
	b, err := json.Marshal(NewCancellationEnvelope("too expensive"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"subscription":{"cancellation_message":"too expensive"}}`, string(b))
}
