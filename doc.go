// Package chargify is a client for the Chargify subscription billing API.
//
// A Client is bound to one site, https://{subdomain}.chargify.com, and
// authenticates every request with the site's API key:
//
//	c, err := chargify.New(apiKey, "acme")
//	if err != nil { ... }
//	cust, err := c.CustomerByReference(ctx, "user-42")
//
// Reads return the unwrapped entity. Writes return a result holding the
// entity, the raw response envelope and the HTTP status, so Chargify's
// validation messages stay available when a write is rejected. Subscription
// writes also report Success, derived from the status code alone.
//
// Bodies that are not valid JSON surface as *UnexpectedResponseError, which
// carries the raw body for diagnosis.
package chargify
