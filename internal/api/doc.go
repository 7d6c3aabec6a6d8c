// Package api talks to the PawHaven marketplace REST API.
//
// Gateway is the single shared transport: it injects the bearer token from
// the credential store, reacts globally to 401 responses, and hands back raw
// JSON. Client layers one thin method per backend endpoint on top of it; the
// methods carry no logic beyond addressing and decoding.
package api
