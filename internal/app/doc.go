// Package app is the composition root for the pawdeck client: it wires
// configuration, credentials, the API gateway, the state store, the
// notification aggregator, and the background poller into the UI.
package app
