// Package state holds the client-side cache of every backend resource family.
//
// The Store is constructed once at bootstrap and shared by the UI and the
// background poller. Each slice pairs entity storage with the status of the
// most recent operation against it; entity storage only changes when an
// operation fulfils (or through the explicit optimistic cart actions), while
// status changes on every lifecycle transition.
//
// Overlapping operations against the same slice are not serialized: whichever
// response lands last wins. The optimistic cart actions are the one sanctioned
// non-confirmed write; a failed confirmation is surfaced through the status
// but not rolled back, and the next successful fetch reconciles.
package state
