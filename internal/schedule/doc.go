// Package schedule runs weather fetches in one of three modes.
//
//   - One-shot: fetch once, print a line, return the error if any.
//   - Headless: fetch, print, repeat every RefreshInterval (gocron, one
//     job at a time) until the context is cancelled. Failures go to the
//     error writer and the loop carries on.
//   - Interactive: the overlay's own timer calls Issue; each call starts an
//     independent fetch unit whose Result is handed to a Sink.
//
// Fetch units are not coalesced or cancelled. If a later unit finishes
// first its result is delivered first, and the earlier unit's result
// overwrites it when it lands. Setting SkipOverlapping turns Issue into a
// no-op while a unit is still in flight.
//
// Retry policy is "wait for the next tick": nothing here retries a failed
// fetch.
package schedule
