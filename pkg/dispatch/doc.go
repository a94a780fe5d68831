// Package dispatch routes a failed validation pass to exactly one recovery
// outcome: forwarding to another handler, redirecting the client, re-rendering
// a page component, or emitting a structured JSON status.
//
// A Dispatcher is a two-state machine scoped to a single request. It starts
// in the validating state, and the first outcome call moves it to the
// terminal dispatched state; any later outcome call returns
// ErrAlreadyDispatched without writing to the connection.
//
// Redirect and RenderPage are DataStar-aware: requests issued by a DataStar
// client receive their outcome over Server-Sent Events instead of a plain
// HTTP response.
package dispatch
