// Package api contains the request gateway for the Ledgerline backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Gateway interface) covering
//     registration, login, the dashboard snapshot, deposit/withdraw/transfer,
//     and the administrative user/transaction operations.
//  2. A concrete HTTP implementation (see HTTPClient) that attaches the
//     current bearer credential to authenticated calls, broadcasts
//     RequestStarted/RequestEnded around every dispatch, raises
//     SessionExpired on a 401, and surfaces payload-level account suspension
//     as AccountSuspended without touching session state.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized. Server-reported domain
// failures are returned as *APIError with the message verbatim; the gateway
// never interprets business rules.
//
// # Concurrency
//
// HTTPClient is safe for concurrent use. Calls in flight at the same time do
// not interfere: each reads its own token snapshot and emits its own
// lifecycle pair, and no ordering is guaranteed between distinct calls.
package api
