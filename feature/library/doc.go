// Package library implements the game library sync feature.
//
// It drives one full reconciliation run between the Steam game catalog and
// the mirrored Notion database:
//
//  1. Fetch the source catalog and the full destination record set
//     concurrently; the destination read must complete before any decision
//     is made.
//  2. Build the destination index keyed by appid.
//  3. Plan and execute one action per source item, sequentially. A failed
//     create or update is logged with the item's appid and name and counted,
//     never aborting the run; there is no retry within a run.
//
// # Components
//
//   - Service: orchestrates the run and keeps the last run outcome.
//   - Handler: exposes HTTP endpoints for triggering a run and reading the
//     last outcome.
//   - Feature: registers the feature with the application loader.
//
// # HTTP Endpoints
//
//   - POST /library/sync   : run a full sync (honors ?dry_run=true)
//   - GET  /library/status : outcome of the most recent run
package library
