// Package notion provides the destination repository client over the Notion
// API.
//
// The destination is a single Notion database whose pages mirror the game
// catalog through four curated properties:
//
//	name         title  (game title)
//	appid        number (source identifier)
//	play_time    number (minutes)
//	achievement  number (completion ratio 0..1, absent until first known value)
//
// # Operations
//
//   - QueryAll: reads the whole database, transparently following the
//     pagination cursor until every page has been accumulated.
//   - CreatePage: inserts a new record with its initial property set and a
//     cover image derived from the appid.
//   - UpdatePage: patches only the properties named in the delta; the API
//     leaves every other property untouched.
//
// Unlike the stats endpoint of the source side, all three operations raise
// on non-success responses: a typed *APIError carries the status code and
// body so the sync driver can log per-item failures with full context.
package notion
