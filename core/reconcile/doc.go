// Package reconcile decides what the destination library database needs to
// change to match the source game catalog.
//
// The package is pure decision logic: it never talks to a remote service
// itself. Callers hand it the source items, a pre-built index of the
// destination records, and a completion fetcher; it answers with create and
// update actions carrying the minimal field delta to write.
//
// # Components
//
// 1. Index: a lookup from source identifier (appid) to destination record,
// built in one pass over the destination set. Records without an appid
// cannot be matched and are skipped; duplicate appids keep the last record
// seen.
//
// 2. Planner: classifies each source item as create, update, or no-op.
// Updates carry only the properties that actually differ, so an unchanged
// library costs zero writes.
//
// # Achievement fetches
//
// The completion ratio is the only field that needs a second remote call per
// item, so the planner requests it as rarely as possible: unconditionally
// for brand-new records (there is nothing to compare against), and for
// matched records only when playtime moved. A title-only change never
// triggers a stats call.
//
// # Usage Example
//
//	index := reconcile.BuildIndex(records)
//	planner := reconcile.NewPlanner(source.Completion)
//	for _, item := range items {
//	    if action := planner.Plan(ctx, item, index); action != nil {
//	        // execute create or update
//	    }
//	}
package reconcile
