package reconcile

import "context"

// CompletionFetcher returns the achievement completion for one game.
// Implementations must collapse every failure to Unknown instead of
// returning an error, so a stats lookup can never block the owning item's
// other field updates.
type CompletionFetcher func(ctx context.Context, appID int64) Completion

// Planner classifies source items against the destination index and
// produces the writes to perform.
type Planner struct {
	fetch CompletionFetcher
}

// NewPlanner creates a planner using the given completion fetcher.
func NewPlanner(fetch CompletionFetcher) *Planner {
	return &Planner{fetch: fetch}
}

// Plan decides the destination write for a single source item.
// It returns nil when the matched record already carries the item's values.
func (p *Planner) Plan(ctx context.Context, item Item, index Index) *Action {
	rec, ok := index[item.AppID]
	if !ok {
		return p.planCreate(ctx, item)
	}

	delta := p.planDelta(ctx, item, rec)
	if len(delta) == 0 {
		return nil
	}

	return &Action{
		Type:   ActionUpdate,
		Item:   item,
		Handle: rec.Handle,
		Delta:  delta,
	}
}

// planCreate builds the full initial property set for an unmatched item.
// A new record has no prior ratio to compare against, so the completion is
// always fetched; it is written only when known.
func (p *Planner) planCreate(ctx context.Context, item Item) *Action {
	props := Delta{
		FieldAppID:    item.AppID,
		FieldName:     item.Name,
		FieldPlaytime: item.Playtime,
	}
	if c := p.fetch(ctx, item.AppID); c.Known {
		props[FieldAchievement] = c.Ratio
	}

	return &Action{Type: ActionCreate, Item: item, Delta: props}
}

// planDelta computes the minimal set of changed fields for a matched record.
func (p *Planner) planDelta(ctx context.Context, item Item, rec Record) Delta {
	delta := Delta{}

	if rec.Name != item.Name {
		delta[FieldName] = item.Name
	}

	// An absent playtime property counts as different, same as an absent
	// achievement below: nil is "never written", not zero.
	if rec.Playtime == nil || *rec.Playtime != item.Playtime {
		delta[FieldPlaytime] = item.Playtime

		// Playtime moved, so the ratio may have moved with it. This is
		// the only path that spends a stats call on a matched item.
		if c := p.fetch(ctx, item.AppID); c.Known {
			// Exact equality, no epsilon: the ratio is computed the
			// same way every run, so identical inputs compare equal.
			if rec.Achievement == nil || *rec.Achievement != c.Ratio {
				delta[FieldAchievement] = c.Ratio
			}
		}
	}

	return delta
}
