package reconcile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher returns canned completions and counts how often it is asked.
type fakeFetcher struct {
	completions map[int64]Completion
	calls       int
}

func (f *fakeFetcher) fetch(ctx context.Context, appID int64) Completion {
	f.calls++
	return f.completions[appID]
}

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestPlan_Create(t *testing.T) {
	tests := []struct {
		name       string
		completion Completion
		wantDelta  Delta
	}{
		{
			name:       "known completion is part of the initial set",
			completion: Completion{Ratio: 0.5, Known: true},
			wantDelta: Delta{
				FieldAppID:       int64(10),
				FieldName:        "Game A",
				FieldPlaytime:    int64(120),
				FieldAchievement: 0.5,
			},
		},
		{
			name:       "unknown completion is left out",
			completion: Unknown,
			wantDelta: Delta{
				FieldAppID:    int64(10),
				FieldName:     "Game A",
				FieldPlaytime: int64(120),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &fakeFetcher{completions: map[int64]Completion{10: tt.completion}}
			planner := NewPlanner(fetcher.fetch)

			item := Item{AppID: 10, Name: "Game A", Playtime: 120}
			action := planner.Plan(context.Background(), item, Index{})

			require.NotNil(t, action)
			assert.Equal(t, ActionCreate, action.Type)
			assert.Equal(t, item, action.Item)
			assert.Empty(t, action.Handle)
			assert.Equal(t, tt.wantDelta, action.Delta)
			assert.Equal(t, 1, fetcher.calls, "creates always fetch the completion")
		})
	}
}

func TestPlan_Update(t *testing.T) {
	tests := []struct {
		name       string
		item       Item
		record     Record
		completion Completion
		wantDelta  Delta // nil means no action
		wantCalls  int
	}{
		{
			name:      "unchanged record yields no action",
			item:      Item{AppID: 20, Name: "Game B", Playtime: 300},
			record:    Record{Handle: "page-2", AppID: 20, HasAppID: true, Name: "Game B", Playtime: int64Ptr(300), Achievement: float64Ptr(0.4)},
			wantDelta: nil,
			wantCalls: 0,
		},
		{
			name:      "title change alone never fetches stats",
			item:      Item{AppID: 20, Name: "Game B: Remastered", Playtime: 300},
			record:    Record{Handle: "page-2", AppID: 20, HasAppID: true, Name: "Game B", Playtime: int64Ptr(300)},
			wantDelta: Delta{FieldName: "Game B: Remastered"},
			wantCalls: 0,
		},
		{
			name:       "playtime change with unknown completion stages playtime only",
			item:       Item{AppID: 20, Name: "Game B", Playtime: 500},
			record:     Record{Handle: "page-2", AppID: 20, HasAppID: true, Name: "Game B", Playtime: int64Ptr(300)},
			completion: Unknown,
			wantDelta:  Delta{FieldPlaytime: int64(500)},
			wantCalls:  1,
		},
		{
			name:       "playtime change with equal ratio stages playtime only",
			item:       Item{AppID: 20, Name: "Game B", Playtime: 500},
			record:     Record{Handle: "page-2", AppID: 20, HasAppID: true, Name: "Game B", Playtime: int64Ptr(300), Achievement: float64Ptr(0.4)},
			completion: Completion{Ratio: 0.4, Known: true},
			wantDelta:  Delta{FieldPlaytime: int64(500)},
			wantCalls:  1,
		},
		{
			name:       "playtime and ratio change stages both",
			item:       Item{AppID: 20, Name: "Game B", Playtime: 500},
			record:     Record{Handle: "page-2", AppID: 20, HasAppID: true, Name: "Game B", Playtime: int64Ptr(300), Achievement: float64Ptr(0.4)},
			completion: Completion{Ratio: 0.6, Known: true},
			wantDelta:  Delta{FieldPlaytime: int64(500), FieldAchievement: 0.6},
			wantCalls:  1,
		},
		{
			name:       "absent achievement differs from a known zero ratio",
			item:       Item{AppID: 20, Name: "Game B", Playtime: 500},
			record:     Record{Handle: "page-2", AppID: 20, HasAppID: true, Name: "Game B", Playtime: int64Ptr(300)},
			completion: Completion{Ratio: 0, Known: true},
			wantDelta:  Delta{FieldPlaytime: int64(500), FieldAchievement: 0.0},
			wantCalls:  1,
		},
		{
			name:       "absent playtime counts as changed",
			item:       Item{AppID: 20, Name: "Game B", Playtime: 300},
			record:     Record{Handle: "page-2", AppID: 20, HasAppID: true, Name: "Game B"},
			completion: Unknown,
			wantDelta:  Delta{FieldPlaytime: int64(300)},
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &fakeFetcher{completions: map[int64]Completion{tt.item.AppID: tt.completion}}
			planner := NewPlanner(fetcher.fetch)
			index := Index{tt.record.AppID: tt.record}

			action := planner.Plan(context.Background(), tt.item, index)

			if tt.wantDelta == nil {
				assert.Nil(t, action)
			} else {
				require.NotNil(t, action)
				assert.Equal(t, ActionUpdate, action.Type)
				assert.Equal(t, tt.record.Handle, action.Handle)
				assert.Equal(t, tt.wantDelta, action.Delta)
			}
			assert.Equal(t, tt.wantCalls, fetcher.calls)
		})
	}
}

// TestPlan_Idempotent checks that applying a planned delta to the record
// makes the next plan a no-op.
func TestPlan_Idempotent(t *testing.T) {
	fetcher := &fakeFetcher{completions: map[int64]Completion{20: {Ratio: 0.6, Known: true}}}
	planner := NewPlanner(fetcher.fetch)

	item := Item{AppID: 20, Name: "Game B", Playtime: 500}
	record := Record{Handle: "page-2", AppID: 20, HasAppID: true, Name: "Game B", Playtime: int64Ptr(300), Achievement: float64Ptr(0.4)}

	action := planner.Plan(context.Background(), item, Index{20: record})
	require.NotNil(t, action)

	// Apply the delta the way the destination would.
	if v, ok := action.Delta[FieldName].(string); ok {
		record.Name = v
	}
	if v, ok := action.Delta[FieldPlaytime].(int64); ok {
		record.Playtime = &v
	}
	if v, ok := action.Delta[FieldAchievement].(float64); ok {
		record.Achievement = &v
	}

	assert.Nil(t, planner.Plan(context.Background(), item, Index{20: record}))
}
