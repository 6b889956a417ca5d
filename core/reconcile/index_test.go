package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildIndex(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		want    Index
	}{
		{
			name:    "empty input",
			records: nil,
			want:    Index{},
		},
		{
			name: "records keyed by appid",
			records: []Record{
				{Handle: "page-1", AppID: 10, HasAppID: true, Name: "Game A"},
				{Handle: "page-2", AppID: 20, HasAppID: true, Name: "Game B"},
			},
			want: Index{
				10: {Handle: "page-1", AppID: 10, HasAppID: true, Name: "Game A"},
				20: {Handle: "page-2", AppID: 20, HasAppID: true, Name: "Game B"},
			},
		},
		{
			name: "records without appid are skipped",
			records: []Record{
				{Handle: "page-1", AppID: 10, HasAppID: true},
				{Handle: "page-2", Name: "Untracked"},
			},
			want: Index{
				10: {Handle: "page-1", AppID: 10, HasAppID: true},
			},
		},
		{
			name: "duplicate appid keeps the last record",
			records: []Record{
				{Handle: "page-1", AppID: 10, HasAppID: true, Name: "Old"},
				{Handle: "page-2", AppID: 10, HasAppID: true, Name: "New"},
			},
			want: Index{
				10: {Handle: "page-2", AppID: 10, HasAppID: true, Name: "New"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildIndex(tt.records))
		})
	}
}
