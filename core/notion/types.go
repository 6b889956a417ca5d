package notion

import (
	"strings"

	"library-sync/core/reconcile"
)

// Page is one destination record.
type Page struct {
	ID         string              `json:"id"`
	Properties map[string]property `json:"properties"`
}

// property is the subset of Notion property payloads the library schema
// uses. The same shape serves reads and writes: number properties carry a
// pointer so zero survives marshalling while absent values stay absent.
type property struct {
	Type   string     `json:"type,omitempty"`
	Number *float64   `json:"number,omitempty"`
	Title  []richText `json:"title,omitempty"`
}

type richText struct {
	Type      string `json:"type,omitempty"`
	Text      *text  `json:"text,omitempty"`
	PlainText string `json:"plain_text,omitempty"`
}

type text struct {
	Content string `json:"content"`
}

// queryRequest is the body for a database query call.
type queryRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

// queryResponse is one page of database query results.
type queryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// createRequest is the body for a page create call.
type createRequest struct {
	Parent     parent              `json:"parent"`
	Properties map[string]property `json:"properties"`
	Cover      *cover              `json:"cover,omitempty"`
}

type parent struct {
	DatabaseID string `json:"database_id"`
}

type cover struct {
	Type     string       `json:"type"`
	External externalFile `json:"external"`
}

type externalFile struct {
	URL string `json:"url"`
}

// updateRequest is the body for a page patch call.
type updateRequest struct {
	Properties map[string]property `json:"properties"`
}

// Record converts the page's curated properties into a destination record.
// Absent numeric properties become nil pointers so the planner can tell
// "never written" from zero.
func (p *Page) Record() reconcile.Record {
	rec := reconcile.Record{Handle: p.ID}

	if prop, ok := p.Properties[reconcile.FieldAppID]; ok && prop.Number != nil {
		rec.AppID = int64(*prop.Number)
		rec.HasAppID = true
	}
	if prop, ok := p.Properties[reconcile.FieldName]; ok {
		var b strings.Builder
		for _, rt := range prop.Title {
			b.WriteString(rt.PlainText)
		}
		rec.Name = b.String()
	}
	if prop, ok := p.Properties[reconcile.FieldPlaytime]; ok && prop.Number != nil {
		minutes := int64(*prop.Number)
		rec.Playtime = &minutes
	}
	if prop, ok := p.Properties[reconcile.FieldAchievement]; ok && prop.Number != nil {
		ratio := *prop.Number
		rec.Achievement = &ratio
	}

	return rec
}

// properties converts a field delta into Notion property payloads.
// The title field becomes a single-segment rich text; every other curated
// field is a number.
func properties(delta reconcile.Delta) map[string]property {
	props := make(map[string]property, len(delta))
	for field, value := range delta {
		switch field {
		case reconcile.FieldName:
			name, _ := value.(string)
			props[field] = property{
				Title: []richText{{Type: "text", Text: &text{Content: name}}},
			}
		default:
			props[field] = property{Number: numberValue(value)}
		}
	}
	return props
}

func numberValue(value any) *float64 {
	var f float64
	switch n := value.(type) {
	case int64:
		f = float64(n)
	case float64:
		f = n
	case int:
		f = float64(n)
	}
	return &f
}
