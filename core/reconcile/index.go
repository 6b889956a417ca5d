package reconcile

// Index maps source identifiers to destination records.
// It is built once per run and read-only afterwards.
type Index map[int64]Record

// BuildIndex builds the lookup index from the destination record sequence.
// Records without an appid property are skipped: they cannot be matched to
// any source item. Duplicate appids keep the last record in sequence order.
func BuildIndex(records []Record) Index {
	index := make(Index, len(records))
	for _, rec := range records {
		if !rec.HasAppID {
			continue
		}
		index[rec.AppID] = rec
	}
	return index
}
