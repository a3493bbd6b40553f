package dal

// A RawRow maps result-set field aliases to the raw values the database
// returned for one query row.  For a group-concatenated column the value under
// the column's primary alias is itself an encoded multi-row, multi-field
// string that the aggregation's decode step pulls back apart.
type RawRow map[string]interface{}

func (self RawRow) Get(alias string) interface{} {
	if v, ok := self[alias]; ok {
		return v
	}

	return nil
}

func (self RawRow) GetString(alias string) string {
	if v := self.Get(alias); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}

	return ``
}

func (self RawRow) Has(alias string) bool {
	_, ok := self[alias]
	return ok
}
