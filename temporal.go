package topicviz

import (
	"bytes"
	"encoding/json"
	"strings"
)

// TemporalTable holds a temporal topic-distribution table as read from CSV.
// Columns preserves the source header order; each row maps column name to
// its raw cell value.
type TemporalTable struct {
	Columns []string
	Rows    []map[string]string
}

// TopicColumns returns the columns carrying per-topic weights, in header order.
func (t *TemporalTable) TopicColumns() []string {
	var cols []string
	for _, c := range t.Columns {
		if strings.HasPrefix(c, "Topic") {
			cols = append(cols, c)
		}
	}
	return cols
}

// MarshalJSON serializes the table as an array of row objects with keys in
// header order. The client derives topic ordering from key order, so rows
// must not be marshaled as Go maps, which would sort keys lexicographically.
func (t *TemporalTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range t.Rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, col := range t.Columns {
			if j > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(col)
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(row[col])
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
