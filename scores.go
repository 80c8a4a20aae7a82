package topicviz

import "encoding/json"

// ScoreShape identifies which of the two recognized score document schemas
// a document carries.
type ScoreShape int

// Score document shapes, resolved once at parse time.
const (
	ShapeUnknown   ScoreShape = iota
	ShapeRelevance            // top-level "relevance": topic key -> word -> score
	ShapeCoherence            // "gensim"."c_v_per_topic": topic key -> coherence score
)

// GensimScores holds gensim coherence metrics as they appear in the source
// JSON. Values pass through unmodified.
type GensimScores struct {
	CVPerTopic map[string]float64 `json:"c_v_per_topic"`
	CVAverage  float64            `json:"c_v_average"`
}

// ScoreDocument is the normalized form of a per-topic score file. Exactly
// one shape is resolved at load time; relevance takes precedence when both
// recognized keys are present.
type ScoreDocument struct {
	Shape     ScoreShape
	Relevance map[string]map[string]float64
	Gensim    *GensimScores
}

// ParseScoreDocument parses raw JSON into a ScoreDocument and resolves its
// shape. Returns ENODATA if the payload is not valid JSON.
func ParseScoreDocument(data []byte) (*ScoreDocument, error) {
	var payload struct {
		Relevance map[string]map[string]float64 `json:"relevance"`
		Gensim    *GensimScores                 `json:"gensim"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, Errorf(ENODATA, "score document is not valid JSON: %v", err)
	}

	doc := &ScoreDocument{
		Relevance: payload.Relevance,
		Gensim:    payload.Gensim,
	}

	// Presence of the key decides the shape, even when the mapping is empty.
	switch {
	case payload.Relevance != nil:
		doc.Shape = ShapeRelevance
	case payload.Gensim != nil && payload.Gensim.CVPerTopic != nil:
		doc.Shape = ShapeCoherence
	default:
		doc.Shape = ShapeUnknown
	}

	return doc, nil
}

// TopicCount derives the topic count from the resolved shape. Returns 0 for
// unknown shapes; callers must treat 0 as missing data.
func (d *ScoreDocument) TopicCount() int {
	switch d.Shape {
	case ShapeRelevance:
		return len(d.Relevance)
	case ShapeCoherence:
		return len(d.Gensim.CVPerTopic)
	default:
		return 0
	}
}

// AverageCoherence returns the gensim c_v average when present, else 0.
func (d *ScoreDocument) AverageCoherence() float64 {
	if d.Gensim == nil {
		return 0
	}
	return d.Gensim.CVAverage
}
