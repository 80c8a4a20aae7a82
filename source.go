package topicviz

import (
	"regexp"
	"strconv"
	"strings"
)

// Method identifies the factorization method encoded in a source folder name.
type Method string

// Recognized factorization methods.
const (
	MethodNMTF Method = "nmtf"
	MethodPNMF Method = "pnmf"
)

// Upper returns the method in display form, e.g. "NMTF".
func (m Method) Upper() string {
	return strings.ToUpper(string(m))
}

// sourceNameRE matches <dataset>_with_pagerank_<method>_bpe_<topicCount>.
var sourceNameRE = regexp.MustCompile(`^(.+)_with_pagerank_(nmtf|pnmf)_bpe_(\d+)$`)

// Source describes one topic-modeling output folder. The descriptor is
// derived once from the folder name; TopicCount is later overwritten with
// the count resolved from the score document, which is authoritative.
type Source struct {
	Name       string `json:"name"` // folder name, e.g. "heart_failure_with_pagerank_nmtf_bpe_34"
	Path       string `json:"path"` // path to the folder, when known
	Dataset    string `json:"dataset"`
	Method     Method `json:"method"`
	TopicCount int    `json:"topicCount"`
}

// ParseSourceName parses a folder name into a Source descriptor.
// Returns EFORMAT if the name does not match the naming convention;
// it never guesses on a mismatch.
func ParseSourceName(name string) (*Source, error) {
	m := sourceNameRE.FindStringSubmatch(name)
	if m == nil {
		return nil, Errorf(EFORMAT, "folder name %q does not match <dataset>_with_pagerank_<method>_bpe_<N>", name)
	}

	count, err := strconv.Atoi(m[3])
	if err != nil {
		return nil, Errorf(EFORMAT, "topic count in folder name %q is not a valid integer", name)
	}

	return &Source{
		Name:       name,
		Dataset:    m[1],
		Method:     Method(m[2]),
		TopicCount: count,
	}, nil
}

// Slug returns the output directory name, e.g. "heart-failure-nmtf-34".
func (s *Source) Slug() string {
	return strings.ReplaceAll(s.Dataset, "_", "-") + "-" + string(s.Method) + "-" + strconv.Itoa(s.TopicCount)
}

// Title returns the dataset in display form, e.g. "Heart Failure".
func (s *Source) Title() string {
	words := strings.Split(s.Dataset, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
