package fundcalc

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// DecodeSnapshot decodes into v the record selected by the JSONPath
// expression path in the JSON document read from r.
//
// The calculators never fetch anything themselves; snapshots are responses
// already obtained from the backend, usually wrapped in an envelope like
// {"success":true,"data":{...}}, hence the path ("$.data"). An empty path
// selects the whole document.
func DecodeSnapshot(r io.Reader, path string, v any) error {
	dec := json.NewDecoder(r)
	dec.UseNumber() // keep amounts exact until they reach decimal
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("error decoding snapshot: %w", err)
	}

	if path != "" && path != "$" {
		jval, err := jsonpath.Get(path, doc)
		if err != nil {
			return fmt.Errorf("error selecting %q: %w", path, err)
		}
		// jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
		// a wildcard or filter yields a list, in which case the first match is kept.
		if jlist, ok := jval.([]any); ok && isWildcard(path) {
			if len(jlist) == 0 {
				return fmt.Errorf("no record matches %q", path)
			}
			jval = jlist[0]
		}
		doc = jval
	}
	if doc == nil {
		return fmt.Errorf("no record at %q", path)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error re-encoding %q: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("error decoding record at %q: %w", path, err)
	}
	return nil
}

// isWildcard reports whether path can select several values.
func isWildcard(path string) bool {
	for _, c := range path {
		switch c {
		case '*', '?', ':':
			return true
		}
	}
	return false
}
