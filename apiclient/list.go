package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeList unmarshals a list payload into out (a pointer to a slice). Both
// `[...]` and `{"results": [...]}` are accepted; a missing or null results
// field decodes as an empty list.
func DecodeList(data []byte, out any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty list payload")
	}

	switch trimmed[0] {
	case '[':
		return json.Unmarshal(trimmed, out)
	case '{':
		var page struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return err
		}
		if len(page.Results) == 0 || string(page.Results) == "null" {
			return json.Unmarshal([]byte("[]"), out)
		}
		return json.Unmarshal(page.Results, out)
	default:
		return fmt.Errorf("unexpected list payload starting with %q", trimmed[0])
	}
}
