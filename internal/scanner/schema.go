package scanner

import (
	"bytes"
	"encoding/json"

	"github.com/PuerkitoBio/goquery"
)

// ExpectedSchemaTypes is the fixed reference list of JSON-LD type names
// considered desirable for crawler visibility. Its order is the order of the
// missing_schemas list in the report.
var ExpectedSchemaTypes = []string{"Organization", "WebSite", "FAQPage", "HowTo", "Article"}

// ExtractSchemaTypes collects the distinct @type values declared across every
// <script type="application/ld+json"> block on the page. Malformed JSON
// blocks are skipped without disturbing the rest; a top-level array
// contributes each of its elements as a separate record. First-seen order is
// preserved and an empty body yields an empty set.
func ExtractSchemaTypes(body []byte) []string {
	types := []string{}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return types
	}
	seen := make(map[string]struct{})
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var value any
		if err := json.Unmarshal([]byte(sel.Text()), &value); err != nil {
			return
		}
		records, ok := value.([]any)
		if !ok {
			records = []any{value}
		}
		for _, record := range records {
			obj, ok := record.(map[string]any)
			if !ok {
				continue
			}
			switch declared := obj["@type"].(type) {
			case string:
				types = appendUnique(types, seen, declared)
			case []any:
				for _, item := range declared {
					if name, ok := item.(string); ok {
						types = appendUnique(types, seen, name)
					}
				}
			}
		}
	})
	return types
}

// MissingSchemas returns the names from expected that are absent from found,
// in expected order.
func MissingSchemas(found, expected []string) []string {
	set := make(map[string]struct{}, len(found))
	for _, name := range found {
		set[name] = struct{}{}
	}
	missing := []string{}
	for _, want := range expected {
		if _, ok := set[want]; !ok {
			missing = append(missing, want)
		}
	}
	return missing
}

func appendUnique(types []string, seen map[string]struct{}, name string) []string {
	if _, dup := seen[name]; dup {
		return types
	}
	seen[name] = struct{}{}
	return append(types, name)
}
