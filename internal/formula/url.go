package formula

import (
	"encoding/json"
	"net/url"
)

// FactsParam is the query parameter carrying the full label data on the
// checkout success URL. The formula never travels through the webhook
// payload directly; it rides on the URL the processor stores.
const FactsParam = "supplement_facts"

// AppendFactsToURL attaches the URL-encoded supplement facts to a success
// URL. Returns the URL unchanged if the facts cannot be serialized.
func AppendFactsToURL(rawURL string, facts SupplementFacts) string {
	data, err := json.Marshal(facts)
	if err != nil {
		return rawURL
	}
	sep := "&"
	if u, err := url.Parse(rawURL); err == nil && u.RawQuery == "" {
		sep = "?"
	}
	return rawURL + sep + FactsParam + "=" + url.QueryEscape(string(data))
}

// FactsFromURL parses the supplement facts back out of a stored success
// URL. Returns nil when the URL carries none or the payload is malformed;
// callers treat that as "no label data", not an error.
func FactsFromURL(rawURL string) *SupplementFacts {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	param := u.Query().Get(FactsParam)
	if param == "" {
		return nil
	}
	var facts SupplementFacts
	if err := json.Unmarshal([]byte(param), &facts); err != nil {
		return nil
	}
	return &facts
}
