package placeholder

import "strings"

// queryString joins "<param>=<payload>" pairs with '&'. Neither params
// nor payload are escaped.
func queryString(params []string, payload string) string {
	pairs := make([]string, len(params))
	for i, param := range params {
		pairs[i] = param + "=" + payload
	}

	return strings.Join(pairs, "&")
}

// uniqueKeys returns params without duplicates. Every key keeps the
// position of its first occurrence.
func uniqueKeys(params []string) []string {
	seen := make(map[string]struct{}, len(params))
	keys := make([]string, 0, len(params))

	for _, param := range params {
		if _, ok := seen[param]; ok {
			continue
		}
		seen[param] = struct{}{}
		keys = append(keys, param)
	}

	return keys
}
