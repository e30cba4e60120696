package identity

import "strings"

const bearerPrefix = "Bearer "

// BearerToken locates an authorization header in the given header map
// (case-insensitive key match) and extracts its bearer token. The value must match
// `Bearer <token>` exactly: one space, non-empty token. A missing prefix or an empty
// token is reported as absent, not as an error; a malformed credential and no
// credential are indistinguishable to callers.
//
// The header map uses the net/http shape (canonical or not); only the first value of
// a matching key is considered.
func BearerToken(headers map[string][]string) (string, bool) {
	for key, values := range headers {
		if !strings.EqualFold(key, "Authorization") || len(values) == 0 {
			continue
		}
		token, ok := strings.CutPrefix(values[0], bearerPrefix)
		if !ok || token == "" || strings.ContainsRune(token, ' ') {
			return "", false
		}
		return token, true
	}
	return "", false
}
