package keys

import "strings"

// MatchesIdentifier reports whether an extracted identifier equals any
// known representation of the target. This is the preferred, exact path.
func (f Formats) MatchesIdentifier(id string) bool {
	if id == "" {
		return false
	}
	for _, repr := range f.all() {
		if repr != "" && repr == id {
			return true
		}
	}
	return false
}

// MatchesLoose reports whether any representation of the target appears as
// a substring of a stringified form of a decoded message. It exists because
// source messages do not reliably present the device identifier under one
// field name. A short representation can collide with unrelated encoded
// bytes; callers use this only after MatchesIdentifier fails.
func (f Formats) MatchesLoose(serialized string) bool {
	if serialized == "" {
		return false
	}
	for _, repr := range f.all() {
		if repr != "" && strings.Contains(serialized, repr) {
			return true
		}
	}
	return false
}

func (f Formats) all() [5]string {
	return [5]string{f.Original, f.RawBase58, f.Hex, f.Base64, f.Base58Check}
}
