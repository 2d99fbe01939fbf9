package entity

import "strings"

// AliasEntry pairs a numbered alias with its day, for display
type AliasEntry struct {
	Alias string
	Day   string
}

// AliasIndex maps short typeable keys to plan days
type AliasIndex struct {
	ToDay   map[string]string
	Entries []AliasEntry
}

// Lookup resolves a user supplied alias, ignoring case and surrounding spaces
func (a *AliasIndex) Lookup(key string) (string, bool) {
	day, ok := a.ToDay[strings.ToLower(strings.TrimSpace(key))]
	return day, ok
}
