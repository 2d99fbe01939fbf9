package workout

import (
	"fmt"

	"github.com/diegoclair/workout-reminder-bot/internal/domain"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
)

// BuildAliases assigns category+count keys to each day, e.g. "push2".
// The first day of a category is also reachable by the bare category name.
func BuildAliases(days []string) *entity.AliasIndex {
	counts := make(map[domain.Category]int)
	index := &entity.AliasIndex{
		ToDay: make(map[string]string),
	}

	for _, day := range days {
		category := Classify(day)
		counts[category]++

		alias := fmt.Sprintf("%s%d", category, counts[category])
		index.ToDay[alias] = day
		if counts[category] == 1 {
			index.ToDay[string(category)] = day
		}
		index.Entries = append(index.Entries, entity.AliasEntry{Alias: alias, Day: day})
	}

	return index
}

// ListedAliases returns what list-keys shows: numbered aliases first,
// then the bare pull/push/legs/cardio aliases that exist.
func ListedAliases(index *entity.AliasIndex) []entity.AliasEntry {
	out := make([]entity.AliasEntry, 0, len(index.Entries)+len(domain.ListedBareAliases))
	out = append(out, index.Entries...)
	for _, category := range domain.ListedBareAliases {
		if day, ok := index.ToDay[string(category)]; ok {
			out = append(out, entity.AliasEntry{Alias: string(category), Day: day})
		}
	}
	return out
}
