package formats

import (
	"sort"
	"strings"
)

// Count is one row of a frequency table.
type Count struct {
	Key   string
	Count int
}

// MatchesFile reports whether expr appears in the file's name, its license or
// any of its types. Matching ignores case.
func MatchesFile(f File, expr string) bool {
	return containsAny(expr, append([]string{f.Name, f.License}, f.Types...)...)
}

func MatchesPackage(p Package, expr string) bool {
	return containsAny(expr, p.Name, p.SPDXID, p.Version, p.License)
}

func MatchesRelationship(r Relationship, expr string) bool {
	return containsAny(expr, r.Source, r.Type, r.Target)
}

func containsAny(expr string, values ...string) bool {
	expr = strings.ToLower(expr)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), expr) {
			return true
		}
	}

	return false
}

func LicenseCounts(files []File) []Count {
	counts := make(map[string]int)
	for _, f := range files {
		counts[f.License]++
	}

	return sortedCounts(counts)
}

func TypeCounts(files []File) []Count {
	counts := make(map[string]int)
	for _, f := range files {
		for _, t := range f.Types {
			counts[t]++
		}
	}

	return sortedCounts(counts)
}

// sortedCounts orders by descending count, then by key.
func sortedCounts(counts map[string]int) []Count {
	out := make([]Count, 0, len(counts))
	for k, v := range counts {
		out = append(out, Count{Key: k, Count: v})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Key < out[j].Key
	})

	return out
}
