package domain

import "strings"

// Category buckets dataset rows by file path. Buckets are not mutually
// exclusive: a path may match any number of them.
type Category struct {
	Name    string
	Matches func(path string) bool
}

// sourceExtensions is the fixed extension set that defines the Source Code
// category.
var sourceExtensions = []string{".py", ".cpp", ".java", ".js", ".ts", ".c"}

// Categories returns the four fixed report categories in display order.
func Categories() []Category {
	return []Category{
		{Name: "Source Code", Matches: isSourceCode},
		{Name: "Test Code", Matches: containsFold("test")},
		{Name: "README", Matches: containsFold("readme")},
		{Name: "LICENSE", Matches: containsFold("license")},
	}
}

// CountByCategory counts, per category, the discrepant records whose new
// path matches it. Every count is computed independently so overlapping
// records increment multiple categories.
func CountByCategory(records []DiffRecord) []CategoryCount {
	counts := make([]CategoryCount, 0, 4)
	for _, cat := range Categories() {
		n := 0
		for _, rec := range records {
			if rec.Discrepancy && cat.Matches(rec.NewPath) {
				n++
			}
		}
		counts = append(counts, CategoryCount{Name: cat.Name, Count: n})
	}
	return counts
}

func isSourceCode(path string) bool {
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func containsFold(needle string) func(string) bool {
	return func(path string) bool {
		return strings.Contains(strings.ToLower(path), needle)
	}
}
