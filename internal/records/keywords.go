package records

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// DefaultCategory is assigned when no keyword matches.
const DefaultCategory = "others"

// baseCategoryOrder fixes the precedence of the well-known categories.
// Earlier entries win when keywords from several categories match the same
// item. Categories present in the map but not listed here are appended in
// sorted order; "others" always goes last.
var baseCategoryOrder = []string{
	"food",
	"grocery",
	"utilities",
	"broadband",
	"online shopping",
	"online purchases",
	"Entertainment",
	"Transport",
	"Private Hire",
	"Equipment",
	"Toys",
	DefaultCategory,
}

// KeywordMap maps a category name to its uppercase keyword substrings.
type KeywordMap map[string][]string

// Classifier assigns categories to item descriptions by keyword substring
// match, scanning categories in a fixed order.
type Classifier struct {
	Keywords KeywordMap
	Order    []string
}

// NewClassifier builds a classifier over the given map. A nil map yields a
// classifier that answers DefaultCategory for everything.
func NewClassifier(m KeywordMap) *Classifier {
	if m == nil {
		m = KeywordMap{}
	}
	return &Classifier{Keywords: m, Order: BuildCategoryOrder(m)}
}

// Classify returns the first category in declared order with a keyword
// contained in the uppercased item, or DefaultCategory.
func (c *Classifier) Classify(item string) string {
	upper := strings.ToUpper(item)
	for _, category := range c.Order {
		for _, keyword := range c.Keywords[category] {
			if keyword != "" && strings.Contains(upper, keyword) {
				return category
			}
		}
	}
	return DefaultCategory
}

// BuildCategoryOrder derives the scan order for the configured categories:
// the base order filtered to configured keys, then unknown keys sorted,
// with DefaultCategory always present and last.
func BuildCategoryOrder(m KeywordMap) []string {
	var order []string
	seen := map[string]bool{}
	for _, category := range baseCategoryOrder {
		if _, ok := m[category]; ok {
			order = append(order, category)
			seen[category] = true
		}
	}
	var extras []string
	for category := range m {
		if !seen[category] && category != DefaultCategory {
			extras = append(extras, category)
		}
	}
	sort.Strings(extras)
	order = append(order, extras...)
	if !contains(order, DefaultCategory) {
		order = append(order, DefaultCategory)
	}
	return order
}

// LoadKeywordMap reads a category-to-keywords JSON object from disk.
// Keywords are trimmed, uppercased and de-blanked; entries whose value is
// not an array are ignored. Errors are returned so the caller can fall
// back to an empty map without failing the load.
func LoadKeywordMap(path string) (KeywordMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keyword map: %w", err)
	}
	return ParseKeywordMap(data)
}

// ParseKeywordMap decodes and normalizes keyword map JSON.
func ParseKeywordMap(data []byte) (KeywordMap, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse keyword map: %w", err)
	}
	m := KeywordMap{}
	for category, value := range raw {
		values, ok := value.([]any)
		if !ok {
			continue
		}
		var keywords []string
		for _, v := range values {
			keyword := strings.ToUpper(strings.TrimSpace(fmt.Sprint(v)))
			if keyword != "" {
				keywords = append(keywords, keyword)
			}
		}
		m[category] = keywords
	}
	return m, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
