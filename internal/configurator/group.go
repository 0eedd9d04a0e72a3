package configurator

import (
	"strings"

	"github.com/matbaa/storefront-service/internal/model"
)

// OptionGroup is a named cluster of mutually exclusive values derived
// from the flat option row list.
type OptionGroup struct {
	Name string
	Rows []model.OptionRow
}

// GroupOptions groups rows by trimmed option_name, preserving the order
// in which group names first appear. Rows with an empty name are dropped.
func GroupOptions(rows []model.OptionRow) []OptionGroup {
	var out []OptionGroup
	index := map[string]int{}

	for _, row := range rows {
		name := strings.TrimSpace(row.OptionName)
		if name == "" {
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, OptionGroup{Name: name})
		}
		out[i].Rows = append(out[i].Rows, row)
	}
	return out
}

// Required reports whether any member row flags the group as required.
func (g OptionGroup) Required() bool {
	for _, row := range g.Rows {
		if row.IsRequired {
			return true
		}
	}
	return false
}

// RequiredGroups returns required group names in schema order.
func RequiredGroups(groups []OptionGroup) []string {
	var out []string
	for _, g := range groups {
		if g.Required() {
			out = append(out, g.Name)
		}
	}
	return out
}

// findRow resolves a (group, value) pair to its schema row by trimmed
// exact match, nil when the schema has no such row.
func findRow(rows []model.OptionRow, group, value string) *model.OptionRow {
	group = strings.TrimSpace(group)
	value = strings.TrimSpace(value)
	for i := range rows {
		if strings.TrimSpace(rows[i].OptionName) == group &&
			strings.TrimSpace(rows[i].OptionValue) == value {
			return &rows[i]
		}
	}
	return nil
}
