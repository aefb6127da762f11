package domain

import "fmt"

// SearchCriteria filters items. Every non-nil field becomes one predicate and
// all predicates are AND-combined. String matches are exact and
// case-sensitive; range bounds are inclusive.
type SearchCriteria struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Type     *string `json:"type,omitempty"`
	MinLevel *int    `json:"min_level,omitempty"`
	MaxLevel *int    `json:"max_level,omitempty"`
	MinValue *int    `json:"min_value,omitempty"`
	MaxValue *int    `json:"max_value,omitempty"`
	MinStock *int    `json:"min_stock,omitempty"`
	MaxStock *int    `json:"max_stock,omitempty"`
}

// IsEmpty reports whether no filter was supplied.
func (c SearchCriteria) IsEmpty() bool {
	return c.Name == nil && c.Category == nil && c.Type == nil &&
		c.MinLevel == nil && c.MaxLevel == nil &&
		c.MinValue == nil && c.MaxValue == nil &&
		c.MinStock == nil && c.MaxStock == nil
}

// Validate rejects inverted ranges.
func (c SearchCriteria) Validate() error {
	if err := checkRange(ColumnLevel, c.MinLevel, c.MaxLevel); err != nil {
		return err
	}
	if err := checkRange(ColumnValue, c.MinValue, c.MaxValue); err != nil {
		return err
	}
	return checkRange(ColumnStock, c.MinStock, c.MaxStock)
}

// Matches reports whether item satisfies every supplied predicate.
func (c SearchCriteria) Matches(item MagicItem) bool {
	if c.Name != nil && item.Name != *c.Name {
		return false
	}
	if c.Category != nil && (item.Category == nil || *item.Category != *c.Category) {
		return false
	}
	if c.Type != nil && (item.Type == nil || *item.Type != *c.Type) {
		return false
	}
	if !inRange(item.Level, c.MinLevel, c.MaxLevel) {
		return false
	}
	if !inRange(item.Value, c.MinValue, c.MaxValue) {
		return false
	}
	stock := item.Stock
	return inRange(&stock, c.MinStock, c.MaxStock)
}

func checkRange(field string, min, max *int) error {
	if min != nil && max != nil && *min > *max {
		return fmt.Errorf("%w: min_%s %d is greater than max_%s %d", ErrInvalidInput, field, *min, field, *max)
	}
	return nil
}

// inRange mirrors SQL semantics: a NULL column never satisfies a bound.
func inRange(v, min, max *int) bool {
	if min == nil && max == nil {
		return true
	}
	if v == nil {
		return false
	}
	if min != nil && *v < *min {
		return false
	}
	if max != nil && *v > *max {
		return false
	}
	return true
}
