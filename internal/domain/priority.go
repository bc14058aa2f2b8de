package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Priority ranks how urgent a task is. It is persisted as an integer so
// ordering by priority follows Low < Medium < High.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// DefaultPriority is assigned to tasks created without an explicit priority.
const DefaultPriority = PriorityMedium

var priorityNames = map[Priority]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
}

// String returns the display name of the priority.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// IsValid reports whether p is one of the defined priorities.
func (p Priority) IsValid() bool {
	_, ok := priorityNames[p]
	return ok
}

// ParsePriority accepts a case-insensitive priority name ("low", "Medium")
// or its numeric value ("0".."2").
func ParsePriority(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	for p, name := range priorityNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Priority(n).IsValid() {
		return Priority(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

// MarshalJSON encodes the priority as its name.
func (p Priority) MarshalJSON() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPriority, int(p))
	}
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes either a priority name or a number.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := ParsePriority(name)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPriority, string(data))
	}
	if !Priority(n).IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidPriority, n)
	}
	*p = Priority(n)
	return nil
}
