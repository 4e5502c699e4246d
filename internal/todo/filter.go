package todo

import "fmt"

// Filter selects which subset of the collection is visible.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// Next cycles All -> Active -> Completed -> All.
func (f Filter) Next() Filter {
	return (f + 1) % 3
}

// ParseFilter maps a flag value to a Filter.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "all", "":
		return FilterAll, nil
	case "active":
		return FilterActive, nil
	case "completed":
		return FilterCompleted, nil
	}
	return FilterAll, fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}

// Visible projects the subset of items matching f, order preserved.
// The result is a fresh slice; the input is never mutated.
func Visible(items []Todo, f Filter) []Todo {
	out := make([]Todo, 0, len(items))
	for _, t := range items {
		switch f {
		case FilterActive:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
