package manifest

import (
	"fmt"
	"sort"
)

// Edit replaces one byte span of the manifest with new text.
//
// Fields:
//   - Start: Absolute byte offset where the replacement begins
//   - End: Absolute byte offset one past the end of the replaced span
//   - Text: Replacement text
type Edit struct {
	Start int
	End   int
	Text  string
}

// Apply returns a copy of the manifest content with all edits applied.
//
// It performs the following operations:
//   - Step 1: Validate every edit span against the content bounds
//   - Step 2: Reject overlapping edits
//   - Step 3: Apply edits back-to-front so earlier offsets stay valid
//
// The receiver's Raw content is not modified; callers decide whether the
// result is written to disk.
//
// Parameters:
//   - edits: Spans to replace; order does not matter
//
// Returns:
//   - []byte: New content with edits applied
//   - error: When an edit is out of bounds or edits overlap
func (m *Manifest) Apply(edits []Edit) ([]byte, error) {
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	for i, edit := range sorted {
		if edit.Start < 0 || edit.End > len(m.Raw) || edit.Start > edit.End {
			return nil, fmt.Errorf("edit span [%d:%d] out of bounds", edit.Start, edit.End)
		}
		if i > 0 && edit.Start < sorted[i-1].End {
			return nil, fmt.Errorf("overlapping edits at offset %d", edit.Start)
		}
	}

	result := make([]byte, len(m.Raw))
	copy(result, m.Raw)
	for i := len(sorted) - 1; i >= 0; i-- {
		edit := sorted[i]
		result = append(result[:edit.Start], append([]byte(edit.Text), result[edit.End:]...)...)
	}

	return result, nil
}
