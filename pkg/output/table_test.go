package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTableFormatsRows tests column sizing and row formatting.
func TestTableFormatsRows(t *testing.T) {
	table := NewTable().
		AddColumn("NAME").
		AddColumn("CURRENT").
		AddColumn("LATEST")

	table.UpdateWidths("requests", "2.28.0", "2.31.0")
	table.UpdateWidths("fastapi", "0.120.2", "0.121.2")

	assert.Equal(t, "NAME      CURRENT  LATEST", table.HeaderRow())
	assert.Equal(t, "--------  -------  ------", table.SeparatorRow())
	assert.Equal(t, "requests  2.28.0   2.31.0", table.FormatRow("requests", "2.28.0", "2.31.0"))
	assert.Equal(t, "fastapi   0.120.2  0.121.2", table.FormatRow("fastapi", "0.120.2", "0.121.2"))
}

// TestTableMissingValues tests rows with fewer values than columns.
func TestTableMissingValues(t *testing.T) {
	table := NewTable().AddColumn("A").AddColumn("B")

	assert.Equal(t, "x", table.FormatRow("x"))
}

// TestTableExtraValuesIgnored tests that surplus values are dropped.
func TestTableExtraValuesIgnored(t *testing.T) {
	table := NewTable().AddColumn("A")
	table.UpdateWidths("only", "ignored")

	assert.Equal(t, "only", table.FormatRow("only", "ignored"))
}

// TestTableWideRunes tests width handling for wide characters.
func TestTableWideRunes(t *testing.T) {
	table := NewTable().AddColumn("NAME").AddColumn("V")
	table.UpdateWidths("请求库", "1")

	// The wide name occupies six display cells, so the second column
	// starts after six cells plus the separator.
	assert.Equal(t, "请求库  1", table.FormatRow("请求库", "1"))
	assert.Equal(t, "NAME    V", table.HeaderRow())
}
