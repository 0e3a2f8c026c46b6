package warnings

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWarnfWritesToConfiguredWriter tests routing warnings to a buffer.
func TestWarnfWritesToConfiguredWriter(t *testing.T) {
	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	defer restore()

	Warnf("Skipping %s: %s\n", "numpy", "not a direct dependency")

	assert.Equal(t, "Skipping numpy: not a direct dependency\n", buf.String())
}

// TestSetWarningWriterRestore tests that the restore function reinstates
// the previous writer.
func TestSetWarningWriterRestore(t *testing.T) {
	var first, second bytes.Buffer

	restoreFirst := SetWarningWriter(&first)
	defer restoreFirst()

	restoreSecond := SetWarningWriter(&second)
	Warnf("into second")
	restoreSecond()
	Warnf("into first")

	assert.Equal(t, "into second", second.String())
	assert.Equal(t, "into first", first.String())
}

// TestWarningWriter tests reading back the configured writer.
func TestWarningWriter(t *testing.T) {
	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	defer restore()

	assert.Equal(t, &buf, WarningWriter())
}
