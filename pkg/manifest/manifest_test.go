package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/ruffyt/ruffyt/pkg/errors"
)

const samplePyproject = `[project]
name = "demo"
version = "0.1.0"
dependencies = [
    "fastapi==0.120.2",
    "uvicorn[standard]>=0.30",
    "requests>=2.0,<3.0",
]

[tool.pytest.ini_options]
addopts = "-q"
`

// writeManifest is a test helper that writes a pyproject.toml into dir.
func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadParsesDeclarationOrder tests loading a valid manifest.
//
// It verifies:
//   - Specifiers are keyed by normalized name in declaration order
//   - Version spans point at the exact bytes in the file
func TestLoadParsesDeclarationOrder(t *testing.T) {
	path := writeManifest(t, t.TempDir(), samplePyproject)

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"fastapi", "uvicorn", "requests"}, m.Specifiers.Keys())

	value, ok := m.Specifiers.Get("requests")
	require.True(t, ok)
	spec := value.(Specifier)
	floor := spec.FloorClause()
	require.NotNil(t, floor)
	assert.Equal(t, "2.0", string(m.Raw[floor.VersionStart:floor.VersionEnd]))
}

// TestLoadExtrasEntrySpans tests that a bracketed extras list inside a
// quoted entry does not end the dependency block early.
//
// It verifies:
//   - All three entries survive the block scan, including those after
//     the extras entry
//   - The extras entry's floor clause points at the exact version bytes
func TestLoadExtrasEntrySpans(t *testing.T) {
	path := writeManifest(t, t.TempDir(), samplePyproject)

	m, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"fastapi", "uvicorn", "requests"}, m.Specifiers.Keys())

	value, ok := m.Specifiers.Get("uvicorn")
	require.True(t, ok)
	spec := value.(Specifier)
	assert.Equal(t, "uvicorn", spec.Name)
	assert.Equal(t, "uvicorn[standard]>=0.30", spec.Raw)

	floor := spec.FloorClause()
	require.NotNil(t, floor)
	assert.Equal(t, "0.30", string(m.Raw[floor.VersionStart:floor.VersionEnd]))

	value, ok = m.Specifiers.Get("requests")
	require.True(t, ok)
	requests := value.(Specifier)
	assert.Equal(t, "requests>=2.0,<3.0", string(m.Raw[requests.Start:requests.Start+len(requests.Raw)]))
}

// TestLoadCommentInsideDependencyBlock tests that a trailing comment,
// even one containing brackets, does not confuse the block scan.
func TestLoadCommentInsideDependencyBlock(t *testing.T) {
	content := "[project]\nname = \"demo\"\ndependencies = [\n    \"flask==2.0.0\", # see ticket [ops-42]\n]\n"
	path := writeManifest(t, t.TempDir(), content)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"flask"}, m.Specifiers.Keys())
}

// TestLoadMissingFile tests loading a nonexistent manifest.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsManifestError(err))
}

// TestLoadInvalidTOML tests loading a file that is not valid TOML.
func TestLoadInvalidTOML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[project\ndependencies = [")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsManifestError(err))
}

// TestLoadMissingDependenciesBlock tests a manifest without a dependency block.
func TestLoadMissingDependenciesBlock(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[project]\nname = \"demo\"\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsManifestError(err))
	assert.Contains(t, err.Error(), "dependencies")
}

// TestLoadEmptyDependencies tests a manifest with an empty dependency list.
func TestLoadEmptyDependencies(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[project]\nname = \"demo\"\ndependencies = []\n")
	m, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, m.Specifiers.Keys())
}

// TestLoadDuplicateDependency tests rejection of duplicate declarations.
//
// Names are compared in normalized form, so "Flask" and "flask" collide.
func TestLoadDuplicateDependency(t *testing.T) {
	content := "[project]\nname = \"demo\"\ndependencies = [\n    \"Flask==2.0.0\",\n    \"flask==2.0.1\",\n]\n"
	path := writeManifest(t, t.TempDir(), content)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

// TestLoadSkipsForeignDependencyArrays tests that a dependencies key in
// another table does not shadow the [project] block.
func TestLoadSkipsForeignDependencyArrays(t *testing.T) {
	content := `[tool.custom]
dependencies = [
    "not-a-direct-dep==1.0",
]

[project]
name = "demo"
dependencies = [
    "flask==2.0.0",
]
`
	path := writeManifest(t, t.TempDir(), content)
	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"flask"}, m.Specifiers.Keys())
	value, _ := m.Specifiers.Get("flask")
	spec := value.(Specifier)
	assert.Equal(t, "flask==2.0.0", string(m.Raw[spec.Start:spec.Start+len(spec.Raw)]))
}

// TestFindProjectRootWalksUpward tests discovery from a nested directory.
func TestFindProjectRootWalksUpward(t *testing.T) {
	tmpDir := t.TempDir()
	writeManifest(t, tmpDir, samplePyproject)
	nested := filepath.Join(tmpDir, "src", "demo")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	root, err := FindProjectRoot(nested)
	require.NoError(t, err)

	// Resolve symlinks so the comparison holds on systems where the temp
	// dir is behind a symlink.
	wantRoot, err := filepath.EvalSymlinks(tmpDir)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, wantRoot, gotRoot)
}

// TestFindProjectRootNotFound tests discovery failure outside a project.
func TestFindProjectRootNotFound(t *testing.T) {
	_, err := FindProjectRoot(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), FileName)
}
