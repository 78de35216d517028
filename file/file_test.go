/*
File    : esmix/file/file_test.go
*/
package file

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.js")
	err := os.WriteFile(path, []byte("var x = 1;\n"), 0644)
	assert.NoError(t, err)

	src, err := ReadSource(path)
	assert.NoError(t, err)
	assert.Equal(t, "var x = 1;\n", src)
}

func TestReadSource_Missing(t *testing.T) {
	_, err := ReadSource(filepath.Join(t.TempDir(), "missing.js"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing.js")
}

func TestWriteOutput(t *testing.T) {
	var buf bytes.Buffer
	err := WriteOutput(&buf, "/* Program */\n")
	assert.NoError(t, err)
	assert.Equal(t, "/* Program */\n", buf.String())
}
