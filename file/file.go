/*
File    : esmix/file/file.go
*/

// Package file implements the file I/O seam of the front end: it reads a
// source file fully into memory for the pipeline and writes the rendered
// output. Keeping the seam in one place leaves the pipeline itself free of
// operating-system concerns.
package file

import (
	"fmt"
	"io"
	"os"
)

// ReadSource reads the whole source file into memory and returns it as a
// string. The pipeline never re-reads the file; lexing, parsing, and
// resolution all work on this one string.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteOutput writes rendered program text to the given writer.
func WriteOutput(w io.Writer, text string) error {
	_, err := io.WriteString(w, text)
	return err
}
