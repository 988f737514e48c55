package input

import (
	"fmt"
	"io"
	"os"
)

// Stdin is the path that reads standard input instead of a file.
const Stdin = "-"

// Read returns the whole puzzle input at path.
func Read(path string) (string, error) {
	if path == Stdin {
		return ReadFrom(os.Stdin, "stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return ReadFrom(f, path)
}

// ReadFrom reads all of r. name is used in errors.
func ReadFrom(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}
