package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read returns the last n lines of the file at path that contain match. An
// empty match keeps every line and n <= 0 returns all of them. A missing file
// yields no lines and no error.
func Read(path string, n int, match string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Tail(file, n, match)
}

// Tail is Read over an arbitrary reader.
func Tail(r io.Reader, n int, match string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var all []string
	var ring []string
	if n > 0 {
		ring = make([]string, n)
	}
	count, idx := 0, 0

	for scanner.Scan() {
		line := scanner.Text()
		if match != "" && !strings.Contains(line, match) {
			continue
		}
		if n <= 0 {
			all = append(all, line)
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % n
		if count < n {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if n <= 0 {
		return all, nil
	}
	lines := make([]string, count)
	if count == n {
		for i := range count {
			lines[i] = ring[(idx+i)%n]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}
