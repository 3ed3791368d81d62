package logging

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// Tail returns at most maxLines from the end of the log at path. A missing
// file yields no lines and no error.
func Tail(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	next, count := 0, 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		ring[next] = scanner.Text()
		next = (next + 1) % maxLines
		count = min(count+1, maxLines)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	// Oldest line sits at next once the ring has wrapped.
	start := 0
	if count == maxLines {
		start = next
	}
	lines := make([]string, count)
	for i := range lines {
		lines[i] = ring[(start+i)%maxLines]
	}
	return lines, nil
}
