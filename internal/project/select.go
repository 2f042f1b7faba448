package project

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Choose presents a numbered list and returns the selected item. A single
// item is returned without prompting.
func Choose(r io.Reader, w io.Writer, prompt string, items []string) (string, error) {
	switch len(items) {
	case 0:
		return "", fmt.Errorf("nothing to choose from")
	case 1:
		return items[0], nil
	}

	fmt.Fprintf(w, "\n%s\n", prompt)
	for i, item := range items {
		fmt.Fprintf(w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(w, "Enter number [1-%d]: ", len(items))

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading selection: %w", err)
	}

	num, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || num < 1 || num > len(items) {
		return "", fmt.Errorf("invalid selection %q: choose 1-%d", strings.TrimSpace(line), len(items))
	}

	return items[num-1], nil
}
