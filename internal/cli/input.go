package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// readInput reads the file named by args[0], or stdin when there is no
// argument or the argument is "-". Line endings are normalized to "\n".
func readInput(args []string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
	}
	return normalizeNewlines(string(data)), nil
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// splitStartLine consumes a leading line made only of digits and returns it
// as the starting comment number along with the remaining text. Full-width
// digits are accepted.
func splitStartLine(text string) (int, string, bool) {
	trimmed := strings.TrimSpace(text)
	first, rest, _ := strings.Cut(trimmed, "\n")
	first = width.Narrow.String(strings.TrimSpace(first))
	if first == "" {
		return 0, text, false
	}
	for _, r := range first {
		if r < '0' || r > '9' {
			return 0, text, false
		}
	}
	n, err := strconv.Atoi(first)
	if err != nil {
		return 0, text, false
	}
	return n, rest, true
}
