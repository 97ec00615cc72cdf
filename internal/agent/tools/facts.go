package tools

import (
	"fmt"
	"os"
	"strings"
)

// ReadFacts loads a static text file such as the hotel facts or the local
// activities list. An empty path yields an empty text.
func ReadFacts(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read facts %s: %w", path, err)
	}
	return strings.TrimSpace(string(b)), nil
}
