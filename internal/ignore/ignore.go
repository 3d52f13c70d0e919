// Package ignore loads the optional list of repository names excluded from a scan.
package ignore

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Set is the collection of repository names to skip. It is built once before
// a scan and read-only thereafter.
type Set map[string]struct{}

// Contains reports whether name is in the set.
func (s Set) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Load reads a newline-delimited list of repository names from path. Blank
// lines are skipped. An empty path or a missing file yields an empty set.
func Load(path string) (Set, error) {
	set := Set{}
	if path == "" {
		return set, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return nil, fmt.Errorf("failed to open ignore list %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ignore list %s: %w", path, err)
	}
	return set, nil
}
