// Package namelist reads newline-delimited territory name lists. Each
// non-blank line, after trimming, is one input name; file order is
// preserved because matching processes names in input order.
package namelist

import (
	"bufio"
	"os"
	"strings"

	"github.com/cartomesh/atlasmap/pkg/errors"
)

// Load reads names from the file at path.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	// Territory names are short, but leave room for unusually long lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return names, nil
}
