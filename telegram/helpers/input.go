package helpers

import (
	"strconv"
	"strings"
)

// ParseInt parses a trimmed decimal integer typed by a user during a
// conversation step. It returns the value and true on success.
func ParseInt(input string) (int, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
