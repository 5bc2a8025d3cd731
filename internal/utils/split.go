package utils

import (
	"errors"
	"fmt"

	"github.com/kballard/go-shellquote"
)

// SplitStringIntoCommandAndArguments parses an interactive command
// line into a command name, key, and value. Quoting follows shell
// rules, so values with spaces can be written as insert city "new york".
func SplitStringIntoCommandAndArguments(line string) (cmd, key, value string, err error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return "", "", "", err
	}

	if len(words) == 0 {
		return "", "", "", errors.New("empty command")
	}
	if len(words) > 3 {
		return "", "", "", fmt.Errorf("too many arguments for %q", words[0])
	}

	cmd = words[0]
	if len(words) > 1 {
		key = words[1]
	}
	if len(words) > 2 {
		value = words[2]
	}

	return cmd, key, value, nil
}
