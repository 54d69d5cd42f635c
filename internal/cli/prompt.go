package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errQuit reports that the user asked to leave.
var errQuit = errors.New("quit")

// readLine reads a line from the reader, trimming line endings.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptYesNo prompts for a yes/no response with a default.
func promptYesNo(reader *bufio.Reader, out io.Writer, label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	for {
		fmt.Fprintf(out, "%s [%s]: ", label, suffix)
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return false, err
		}
		line = strings.TrimSpace(strings.ToLower(line))
		if line == "" {
			return defaultYes, nil
		}
		switch line {
		case "y", "yes", "ya":
			return true, nil
		case "n", "no", "tidak":
			return false, nil
		default:
			if err == io.EOF {
				return false, fmt.Errorf("invalid response %q", line)
			}
			fmt.Fprintln(out, "Jawab y atau n.")
		}
	}
}

// promptOption asks for one of options; an empty line selects def.
// q always quits. End of input returns io.EOF.
func promptOption(reader *bufio.Reader, out io.Writer, label string, options []string, def string) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(out, "%s [%s]: ", label, def)
		} else {
			fmt.Fprintf(out, "%s: ", label)
		}
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return "", err
		}
		line = strings.ToLower(strings.TrimSpace(line))
		switch {
		case line == "" && err == io.EOF:
			return "", io.EOF
		case line == "q":
			return "", errQuit
		case line == "" && def != "":
			return def, nil
		}
		for _, option := range options {
			if line == option {
				return option, nil
			}
		}
		if err == io.EOF {
			return "", io.EOF
		}
		if line != "" {
			fmt.Fprintf(out, "Pilihan tidak dikenal: %s\n", line)
		}
	}
}
