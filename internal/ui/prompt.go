// internal/ui/prompt.go
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Interactive reports whether stdin is attached to a terminal. Prompts are
// only meaningful when it returns true; callers should require --yes otherwise.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Confirm asks a y/N question and returns true only on an explicit yes.
func Confirm(r io.Reader, label string) (bool, error) {
	fmt.Printf("  ? %s [y/N]: ", label)

	input, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(input))
	return answer == "y" || answer == "yes", nil
}

// Choose presents an enumerated list and reads a 1-based selection. An empty
// or out-of-range answer is an error, not a re-prompt.
func Choose(r io.Reader, label string, options []string) (int, error) {
	fmt.Printf("\n  %s\n", label)
	for i, opt := range options {
		fmt.Printf("    %d) %s\n", i+1, opt)
	}
	fmt.Printf("  ? Selection [1-%d]: ", len(options))

	input, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, err
	}
	answer := strings.TrimSpace(input)
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(options) {
		return 0, fmt.Errorf("invalid selection %q", answer)
	}
	return n - 1, nil
}
