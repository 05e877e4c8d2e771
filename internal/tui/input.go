// internal/tui/input.go
//
// Line-oriented prompts shared by the screens.

package tui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// One shared reader so type-ahead between prompts is not dropped.
var stdin = bufio.NewReader(os.Stdin)

// ReadInput reads a line of input from the user, trimmed.
func ReadInput(prompt string) (string, error) {
	fmt.Print(prompt)
	input, err := stdin.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadInputDefault reads a line; empty input takes def.
func ReadInputDefault(prompt, def string) (string, error) {
	s, err := ReadInput(fmt.Sprintf("%s [%s]: ", prompt, def))
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

// ReadInt prompts until an integer in [min, max] is entered; empty input
// takes def.
func ReadInt(prompt string, def, min, max int) (int, error) {
	for {
		s, err := ReadInput(fmt.Sprintf("%s [%d]: ", prompt, def))
		if err != nil {
			return 0, err
		}
		if s == "" {
			return def, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < min || n > max {
			fmt.Printf("Enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}

// ReadYesNo prompts for y/n; empty input takes def.
func ReadYesNo(prompt string, def bool) (bool, error) {
	hint := "Y/n"
	if !def {
		hint = "y/N"
	}
	for {
		s, err := ReadInput(fmt.Sprintf("%s [%s]: ", prompt, hint))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Println("Please answer y or n.")
	}
}

// ReadSecret reads a line without echoing it to the terminal (the
// pass-and-play secret, profile passphrases).
func ReadSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println() // newline after hidden input
	return strings.TrimSpace(string(b)), nil
}
