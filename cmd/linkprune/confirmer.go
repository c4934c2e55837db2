package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/khartman/linkprune"
)

var _ linkprune.Confirmer = (*stdinConfirmer)(nil)

// stdinConfirmer asks on the terminal and reads a y/n answer.
type stdinConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (c *stdinConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprint(c.out, prompt)

	scanner := bufio.NewScanner(c.in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, linkprune.Errorf(linkprune.EINTERNAL, "cannot read answer: %v", err)
		}
		return false, nil
	}

	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}
