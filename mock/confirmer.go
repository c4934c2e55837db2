package mock

import "github.com/khartman/linkprune"

var _ linkprune.Confirmer = (*Confirmer)(nil)

// Confirmer is a mock implementation of linkprune.Confirmer.
type Confirmer struct {
	ConfirmFn func(prompt string) (bool, error)
}

func (c *Confirmer) Confirm(prompt string) (bool, error) {
	return c.ConfirmFn(prompt)
}
