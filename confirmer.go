package linkprune

// Confirmer obtains a yes/no decision from the user before a destructive
// action. The engine's contract ends at producing a Report; removing links
// from the document happens only after an affirmative answer here.
type Confirmer interface {
	// Confirm presents the prompt and returns the user's choice.
	Confirm(prompt string) (bool, error)
}
