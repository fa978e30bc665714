package game

// Keyboard tracks the best-known state of every letter across all submitted
// guesses. States only ever improve: once a letter is Correct it stays
// Correct no matter what later guesses reveal.
type Keyboard struct {
	states [26]LetterState
}

// Observe merges a newly scored state for ch into the keyboard.
func (k *Keyboard) Observe(ch byte, s LetterState) {
	i := int(ch - 'A')
	if i < 0 || i >= 26 {
		return
	}
	k.states[i] = k.states[i].Max(s)
}

// State returns the aggregated state for ch ('A'..'Z').
func (k *Keyboard) State(ch byte) LetterState {
	i := int(ch - 'A')
	if i < 0 || i >= 26 {
		return StateUnknown
	}
	return k.states[i]
}
