// Package words holds the immutable word lists the game is played against:
// the ordered solutions list (indexed by day offset) and the extended set of
// words accepted as guesses. Lists are loaded once at startup and injected
// into the puzzle selector, keeping the core independent of file layout.
package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

// Embedded defaults so the game runs without any configuration.

//go:embed solutions.txt
var embeddedSolutions string

//go:embed allowed.txt
var embeddedAllowed string

// WordLength is the only word size the game supports.
const WordLength = 5

// WordListError reports an unusable word list.
type WordListError struct {
	Source string // "solutions" or "allowed", or a file path
	Err    error
}

func (e *WordListError) Error() string {
	return fmt.Sprintf("word list %s: %v", e.Source, e.Err)
}

func (e *WordListError) Unwrap() error { return e.Err }

// List is an immutable word-list handle: the day-indexed solutions plus the
// set of all submittable words (solutions included).
type List struct {
	solutions []string
	allowed   map[string]struct{}
}

// New builds a List from a solutions slice and extra allowed guesses. Words
// are normalized to lowercase; anything that is not five ASCII letters is
// rejected.
func New(solutions, extra []string) (*List, error) {
	l := &List{allowed: make(map[string]struct{}, len(solutions)+len(extra))}
	for _, w := range solutions {
		w = strings.ToLower(strings.TrimSpace(w))
		if !valid(w) {
			return nil, &WordListError{Source: "solutions", Err: fmt.Errorf("invalid word %q", w)}
		}
		l.solutions = append(l.solutions, w)
		l.allowed[w] = struct{}{}
	}
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if !valid(w) {
			return nil, &WordListError{Source: "allowed", Err: fmt.Errorf("invalid word %q", w)}
		}
		l.allowed[w] = struct{}{}
	}
	if len(l.solutions) == 0 {
		return nil, &WordListError{Source: "solutions", Err: fmt.Errorf("list is empty")}
	}
	return l, nil
}

// Embedded returns the List built from the lists compiled into the binary.
func Embedded() (*List, error) {
	return New(splitLines(embeddedSolutions), splitLines(embeddedAllowed))
}

// Load builds a List from optional file overrides, falling back to the
// embedded defaults for whichever path is empty.
func Load(solutionsPath, allowedPath string) (*List, error) {
	solutions := splitLines(embeddedSolutions)
	extra := splitLines(embeddedAllowed)

	if solutionsPath != "" {
		var err error
		if solutions, err = readLines(solutionsPath); err != nil {
			return nil, &WordListError{Source: solutionsPath, Err: err}
		}
	}
	if allowedPath != "" {
		var err error
		if extra, err = readLines(allowedPath); err != nil {
			return nil, &WordListError{Source: allowedPath, Err: err}
		}
	}
	return New(solutions, extra)
}

// SolutionCount returns the number of day-indexed solutions.
func (l *List) SolutionCount() int {
	return len(l.solutions)
}

// Solution returns the solution word for a day index. The caller is expected
// to range-check the index via the puzzle selector.
func (l *List) Solution(i int) string {
	return l.solutions[i]
}

// Allowed reports whether w may be submitted as a guess. Matching is
// case-insensitive.
func (l *List) Allowed(w string) bool {
	_, ok := l.allowed[strings.ToLower(w)]
	return ok
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w := strings.TrimSpace(line); w != "" {
			out = append(out, w)
		}
	}
	return out
}

func valid(w string) bool {
	if len(w) != WordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
