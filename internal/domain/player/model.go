package player

import (
	"fmt"
	"strings"
	"unicode"
)

// Player is an identity entity matched by name during imports. The style
// fields are optional free-text classifiers and may stay empty forever.
type Player struct {
	ID           int64
	Name         string
	PlayingRole  string
	BattingStyle string
	BowlingStyle string
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	return nil
}

// CleanName collapses internal whitespace runs, trims, and title-cases each
// word so spelling variants across spreadsheet exports collapse to one key:
// "  ms dhoni", "MS   Dhoni" and "Ms Dhoni" all become "Ms Dhoni".
func CleanName(raw string) string {
	words := strings.Fields(raw)
	for i, word := range words {
		words[i] = titleWord(word)
	}
	return strings.Join(words, " ")
}

func titleWord(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
