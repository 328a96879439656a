package tournament

import (
	"fmt"
	"strings"
)

// Tournament is keyed by its unique name. Sheets only carry a number, so the
// import pipeline derives the name with DisplayName and a default year.
type Tournament struct {
	ID   int64
	Name string
	Year int
}

func (t Tournament) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("tournament name is required")
	}
	if t.Year <= 0 {
		return fmt.Errorf("tournament year must be positive")
	}
	return nil
}

// DisplayName is the placeholder name synthesized for a tournament known only
// by its sheet number.
func DisplayName(number int64) string {
	return fmt.Sprintf("Tournament %d", number)
}
