package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerWidth = 60

var ruleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// Banner writes sql to w between two horizontal rules. It is the decoration used by the
// Debug methods of the query builders and is not part of the rendered SQL.
//
// Example output:
//
//	------------------------------------------------------------
//	SELECT id
//	FROM users
//	------------------------------------------------------------
func Banner(w io.Writer, sql string) error {
	rule := ruleStyle.Render(strings.Repeat("-", bannerWidth))
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", rule, sql, rule)
	return err
}
