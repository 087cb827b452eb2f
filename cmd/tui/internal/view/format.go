package view

import (
	"fmt"
)

// FormatPercent renders a whole percentage as a button label.
func FormatPercent(p int) string {
	return fmt.Sprintf("%d%%", p)
}
