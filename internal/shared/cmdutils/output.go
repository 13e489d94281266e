package cmdutils

import (
	"fmt"

	"github.com/promptloom/promptloom/internal/schema"
)

const logo = "🧵"

// PrintResult renders a ResultSet for the terminal. Errors go first; then the
// refined prompt if the enhancement pass changed it, then whatever media or
// text the call produced.
func PrintResult(rs schema.ResultSet) {
	if rs.Error {
		fmt.Printf("\n%s promptloom error\n%s\n\n", logo, rs.ErrorMessage)
		return
	}

	fmt.Printf("\n%s promptloom\n", logo)
	if rs.RefinedPrompt != nil {
		fmt.Printf("refined prompt: %s\n", *rs.RefinedPrompt)
	}
	for _, u := range rs.ImageURLs {
		fmt.Println(u)
	}
	if rs.VideoURL != "" {
		fmt.Println(rs.VideoURL)
	}
	if text := rs.Text(); text != "" && len(rs.ImageURLs) == 0 {
		fmt.Println(text)
	}
	fmt.Println()
}
