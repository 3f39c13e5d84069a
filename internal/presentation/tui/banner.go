package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for Dashwright.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Subtle gradient from indigo to rose
	lines := []string{
		`     _           _                _       _     _   `,
		`  __| | __ _ ___| |____      ___ (_) __ _| |__ | |_ `,
		` / _' |/ _' / __| '_ \ \ /\ / / '| |/ _' | '_ \| __|`,
		`| (_| | (_| \__ \ | | \ V  V /|  | | (_| | | | | |_ `,
		` \__,_|\__,_|___/_| |_|\_/\_/ |_| |_\__, |_| |_|\__|`,
		`                                    |___/           `,
	}
	colors := []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6", "#fb7185"}

	fmt.Println()
	for i, line := range lines {
		fmt.Println(termenv.String(line).Foreground(p.Color(colors[i])))
	}
	fmt.Println()
}
