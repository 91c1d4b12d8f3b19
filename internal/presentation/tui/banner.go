package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the symdq banner to w using the terminal's color
// profile.
func PrintBanner(w io.Writer) {
	p := termenv.NewOutput(w).ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"                     _       ", "#818cf8"},
		{"  ___ _   _ _ __ ___  __| | __ _ ", "#a78bfa"},
		{" / __| | | | '_ ` _ \\/ _` |/ _` |", "#c084fc"},
		{" \\__ \\ |_| | | | | | | (_| | (_| |", "#e879f9"},
		{" |___/\\__, |_| |_| |_|\\__,_|\\__, |", "#f472b6"},
		{"      |___/                    |_|", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
