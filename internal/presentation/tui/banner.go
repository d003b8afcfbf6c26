package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`  _                     _    __ _`, "#38bdf8"},
	{` | |___      _____  ___| |_ / _| | _____      __`, "#60a5fa"},
	{` | __\ \ /\ / / _ \/ _ \ __| |_| |/ _ \ \ /\ / /`, "#818cf8"},
	{` | |_ \ V  V /  __/  __/ |_|  _| | (_) \ V  V /`, "#a78bfa"},
	{`  \__| \_/\_/ \___|\___|\__|_| |_|\___/ \_/\_/`, "#c084fc"},
}

// PrintBanner writes the tweetflow ASCII banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
