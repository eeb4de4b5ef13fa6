package main

import (
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func highlight(value string, colorize bool) string {
	if !colorize {
		return value
	}
	return text.Colors{text.Bold, text.FgGreen}.Sprint(value)
}

// displayKind turns "release_group" into "Release Group". Profile kinds keep
// their stored name: "profile:bluray" becomes "Profile: bluray".
func displayKind(kind string) string {
	if name, ok := strings.CutPrefix(kind, "profile:"); ok {
		return "Profile: " + name
	}
	return cases.Title(language.Und).String(strings.ReplaceAll(kind, "_", " "))
}
