package version

import "fmt"

const (
	Version = "v0.1.0"

	colorReset    = "\033[0m"
	colorCyanBold = "\033[36;1m"
)

// asciiArtTpl returns the ASCII art banner of litedb.
func asciiArtTpl() string {
	asciiArt := `
    ___ __       ____  ____
   / (_) /____  / __ \/ __ )
  / / / __/ _ \/ / / / __  |
 / / / /_/  __/ /_/ / /_/ /
/_/_/\__/\___/_____/_____/
%s ` + Version

	asciiArt = asciiArt[1:] // drop the leading newline
	return colorCyanBold + asciiArt + colorReset
}

// ShellVersion returns the banner of the litedb shell.
func ShellVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "Shell")
}

// BenchVersion returns the banner of the litedb benchmark.
func BenchVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "Bench")
}
