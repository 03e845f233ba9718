package testbed

import "github.com/atotto/clipboard"

// clipboardWriter is swapped in tests.
var clipboardWriter = clipboard.WriteAll

func setClipboardText(text string) error {
	if text == "" {
		text = " "
	}
	return clipboardWriter(text)
}
