package composer

import "github.com/atotto/clipboard"

// Clipboard receives the copied tag text
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard utility was found on this system
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}
