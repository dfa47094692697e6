package ui

import (
	"errors"

	"github.com/atotto/clipboard"
)

var errClipboardUnsupported = errors.New("no clipboard utility available")

// Clipboard receives copied mirror links and archive passwords
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

// SystemClipboard returns the OS clipboard
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
