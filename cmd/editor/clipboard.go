package main

import (
	"log"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copyToClipboard puts s on the system clipboard. It reports false when no
// clipboard is available (headless sessions, missing X11 libraries).
func copyToClipboard(s string) bool {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
		if clipboardErr != nil {
			log.Printf("Clipboard unavailable: %v", clipboardErr)
		}
	})
	if clipboardErr != nil {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return true
}
