//go:build !js && !mobile && (windows || cgo)

package scenes

import (
	"log"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce  sync.Once
	clipboardReady bool
)

// clipboardWriteText 把文本写入系统剪贴板，剪贴板不可用时返回 false
func clipboardWriteText(str string) bool {
	clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			log.Printf("[Clipboard] disabled: %v", err)
			return
		}
		clipboardReady = true
	})
	if !clipboardReady {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(str))
	return true
}
