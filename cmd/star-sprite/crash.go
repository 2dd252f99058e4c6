package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// newCrashHandler returns the unified panic handler that restores the terminal and prints the stack trace
// Safe to call from any goroutine; only the first crash is reported
func newCrashHandler(screen tcell.Screen, log *zap.Logger) func(r any) {
	var once sync.Once
	return func(r any) {
		if r == nil {
			return
		}
		once.Do(func() {
			stack := debug.Stack()

			// Restore terminal to sane state immediately
			screen.Fini()

			log.Error("crash", zap.Any("panic", r), zap.ByteString("stack", stack))
			_ = log.Sync()

			// Use \r\n in case the terminal is still in raw mode
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSTAR SPRITE CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
			os.Exit(1)
		})
	}
}
