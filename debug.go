package main

import (
	"log"
	"os"
)

// debugEnabled turns on trace logging; set by -debug or SWIPEVIEW_DEBUG
var debugEnabled = os.Getenv("SWIPEVIEW_DEBUG") != ""

func debugLog(format string, args ...interface{}) {
	if !debugEnabled {
		return
	}
	log.Printf("Debug: "+format, args...)
}
