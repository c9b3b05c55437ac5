package logger

import (
	"log"
	"os"
)

var (
	// Info logs go to stdout.
	Info *log.Logger

	// Error logs go to stderr.
	Error *log.Logger
)

func init() {
	Info = log.New(os.Stdout, "", log.LstdFlags)
	Error = log.New(os.Stderr, "", log.LstdFlags)
}

// Println writes an info line to stdout.
func Println(v ...interface{}) {
	Info.Println(v...)
}

// Printf writes a formatted info line to stdout.
func Printf(format string, v ...interface{}) {
	Info.Printf(format, v...)
}

// Errorln writes an error line to stderr.
func Errorln(v ...interface{}) {
	Error.Println(v...)
}

// Errorf writes a formatted error line to stderr.
func Errorf(format string, v ...interface{}) {
	Error.Printf(format, v...)
}

// Fatalf writes a formatted error line to stderr and exits.
func Fatalf(format string, v ...interface{}) {
	Error.Fatalf(format, v...)
}
