package fetcher

import "fmt"

// printer receives the per-step console lines.
type printer interface {
	Printf(format string, a ...any) (n int, err error)
}

// stdPrinter prints to stdout.
type stdPrinter struct{}

func (stdPrinter) Printf(format string, a ...any) (n int, err error) {
	return fmt.Printf(format, a...)
}
