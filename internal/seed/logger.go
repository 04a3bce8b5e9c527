package seed

import "log"

// stdLogger adapts the standard library logger to the Logger interface.
type stdLogger struct{}

func (stdLogger) Infof(format string, args ...any)  { log.Printf("INFO  "+format, args...) }
func (stdLogger) Warnf(format string, args ...any)  { log.Printf("WARN  "+format, args...) }
func (stdLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }

// StdLogger returns a Logger backed by the standard library log package.
func StdLogger() Logger { return stdLogger{} }
