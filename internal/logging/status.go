package logging

import "go.uber.org/zap"

// StatusLogger is the capability the dependency probe reports through.
// Injected rather than a package-level sink so tests can record calls.
type StatusLogger interface {
	Success(msg string)
	Warning(msg string)
	Info(msg string)
}

type zapStatus struct{ l *zap.Logger }

// NewStatusLogger adapts a zap logger. zap has no success level; a success is
// an info record tagged status=ok.
func NewStatusLogger(l *zap.Logger) StatusLogger { return &zapStatus{l: l} }

func (z *zapStatus) Success(msg string) { z.l.Info(msg, zap.String("status", "ok")) }
func (z *zapStatus) Warning(msg string) { z.l.Warn(msg) }
func (z *zapStatus) Info(msg string)    { z.l.Info(msg) }

type nopStatus struct{}

// Nop returns a StatusLogger that discards everything.
func Nop() StatusLogger { return nopStatus{} }

func (nopStatus) Success(string) {}
func (nopStatus) Warning(string) {}
func (nopStatus) Info(string)    {}
