package stack

import (
	"log/slog"

	"go.uber.org/atomic"
)

// completion wraps a transition's completion step so the animator can only run
// it once. Later calls are logged and dropped.
func completion(log *slog.Logger, op string, fn func()) func() {
	done := atomic.NewBool(false)
	return func() {
		if !done.CompareAndSwap(false, true) {
			log.Warn("Transition completed more than once", "op", op)
			return
		}
		fn()
	}
}

// onceListener lets exactly one outcome through to the caller's listener.
type onceListener struct {
	op    string
	inner CommandListener
	fired *atomic.Bool
	log   *slog.Logger
}

func guard(log *slog.Logger, op string, l CommandListener) *onceListener {
	if l == nil {
		l = NoopListener
	}
	if ol, ok := l.(*onceListener); ok {
		return ol
	}
	return &onceListener{op: op, inner: l, fired: atomic.NewBool(false), log: log}
}

func (l *onceListener) OnSuccess(childID string) {
	if !l.fired.CompareAndSwap(false, true) {
		l.log.Warn("Command listener already notified", "op", l.op, "child", childID)
		return
	}
	l.log.Debug("Command succeeded", "op", l.op, "child", childID)
	l.inner.OnSuccess(childID)
}

func (l *onceListener) OnError(err error) {
	if !l.fired.CompareAndSwap(false, true) {
		l.log.Warn("Command listener already notified", "op", l.op, "error", err)
		return
	}
	l.log.Info("Command failed", "op", l.op, "error", err)
	l.inner.OnError(err)
}
