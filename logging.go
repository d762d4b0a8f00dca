package modopt

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CallLogger is the optional, injectable logging seam described in
// SPEC_FULL.md §2 item 7. Its zero value is silent: every method is a
// no-op when Logger is nil, so passing CallLogger{} costs nothing on
// the hot path. This keeps the engine itself free of the "logging and
// telemetry" concern spec.md §1 scopes to the host application, while
// still giving a host that DOES want visibility a place to plug in —
// exactly the shape a Go library takes when it wants to stay
// dependency-optional for its callers (accept an interface, do nothing
// if it's absent).
type CallLogger struct {
	Logger logrus.FieldLogger
	callID string
}

// newCallLogger stamps a correlation ID so overlapping concurrent calls
// against a shared *CallLogger.Logger remain distinguishable in the
// log stream.
func newCallLogger(l logrus.FieldLogger) *CallLogger {
	if l == nil {
		return &CallLogger{}
	}
	return &CallLogger{Logger: l, callID: uuid.NewString()}
}

func (c *CallLogger) fields() logrus.Fields {
	return logrus.Fields{"call_id": c.callID}
}

func (c *CallLogger) debugf(format string, args ...any) {
	if c == nil || c.Logger == nil {
		return
	}
	c.Logger.WithFields(c.fields()).Debugf(format, args...)
}

func (c *CallLogger) tracef(format string, args ...any) {
	if c == nil || c.Logger == nil {
		return
	}
	c.Logger.WithFields(c.fields()).Tracef(format, args...)
}

func (c *CallLogger) infof(format string, args ...any) {
	if c == nil || c.Logger == nil {
		return
	}
	c.Logger.WithFields(c.fields()).Infof(format, args...)
}

// logSolutions writes the original_source-style human-readable result
// log (module_optimizer.py's _log_result) as one Info line per solution,
// when a Logger is attached.
func logSolutions(c *CallLogger, solutions []ModuleSolution) {
	if c == nil || c.Logger == nil {
		return
	}
	for i, s := range solutions {
		names := make([]string, len(s.Modules))
		for j, m := range s.Modules {
			names[j] = m.Name
		}
		c.infof("rank=%d score=%d modules=%v", i+1, s.Score, names)
	}
}
