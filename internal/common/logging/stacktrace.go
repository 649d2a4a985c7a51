package logging

import (
	stderrors "errors"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const Stacktrace = "stacktrace"

// Unexported but considered part of the stable interface of pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// WithStacktrace returns a new logrus.Entry obtained by adding error information and, if available, a stack trace
// as fields to the provided logrus.Entry.
func WithStacktrace(logger *logrus.Entry, err error) *logrus.Entry {
	logger = logger.WithError(err)
	if stack := ExtractStack(err); stack != nil {
		logger = logger.WithField(Stacktrace, stack)
	}
	return logger
}

// ExtractStack returns the stack trace carried by the outermost error in
// err's chain that has one, or nil if none do.
func ExtractStack(err error) errors.StackTrace {
	var stackErr stackTracer
	if stderrors.As(err, &stackErr) {
		return stackErr.StackTrace()
	}
	return nil
}
