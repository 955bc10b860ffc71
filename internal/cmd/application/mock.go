// Package application holds test doubles for cmd/application.
package application

import (
	"github.com/rs/zerolog"

	"github.com/eridu-basin/stratcheck"
	"github.com/eridu-basin/stratcheck/cmd/application"
	"github.com/eridu-basin/stratcheck/pkg/logging"
)

var _ application.Application = (*Mock)(nil)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
//
//	mock := &application.Mock{
//	    InputsFunc: func() stratcheck.Inputs {
//	        return stratcheck.Inputs{ReferencePath: ref, RecordsPath: csv}
//	    },
//	}
//	cmd := check.NewCommand(mock)
type Mock struct {
	CheckerFunc      func(opts ...stratcheck.Option) (*stratcheck.Checker, error)
	InputsFunc       func() stratcheck.Inputs
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Checker returns a checker using the mock function, or one built from Inputs.
func (m *Mock) Checker(opts ...stratcheck.Option) (*stratcheck.Checker, error) {
	if m.CheckerFunc != nil {
		return m.CheckerFunc(opts...)
	}
	return stratcheck.New(m.Inputs(), opts...)
}

// Inputs returns inputs using the mock function or zero inputs.
func (m *Mock) Inputs() stratcheck.Inputs {
	if m.InputsFunc != nil {
		return m.InputsFunc()
	}
	return stratcheck.Inputs{}
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return logging.NewNopLogger()
}

// OutputFormat returns the output format using the mock function or "text".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "text"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
