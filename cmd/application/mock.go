package application

import (
	"github.com/rs/zerolog"

	"github.com/cuebox/stagehand"
)

// Mock implements Application for tests. Set the function field matching
// the method under test; unset fields return benign defaults.
type Mock struct {
	StagehandFunc    func(opts ...stagehand.Option) (stagehand.Stagehand, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
}

var _ Application = (*Mock)(nil)

// Stagehand calls StagehandFunc, or returns a nil pipeline when unset.
func (m *Mock) Stagehand(opts ...stagehand.Option) (stagehand.Stagehand, error) {
	if m.StagehandFunc != nil {
		return m.StagehandFunc(opts...)
	}
	return nil, nil
}

// Logger calls LoggerFunc, or returns a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	nop := zerolog.Nop()
	return &nop
}

// OutputFormat calls OutputFormatFunc, or returns "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version calls VersionFunc, or returns "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}
