package notify

import (
	goerrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cuebox/stagehand/internal/cmd/hints"
	"github.com/cuebox/stagehand/pkg/constants"
	"github.com/cuebox/stagehand/pkg/errors"
)

// ContextBuilder assembles the hints.Context a command hands to the hint
// registry after it runs.
type ContextBuilder struct {
	context hints.Context
}

// NewContextBuilder starts a context seeded with the runtime environment
// and what we can tell about the user's setup.
func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{context: hints.Context{
		Environment: currentEnvironment(),
		UserState:   currentUserState(),
	}}
}

// FromCommand records the command name and the flags the user passed
// explicitly. Unchanged flags stay out of the map.
func (cb *ContextBuilder) FromCommand(cmd *cobra.Command) *ContextBuilder {
	cb.context.Command = cmd.Name()

	passed := make(map[string]string)
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if flag.Changed {
			passed[flag.Name] = flag.Value.String()
		}
	})
	cb.context.Flags = passed

	return cb
}

// WithSuccess records whether the operation completed.
func (cb *ContextBuilder) WithSuccess(succeeded bool) *ContextBuilder {
	cb.context.Succeeded = succeeded
	return cb
}

// WithError classifies the error for failed operations.
func (cb *ContextBuilder) WithError(err error) *ContextBuilder {
	cb.context.ErrorType = classifyError(err)
	cb.context.Succeeded = false
	return cb
}

// WithIssues records how many QA issues the run produced.
func (cb *ContextBuilder) WithIssues(count int) *ContextBuilder {
	cb.context.Issues = count
	return cb
}

// WithTagMappings records how many canonical tag mappings were in effect.
func (cb *ContextBuilder) WithTagMappings(count int) *ContextBuilder {
	cb.context.TagMappings = count
	return cb
}

// WithOutputs records the files a run wrote.
func (cb *ContextBuilder) WithOutputs(outputPath, qaPath string) *ContextBuilder {
	cb.context.OutputPath = outputPath
	cb.context.QAPath = qaPath
	return cb
}

// Build returns the finished context.
func (cb *ContextBuilder) Build() hints.Context {
	return cb.context
}

// classifyError maps pipeline errors onto coarse hint categories.
func classifyError(err error) string {
	if err == nil {
		return ""
	}

	var (
		sourceErr *errors.SourceError
		columnErr *errors.ColumnError
		configErr *errors.ConfigError
		apiErr    *errors.APIError
	)
	switch {
	case goerrors.As(err, &sourceErr):
		return "source"
	case goerrors.As(err, &columnErr):
		return "column"
	case goerrors.As(err, &configErr):
		return "config"
	case goerrors.As(err, &apiErr):
		return "api"
	default:
		return "unknown"
	}
}

func currentEnvironment() hints.Environment {
	env := hints.Environment{
		OS:         runtime.GOOS,
		IsTerminal: isTerminal(os.Stdout),
		IsCI:       inCI(),
	}
	if wd, err := os.Getwd(); err == nil {
		env.WorkingDir = wd
	}
	return env
}

func currentUserState() hints.UserState {
	hasConfig := configFileExists()
	return hints.UserState{
		HasConfig:  hasConfig,
		IsFirstRun: !hasConfig && !priorRunArtifacts(),
	}
}

// configFileExists looks for a stagehand config in the working directory
// or the user's home.
func configFileExists() bool {
	paths := []string{
		".stagehand.yaml",
		".stagehand.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".stagehand.yaml"),
			filepath.Join(home, ".stagehand.yml"),
		)
	}
	return slices.ContainsFunc(paths, fileExists)
}

// priorRunArtifacts reports whether a previous run left its usual files
// behind. A workspace without them is treated as a first run.
func priorRunArtifacts() bool {
	leftovers := []string{
		constants.DefaultMappingCache,
		constants.DefaultConstituentsOutput,
	}
	return slices.ContainsFunc(leftovers, fileExists)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
