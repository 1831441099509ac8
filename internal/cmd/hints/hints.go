// Package hints suggests next steps after a command finishes. Generators
// inspect what the run produced and emit short, actionable suggestions.
package hints

import (
	"fmt"
	"slices"
	"strings"
)

// Hint represents actionable user guidance. Command and URL are optional
// extras rendered under the message; Tags drive context filtering.
type Hint struct {
	Message string   `json:"message" yaml:"message"`
	Command string   `json:"command,omitempty" yaml:"command,omitempty"`
	URL     string   `json:"url,omitempty" yaml:"url,omitempty"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// New returns a hint carrying only a message.
func New(message string) *Hint {
	return &Hint{Message: message}
}

// NewCommand returns a hint suggesting a command to run.
func NewCommand(message, command string) *Hint {
	return &Hint{Message: message, Command: command}
}

// NewURL returns a hint pointing at documentation.
func NewURL(message, url string) *Hint {
	return &Hint{Message: message, URL: url}
}

// WithTags appends filtering tags to the hint.
func (h *Hint) WithTags(tags ...string) *Hint {
	h.Tags = append(h.Tags, tags...)
	return h
}

// HasTag reports whether the hint carries tag.
func (h *Hint) HasTag(tag string) bool {
	return slices.Contains(h.Tags, tag)
}

// String renders the hint for a terminal, one line per part.
func (h *Hint) String() string {
	parts := []string{fmt.Sprintf("💡 %s", h.Message)}
	if h.Command != "" {
		parts = append(parts, fmt.Sprintf("   Run: %s", h.Command))
	}
	if h.URL != "" {
		parts = append(parts, fmt.Sprintf("   See: %s", h.URL))
	}
	return strings.Join(parts, "\n")
}

// Context is what generators see about the finished run.
type Context struct {
	Command     string            // command that ran
	Succeeded   bool              // whether it succeeded
	ErrorType   string            // error classification on failure
	Flags       map[string]string // flags changed on the command line
	Issues      int               // QA issues found during the run
	TagMappings int               // canonical tag mappings in effect
	OutputPath  string            // constituents file written by the run
	QAPath      string            // QA report written by the run
	UserState   UserState
	Environment Environment
}

// UserState describes the user's configuration so far.
type UserState struct {
	HasConfig  bool
	IsFirstRun bool
}

// Environment describes where the command is running.
type Environment struct {
	IsTerminal bool
	IsCI       bool
	OS         string
	WorkingDir string
}

// Generator produces hints for a given context. Generators return nil when
// they have nothing useful to say.
type Generator func(Context) []*Hint

// Registry collects hint generators and produces the hints for a run.
type Registry struct {
	generators []Generator
	config     RegistryConfig
}

// RegistryConfig caps and filters what GetHints returns.
type RegistryConfig struct {
	MaxHints    int      // most hints to return, zero means no cap
	FilterTags  []string // when set, only hints carrying one of these
	ExcludeTags []string // hints carrying any of these are dropped
	Enabled     bool
}

// NewRegistry returns a registry that shows up to three hints.
func NewRegistry() *Registry {
	return &Registry{
		config: RegistryConfig{
			MaxHints: 3,
			Enabled:  true,
		},
	}
}

// WithConfig replaces the registry configuration.
func (r *Registry) WithConfig(config RegistryConfig) *Registry {
	r.config = config
	return r
}

// Register adds a hint generator to the registry.
func (r *Registry) Register(gen Generator) {
	r.generators = append(r.generators, gen)
}

// GetHints generates hints for the given context, filtered and capped per
// the registry configuration.
func (r *Registry) GetHints(ctx Context) []*Hint {
	if !r.config.Enabled {
		return nil
	}

	var all []*Hint
	for _, gen := range r.generators {
		all = append(all, gen(ctx)...)
	}

	filtered := r.filter(all)
	if r.config.MaxHints > 0 && len(filtered) > r.config.MaxHints {
		filtered = filtered[:r.config.MaxHints]
	}
	return filtered
}

// filter applies tag-based inclusion and exclusion.
func (r *Registry) filter(all []*Hint) []*Hint {
	var kept []*Hint
	for _, hint := range all {
		if slices.ContainsFunc(r.config.ExcludeTags, hint.HasTag) {
			continue
		}
		if len(r.config.FilterTags) > 0 && !slices.ContainsFunc(r.config.FilterTags, hint.HasTag) {
			continue
		}
		kept = append(kept, hint)
	}
	return kept
}
