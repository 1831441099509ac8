package hints

import (
	"fmt"
)

const (
	constituentsCommand = "constituents"
	validateCommand     = "validate"
)

// RegisterDefaults registers the standard stagehand hint generators.
func RegisterDefaults(registry *Registry) {
	registry.Register(qaHints)
	registry.Register(tagMappingHints)
	registry.Register(onboardingHints)
	registry.Register(errorRecoveryHints)
}

// qaHints suggests next steps when a run produced QA findings.
func qaHints(ctx Context) []*Hint {
	if ctx.Issues == 0 {
		return nil
	}

	var out []*Hint
	if ctx.QAPath != "" {
		out = append(out, New(
			fmt.Sprintf("Review %s before importing into CueBox", ctx.QAPath),
		).WithTags("qa"))
	}
	if ctx.OutputPath != "" {
		out = append(out, NewCommand(
			"Re-check the import file after fixing flagged rows",
			"stagehand validate "+ctx.OutputPath,
		).WithTags("qa", "next-step"))
	}
	return out
}

// tagMappingHints nudges users toward canonical tag names when no mapping
// was in effect for an onboarding run.
func tagMappingHints(ctx Context) []*Hint {
	if !ctx.Succeeded || ctx.TagMappings > 0 || ctx.Command != constituentsCommand {
		return nil
	}
	return []*Hint{
		New("Tags were kept verbatim; set tag_mapping_url in .stagehand.yaml to canonicalize them").
			WithTags("config", "tags"),
	}
}

// onboardingHints covers the first-run experience.
func onboardingHints(ctx Context) []*Hint {
	// Only during actual first-run scenarios
	if !ctx.UserState.IsFirstRun || ctx.UserState.HasConfig {
		return nil
	}
	if ctx.Command != constituentsCommand || !ctx.Succeeded {
		return nil
	}
	return []*Hint{
		New("Save your export paths in .stagehand.yaml to skip repeating file flags").
			WithTags("onboarding", "getting-started"),
		NewURL("Configuration reference",
			"https://github.com/cuebox/stagehand#configuration").
			WithTags("onboarding"),
	}
}

// errorRecoveryHints helps users recover from failed runs.
func errorRecoveryHints(ctx Context) []*Hint {
	if ctx.Succeeded {
		return nil
	}

	switch ctx.ErrorType {
	case "source":
		return []*Hint{
			New("Check that the export file exists and is readable CSV").
				WithTags("troubleshooting"),
		}
	case "column":
		return []*Hint{
			New("The header row must name a Patron ID column; use --aliases to map renamed headers").
				WithTags("troubleshooting"),
		}
	case "config":
		if ctx.Command == validateCommand {
			return []*Hint{
				NewCommand("Pass the constituents file produced by an onboarding run",
					"stagehand validate output/CueBox_Constituents.csv").
					WithTags("troubleshooting"),
			}
		}
	}
	return nil
}
