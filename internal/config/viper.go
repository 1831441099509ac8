// Package config centralizes Viper defaults and lookup helpers for the
// stagehand CLI.
package config

import (
	"github.com/spf13/viper"

	"github.com/cuebox/stagehand/pkg/constants"
)

// EnvPrefix is the prefix for stagehand environment variables, so the
// constituents_file key maps to STAGEHAND_CONSTITUENTS_FILE.
const EnvPrefix = "STAGEHAND"

// Configuration keys recognized in config files, environment variables,
// and flag bindings.
const (
	KeyConstituentsFile = "constituents_file"
	KeyEmailsFile       = "emails_file"
	KeyDonationsFile    = "donations_file"
	KeyConstituentsOut  = "constituents_out"
	KeyQAOut            = "qa_out"
	KeyTagsOut          = "tags_out"
	KeyTagMappingURL    = "tag_mapping_url"
	KeyMappingCache     = "mapping_cache"
	KeyColumnAliases    = "column_aliases"
	KeyProgress         = "progress"
)

// SetDefaults seeds Viper with the pipeline defaults so config files and
// environment variables only need to name what they change.
func SetDefaults() {
	viper.SetDefault(KeyConstituentsOut, constants.DefaultConstituentsOutput)
	viper.SetDefault(KeyQAOut, constants.DefaultQAOutput)
	viper.SetDefault(KeyTagsOut, constants.DefaultTagsOutput)
	viper.SetDefault(KeyMappingCache, constants.DefaultMappingCache)
	viper.SetDefault(KeyProgress, false)
}
