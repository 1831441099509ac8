// Package tagapi loads the tag canonicalization mapping from the
// customer's mapping endpoint and keeps a JSON cache on disk so reruns
// are deterministic and work offline.
//
// Loading never fails the pipeline: every cache, network, or decode
// problem degrades to an empty mapping, which keeps original tag names.
package tagapi

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cuebox/stagehand/internal/transport"
	"github.com/cuebox/stagehand/pkg/constants"
	pkgerrors "github.com/cuebox/stagehand/pkg/errors"
	"github.com/cuebox/stagehand/pkg/logging"
	"github.com/cuebox/stagehand/pkg/normalize"
	"github.com/cuebox/stagehand/pkg/tagmap"
)

// entry is one element of the endpoint's JSON response.
type entry struct {
	Name       string `json:"name"`
	MappedName string `json:"mapped_name"`
}

// Client downloads the tag mapping and maintains its cache file.
type Client struct {
	URL        string
	CachePath  string
	HTTPClient *http.Client
}

// NewClient creates a tag mapping client with the default HTTP timeout.
func NewClient(url, cachePath string) *Client {
	return &Client{
		URL:       url,
		CachePath: cachePath,
		HTTPClient: &http.Client{
			Timeout: constants.DefaultHTTPTimeout,
		},
	}
}

// Load returns the tag mapping for this run.
//
// The cache wins whenever it parses: it is returned exactly as stored,
// including hand edits and empty objects. Otherwise the endpoint is
// queried once and the filtered result cached for the next run. Any
// failure returns an empty mapping.
func (c *Client) Load(ctx context.Context) tagmap.Mapping {
	log := logging.FromContext(ctx)

	if mapping, ok := c.cached(ctx); ok {
		log.Debug().
			Str("cache", c.CachePath).
			Int("entries", len(mapping)).
			Msg("Loaded tag mapping from cache")
		return mapping
	}

	if c.URL == "" {
		log.Debug().Msg("No tag mapping URL configured, keeping original tag names")
		return tagmap.Mapping{}
	}

	mapping, err := c.fetch(ctx)
	if err != nil {
		log.Warn().
			Err(err).
			Str("endpoint", c.URL).
			Msg("Tag mapping fetch failed, keeping original tag names")
		return tagmap.Mapping{}
	}

	c.persist(ctx, mapping)
	return mapping
}

// cached loads the mapping from the cache file. A missing or unreadable
// file is a miss, and so is one that does not parse as a JSON object.
func (c *Client) cached(ctx context.Context) (tagmap.Mapping, bool) {
	if c.CachePath == "" {
		return nil, false
	}

	data, err := os.ReadFile(c.CachePath)
	if err != nil {
		return nil, false
	}

	var mapping tagmap.Mapping
	if err := json.Unmarshal(data, &mapping); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("cache", c.CachePath).
			Msg("Ignoring unparsable tag mapping cache")
		return nil, false
	}
	return mapping, true
}

// fetch downloads and decodes the mapping. Entries are kept only when
// both the name and the mapped name are non-empty after trimming.
func (c *Client) fetch(ctx context.Context) (tagmap.Mapping, error) {
	var entries []entry
	if err := transport.NewWithHTTPClient(c.HTTPClient).GetJSON(ctx, c.URL, &entries); err != nil {
		return nil, err
	}

	mapping := make(tagmap.Mapping, len(entries))
	for _, e := range entries {
		name := normalize.String(e.Name)
		mapped := normalize.String(e.MappedName)
		if name == "" || mapped == "" {
			continue
		}
		mapping[name] = mapped
	}
	return mapping, nil
}

// persist writes the mapping to the cache file. A write failure costs
// the cache, not the run: the fresh mapping is still used.
func (c *Client) persist(ctx context.Context, mapping tagmap.Mapping) {
	if c.CachePath == "" {
		return
	}
	log := logging.FromContext(ctx)

	data, err := json.MarshalIndent(mapping, "", "  ")
	if err != nil {
		log.Warn().Err(err).Msg("Could not encode tag mapping cache")
		return
	}

	if dir := filepath.Dir(c.CachePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			log.Warn().
				Err(pkgerrors.WrapIO("create", dir, err)).
				Msg("Could not create tag mapping cache directory")
			return
		}
	}

	if err := os.WriteFile(c.CachePath, data, constants.FilePermissions); err != nil {
		log.Warn().
			Err(pkgerrors.WrapIO("write", c.CachePath, err)).
			Msg("Could not write tag mapping cache")
		return
	}

	log.Debug().
		Str("cache", c.CachePath).
		Int("entries", len(mapping)).
		Msg("Cached tag mapping")
}
