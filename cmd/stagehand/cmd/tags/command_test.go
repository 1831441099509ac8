package tags

import (
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuebox/stagehand"
	"github.com/cuebox/stagehand/internal/sources/tables"
)

// testApp satisfies AppContext with a real pipeline and a temp report path.
type testApp struct {
	outDir string
	logger zerolog.Logger
}

func (a *testApp) Stagehand(opts ...stagehand.Option) (stagehand.Stagehand, error) {
	merged := append([]stagehand.Option{stagehand.WithLogger(&a.logger)}, opts...)
	return stagehand.New(merged...)
}

func (a *testApp) Logger() *zerolog.Logger {
	return &a.logger
}

func (a *testApp) TagsOut() string {
	return filepath.Join(a.outDir, "tags.csv")
}

func TestTagsCommand(t *testing.T) {
	dir := t.TempDir()
	app := &testApp{outDir: dir, logger: zerolog.Nop()}

	patrons := filepath.Join(dir, "patrons.csv")
	require.NoError(t, os.WriteFile(patrons, []byte(
		"Patron ID,Tags\n"+
			"p1,\"vip, board\"\n"+
			"p2,vip\n"), 0o644))

	cmd := NewCommand(app)
	cmd.SetArgs([]string{
		"--constituents", patrons,
		"--cache", filepath.Join(dir, "mapping.json"),
	})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	f, err := os.Open(app.TagsOut())
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, tables.TagColumns(), records[0])
	assert.Equal(t, []string{"vip", "2"}, records[1])
	assert.Equal(t, []string{"board", "1"}, records[2])
}

func TestTagsCommand_WithMappingService(t *testing.T) {
	dir := t.TempDir()
	app := &testApp{outDir: dir, logger: zerolog.Nop()}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"vip","mapped_name":"VIP Donor"}]`))
	}))
	defer server.Close()

	patrons := filepath.Join(dir, "patrons.csv")
	require.NoError(t, os.WriteFile(patrons, []byte(
		"Patron ID,Tags\np1,vip\n"), 0o644))

	cmd := NewCommand(app)
	cmd.SetArgs([]string{
		"--constituents", patrons,
		"--tag-mapping-url", server.URL,
		"--cache", filepath.Join(dir, "mapping.json"),
	})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	f, err := os.Open(app.TagsOut())
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"VIP Donor", "1"}, records[1])
}

func TestTagsCommand_MissingConstituents(t *testing.T) {
	dir := t.TempDir()
	app := &testApp{outDir: dir, logger: zerolog.Nop()}

	cmd := NewCommand(app)
	cmd.SetArgs([]string{})

	require.Error(t, cmd.ExecuteContext(context.Background()))
}
