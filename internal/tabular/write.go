package tabular

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/cuebox/stagehand/pkg/constants"
	pkgerrors "github.com/cuebox/stagehand/pkg/errors"
)

// Write renders the header and rows to path as a delimited file, creating
// the parent directory when needed.
func Write(path string, columns []string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return pkgerrors.WrapIO("create", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return pkgerrors.WrapIO("create", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		_ = f.Close()
		return pkgerrors.WrapIO("write", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			_ = f.Close()
			return pkgerrors.WrapIO("write", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return pkgerrors.WrapIO("write", path, err)
	}

	if err := f.Close(); err != nil {
		return pkgerrors.WrapIO("close", path, err)
	}
	return nil
}
