package alerts

import (
	"fmt"

	"github.com/cuebox/stagehand/internal/cmd/emoji"
)

// Level is the severity of an alert.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelSuccess
	LevelQA // data quality findings
)

// colorReset is the ANSI reset code appended after colored output.
const colorReset = "\033[0m"

// levelInfo carries the rendering attributes of one level.
type levelInfo struct {
	name  string
	icon  string
	color string
}

var levels = map[Level]levelInfo{
	LevelError:   {"error", emoji.Error, "\033[31m"},
	LevelWarning: {"warning", emoji.Warning, "\033[33m"},
	LevelInfo:    {"info", emoji.Info, "\033[36m"},
	LevelSuccess: {"success", emoji.Success, "\033[32m"},
	LevelQA:      {"qa", emoji.QA, "\033[36m"},
}

// String returns the level name.
func (l Level) String() string {
	if info, ok := levels[l]; ok {
		return info.name
	}
	return fmt.Sprintf("unknown(%d)", l)
}

// Icon returns the level's status icon.
func (l Level) Icon() string {
	if info, ok := levels[l]; ok {
		return info.icon
	}
	return emoji.Unknown
}

// Color returns the level's ANSI color code.
func (l Level) Color() string {
	if info, ok := levels[l]; ok {
		return info.color
	}
	return colorReset
}
