package hooks

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Hook adds the file and line that emitted a log entry under Field.
type Hook struct {
	Field string
	// Depth keeps that many trailing path segments of the file name, 0 keeps
	// the full path.
	Depth  int
	levels []logrus.Level
}

func (hook *Hook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *Hook) Fire(entry *logrus.Entry) error {
	entry.Data[hook.Field] = hook.findCaller()
	return nil
}

func NewHook(levels ...logrus.Level) *Hook {
	hook := Hook{
		Field:  "source",
		Depth:  2,
		levels: levels,
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}

	return &hook
}

func (hook *Hook) findCaller() string {
	file := ""
	line := 0
	for skip := 3; skip < 15; skip++ {
		file, line = getCaller(skip)
		if file == "" {
			break
		}
		if !strings.Contains(file, "sirupsen/logrus") && !strings.HasSuffix(file, "hooks/filename.go") {
			break
		}
	}
	return fmt.Sprintf("%s:%d", trimPath(file, hook.Depth), line)
}

func getCaller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0
	}
	return file, line
}

// trimPath keeps the last depth segments of a slash separated path.
func trimPath(file string, depth int) string {
	if depth <= 0 {
		return file
	}
	n := 0
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			n++
			if n >= depth {
				return file[i+1:]
			}
		}
	}
	return file
}
