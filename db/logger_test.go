package db

import (
	"testing"

	"github.com/go-xorm/core"
	log "github.com/sirupsen/logrus"
)

func TestLogger(t *testing.T) {
	var l core.ILogger = NewLogger(log.WithField("orm", "xorm"), false)

	if l.IsShowSQL() {
		t.Fatalf("show sql should be off")
	}
	l.ShowSQL()
	if !l.IsShowSQL() {
		t.Fatalf("show sql should be on")
	}
	l.ShowSQL(false)
	if l.IsShowSQL() {
		t.Fatalf("show sql should be off")
	}

	l.SetLevel(core.LOG_WARNING)
	if l.Level() != core.LOG_WARNING {
		t.Fatalf("unexpected level: %v", l.Level())
	}
}
