package whitelist

import (
	"reflect"
	"testing"
)

func TestVerify(t *testing.T) {
	l, err := New([]string{"127.0.0.1", `192\.168\.1\..*`})
	if err != nil {
		t.Fatal(err)
	}

	m := map[string]bool{
		"127.0.0.1":        true,
		"127.0.0.1:52310":  true,
		"127.0.0.2":        false,
		"192.168.1.1":      true,
		"192.168.1.255:80": true,
		"192.168.0.1":      false,
		"10.127.0.1":       false,
	}

	for k, v := range m {
		if l.Verify(k) != v {
			t.Fatalf("%s, expect=%t", k, v)
		}
	}
}

func TestRegisterRemove(t *testing.T) {
	l, _ := New(nil)
	if l.Verify("159.56.25.14") {
		t.Fatalf("empty list allows nothing")
	}

	l.Register("159.56.25.14")
	l.Register("58.57.1.*")
	if !l.Verify("159.56.25.14") {
		t.Fatalf("registered ip should pass")
	}
	if !reflect.DeepEqual(l.Patterns(), []string{"159.56.25.14", "58.57.1.*"}) {
		t.Fatalf("unexpected patterns: %v", l.Patterns())
	}

	l.Remove("159.56.25.14")
	if l.Verify("159.56.25.14") {
		t.Fatalf("removed ip should not pass")
	}

	if _, err := New([]string{"("}); err == nil {
		t.Fatalf("expect a regexp error")
	}
}
