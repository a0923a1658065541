package importer

import (
	"testing"
)

func TestRegistry(t *testing.T) {
	Register(newTestLang())

	lang, ok := Lookup("test")
	if !ok || lang.Name() != "test" {
		t.Fatalf("Lookup(test) = %v, %v", lang, ok)
	}

	if _, ok := ForFile("dir/x.tst"); !ok {
		t.Error("ForFile(x.tst) found nothing")
	}
	if _, ok := ForFile("dir/X.TST"); !ok {
		t.Error("extensions should match regardless of case")
	}
	if _, ok := ForFile("x.unknown"); ok {
		t.Error("ForFile(x.unknown) should find nothing")
	}

	if err := RegisterExtension("tstx", "test"); err != nil {
		t.Fatalf("RegisterExtension: %v", err)
	}
	if _, ok := ForFile("x.tstx"); !ok {
		t.Error("ForFile(x.tstx) found nothing after registering the extension")
	}
	if err := RegisterExtension(".foo", "no-such-language"); err == nil {
		t.Error("RegisterExtension should fail for an unknown language")
	}

	found := false
	for _, name := range Languages() {
		if name == "test" {
			found = true
		}
	}
	if !found {
		t.Errorf("Languages() = %v, want it to contain test", Languages())
	}
}
