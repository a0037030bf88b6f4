package errpipeline

import "testing"

func TestLookupKnownKind(t *testing.T) {
	entry, ok := Lookup(KindConflict)
	if !ok {
		t.Fatal("expected catalog entry for CONFLICT")
	}
	if entry.Message != "Update conflict. Reload and retry." {
		t.Errorf("unexpected message %q", entry.Message)
	}
	if entry.Domain != DomainStorage {
		t.Errorf("expected domain %s, got %s", DomainStorage, entry.Domain)
	}
}

func TestLookupUnknownKind(t *testing.T) {
	if _, ok := Lookup(Kind("NOT_A_REAL_KIND")); ok {
		t.Error("unknown kinds must not resolve")
	}
}

func TestCatalogEntriesComplete(t *testing.T) {
	for _, kind := range Kinds() {
		entry, ok := Lookup(kind)
		if !ok {
			t.Fatalf("Kinds() returned unresolvable kind %s", kind)
		}
		if entry.Message == "" {
			t.Errorf("kind %s has no default message", kind)
		}
		if entry.Domain == "" {
			t.Errorf("kind %s has no domain", kind)
		}
		if entry.Severity == "" {
			t.Errorf("kind %s has no severity", kind)
		}
		if entry.Recovery == "" {
			t.Errorf("kind %s has no recovery action", kind)
		}
	}
}
