package boundary

import "testing"

func TestCheckImportAllowsCoreStdlib(t *testing.T) {
	a := DefaultAssertions()
	for _, imp := range []string{
		"crypto/sha256",
		"encoding/hex",
		"encoding/json",
		"errors",
		"fmt",
		"strings",
		"github.com/northwood-systems/govkernel/pkg/foundation",
		"github.com/google/uuid",
		"github.com/gowebpki/jcs",
	} {
		if v := CheckImport(a, imp); v != nil {
			t.Errorf("CheckImport(%q) = %v, want allowed", imp, v)
		}
	}
}

func TestCheckImportRejectsIOAndNetworking(t *testing.T) {
	a := DefaultAssertions()
	for _, imp := range []string{
		"net",
		"net/http",
		"os",
		"os/exec",
		"database/sql",
		"syscall",
		"time",
		"sync",
		"cloud.google.com/go/storage",
		"github.com/redis/go-redis/v9",
		"modernc.org/sqlite",
		"github.com/tetratelabs/wazero",
		"github.com/northwood-systems/govkernel/internal/store",
	} {
		v := CheckImport(a, imp)
		if v == nil {
			t.Fatalf("CheckImport(%q) = nil, want violation", imp)
		}
		if v.Severity != "error" {
			t.Errorf("CheckImport(%q) severity = %q, want error", imp, v.Severity)
		}
	}
}

func TestCheckImportWarnsOnUnrecognized(t *testing.T) {
	a := DefaultAssertions()
	v := CheckImport(a, "github.com/some/unvetted-dependency")
	if v == nil {
		t.Fatal("CheckImport on unrecognized import = nil, want warning")
	}
	if v.Severity != "warning" {
		t.Errorf("severity = %q, want warning", v.Severity)
	}
}

func TestErrorsFiltersWarnings(t *testing.T) {
	violations := []Violation{
		{ImportPath: "net", Severity: "error"},
		{ImportPath: "github.com/unknown/dep", Severity: "warning"},
	}
	errs := Errors(violations)
	if len(errs) != 1 || errs[0].ImportPath != "net" {
		t.Errorf("Errors(...) = %v, want only the net violation", errs)
	}
}

// TestScanCore exercises the full forbidden-import scan across every pure
// core package. It is the compile-time analogue of spec §9's required
// forbidden-import lint: a violation here means a core package started
// importing something I/O-shaped, process-controlling, networked,
// threaded, or dynamically executable, and must fail the build.
func TestScanCore(t *testing.T) {
	violations, err := ScanCore(DefaultAssertions())
	if err != nil {
		t.Fatalf("ScanCore: %v", err)
	}
	if errs := Errors(violations); len(errs) > 0 {
		for _, v := range errs {
			t.Errorf("boundary violation: %s", v)
		}
	}
}
