// Package boundary implements the forbidden-import scan spec §6 and §9
// require: core packages must not import or link anything that performs
// I/O, process control, networking, threading, or dynamic code execution.
// Adapted from the teacher's kernel.BoundaryAssertions, generalized from a
// single trusted package to every github.com/northwood-systems/govkernel/pkg/*
// package and retargeted at this repo's ambient/domain-stack prefixes
// instead of HELM's.
package boundary

import (
	"fmt"
	"go/build"
	"strings"
)

// Violation records one disallowed or unrecognized import found while
// scanning a package.
type Violation struct {
	Package    string
	ImportPath string
	Reason     string
	Severity   string
}

func (v Violation) String() string {
	return fmt.Sprintf("[%s] %s imports %q: %s", v.Severity, v.Package, v.ImportPath, v.Reason)
}

// Assertions is the allow/deny configuration the scan runs against.
type Assertions struct {
	AllowedImportPrefixes    []string
	DisallowedImportPatterns []string
}

// DefaultAssertions mirrors the teacher's DefaultKernelBoundaryAssertions,
// retargeted: the allowlist covers the standard library primitives the
// pure core legitimately needs (hashing, encoding, errors, sorting,
// string handling) plus this module's own pkg/* packages and the
// deterministic third-party libraries SPEC_FULL.md wires into the core
// (cel-go, jcs, semver, uuid, unicode/norm). The denylist covers every
// I/O, process-control, networking, threading, and dynamic-execution
// primitive named in spec §6 and §9.
func DefaultAssertions() Assertions {
	return Assertions{
		AllowedImportPrefixes: []string{
			"context",
			"crypto/",
			"encoding/",
			"errors",
			"fmt",
			"sort",
			"strings",
			"strconv",
			"bytes",
			"unicode",

			"github.com/northwood-systems/govkernel/pkg/",

			"github.com/google/cel-go",
			"github.com/google/uuid",
			"github.com/gowebpki/jcs",
			"github.com/Masterminds/semver",
			"golang.org/x/text/unicode/norm",
			"github.com/santhosh-tekuri/jsonschema/v5",
		},
		DisallowedImportPatterns: []string{
			"net",
			"net/http",
			"net/rpc",
			"os/exec",
			"os/signal",
			"database/sql",
			"syscall",
			"plugin",
			"unsafe",
			"sync",
			"time",
			"io",
			"os",
			"cloud.google.com",
			"github.com/aws/aws-sdk-go",
			"github.com/redis/go-redis",
			"github.com/lib/pq",
			"github.com/jackc/pgx",
			"modernc.org/sqlite",
			"google.golang.org/grpc",
			"github.com/tetratelabs/wazero",
			"github.com/northwood-systems/govkernel/internal",
		},
	}
}

// CheckImport reports whether a single import path violates a. A
// disallowed pattern always wins over an allowed prefix, matching the
// teacher's precedence; an import matching neither list is reported as a
// warning rather than silently accepted, since the allowlist is meant to
// be exhaustive for a pure core.
func CheckImport(a Assertions, importPath string) *Violation {
	for _, pattern := range a.DisallowedImportPatterns {
		if importPath == pattern || strings.HasPrefix(importPath, pattern+"/") {
			return &Violation{
				ImportPath: importPath,
				Reason:     "matches disallowed pattern " + pattern,
				Severity:   "error",
			}
		}
	}
	for _, prefix := range a.AllowedImportPrefixes {
		if importPath == prefix || strings.HasPrefix(importPath, prefix) {
			return nil
		}
	}
	return &Violation{
		ImportPath: importPath,
		Reason:     "not in allowlist for a pure core package",
		Severity:   "warning",
	}
}

// ValidatePackage loads pkgPath's actual import list via go/build and
// checks each import against a, exactly as the teacher's
// ValidatePackage does for a single kernel package.
func ValidatePackage(a Assertions, pkgPath string) ([]Violation, error) {
	pkg, err := build.Import(pkgPath, ".", 0)
	if err != nil {
		return nil, fmt.Errorf("loading package %s: %w", pkgPath, err)
	}

	var violations []Violation
	for _, imp := range pkg.Imports {
		if v := CheckImport(a, imp); v != nil {
			v.Package = pkgPath
			violations = append(violations, *v)
		}
	}
	return violations, nil
}

// Errors filters a violation slice down to severity "error", discarding
// advisory warnings. The forbidden-import scan test fails the build only
// on these.
func Errors(violations []Violation) []Violation {
	var errs []Violation
	for _, v := range violations {
		if v.Severity == "error" {
			errs = append(errs, v)
		}
	}
	return errs
}

// CorePackages lists every package under pkg/ that composes the pure
// decision kernel (L0 through L17 plus the pipeline composer and the
// mirror re-evaluator). internal/ ambient adapters are intentionally
// excluded: they are where I/O is permitted to live.
func CorePackages() []string {
	const base = "github.com/northwood-systems/govkernel/pkg/"
	names := []string{
		"foundation", "role", "trust", "action", "ruleext", "workflow",
		"aggregator", "knowledge", "narrative", "policy", "coordination",
		"canonicalize", "evidence", "readiness", "capability", "chain",
		"intent", "authorization", "execready", "mirror", "pipeline",
		"envelope",
	}
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = base + n
	}
	return paths
}

// ScanCore runs ValidatePackage over every CorePackages entry and
// collects all violations across the core in one call, matching the
// teacher's CompileTimeBoundaryCheck convenience wrapper but fanned out
// across the whole pure core instead of one package.
func ScanCore(a Assertions) ([]Violation, error) {
	var all []Violation
	for _, pkgPath := range CorePackages() {
		vs, err := ValidatePackage(a, pkgPath)
		if err != nil {
			return nil, err
		}
		all = append(all, vs...)
	}
	return all, nil
}
