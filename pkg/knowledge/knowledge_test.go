package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func TestLookupBugTypeExactMatch(t *testing.T) {
	e := LookupBugType(string(SQLInjection))
	assert.Equal(t, SQLInjection, e.Type)
	assert.Equal(t, "CWE-89", e.CWE)
	assert.NotEmpty(t, e.English)
	assert.NotEmpty(t, e.Hindi)
}

func TestLookupBugTypeNoFuzzyMatch(t *testing.T) {
	// A near-miss on SQL_INJECTION's spelling must resolve to UNKNOWN, not
	// to the closest registered entry.
	e := LookupBugType("SQL_INJECTON")
	assert.Equal(t, Unknown, e.Type)
	assert.Empty(t, e.CWE)
}

func TestLookupBugTypeUnknownInput(t *testing.T) {
	e := LookupBugType("")
	assert.Equal(t, Unknown, e.Type)
}

func TestRegistryCoversEveryClosedType(t *testing.T) {
	allTypes := []BugType{
		SQLInjection, XSS, CSRF, PathTraversal, InsecureDeserial, BrokenAuth,
		SensitiveDataExpose, SSRF, RaceCondition, BufferOverflow,
		PrivilegeEscalation, Unknown,
	}
	for _, bt := range allTypes {
		e := LookupBugType(string(bt))
		assert.Equal(t, bt, e.Type, "registry entry for %s should round-trip", bt)
	}
}

func TestHindiTextIsNFCNormalized(t *testing.T) {
	e := LookupBugType(string(XSS))
	assert.True(t, norm.NFC.IsNormalString(e.Hindi))
}
