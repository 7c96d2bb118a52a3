// Package knowledge implements L6: a closed bug-type registry with
// bilingual (English/Hindi) explanations. LookupBugType never approximates
// — any input outside the registry resolves to UNKNOWN, never a near match.
package knowledge

import (
	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/unicode/norm"
)

// BugType is the closed set of recognized bug categories.
type BugType string

const (
	SQLInjection        BugType = "SQL_INJECTION"
	XSS                 BugType = "CROSS_SITE_SCRIPTING"
	CSRF                BugType = "CROSS_SITE_REQUEST_FORGERY"
	PathTraversal       BugType = "PATH_TRAVERSAL"
	InsecureDeserial    BugType = "INSECURE_DESERIALIZATION"
	BrokenAuth          BugType = "BROKEN_AUTHENTICATION"
	SensitiveDataExpose BugType = "SENSITIVE_DATA_EXPOSURE"
	SSRF                BugType = "SERVER_SIDE_REQUEST_FORGERY"
	RaceCondition       BugType = "RACE_CONDITION"
	BufferOverflow      BugType = "BUFFER_OVERFLOW"
	PrivilegeEscalation BugType = "PRIVILEGE_ESCALATION"
	Unknown             BugType = "UNKNOWN"
)

// Explanation mirrors spec's BugExplanation. UNKNOWN carries no fabricated
// CWE id.
type Explanation struct {
	Type    BugType
	English string
	Hindi   string
	CWE     string // empty for UNKNOWN
}

// RegistryVersion identifies the edition of the closed bug-type table, the
// same role Masterminds/semver plays for the teacher's installed pack
// versions.
var RegistryVersion = semver.MustParse("1.0.0")

var registry = map[BugType]Explanation{
	SQLInjection: {
		Type:    SQLInjection,
		English: "Untrusted input is concatenated into a SQL statement without parameterization.",
		Hindi:   normalizeHindi("असुरक्षित इनपुट को बिना पैरामीटरीकरण के SQL कथन में जोड़ा गया है।"),
		CWE:     "CWE-89",
	},
	XSS: {
		Type:    XSS,
		English: "Untrusted input is rendered into a page without output encoding.",
		Hindi:   normalizeHindi("असुरक्षित इनपुट को आउटपुट एन्कोडिंग के बिना पृष्ठ में प्रस्तुत किया गया है।"),
		CWE:     "CWE-79",
	},
	CSRF: {
		Type:    CSRF,
		English: "A state-changing request lacks a per-session anti-forgery token.",
		Hindi:   normalizeHindi("एक स्थिति-परिवर्तनकारी अनुरोध में प्रति-सत्र एंटी-फोर्जरी टोकन का अभाव है।"),
		CWE:     "CWE-352",
	},
	PathTraversal: {
		Type:    PathTraversal,
		English: "A file path is built from untrusted input without normalization or containment.",
		Hindi:   normalizeHindi("एक फ़ाइल पथ सामान्यीकरण या रोकथाम के बिना असुरक्षित इनपुट से बनाया गया है।"),
		CWE:     "CWE-22",
	},
	InsecureDeserial: {
		Type:    InsecureDeserial,
		English: "Untrusted bytes are deserialized into live objects without type restriction.",
		Hindi:   normalizeHindi("असुरक्षित बाइट्स को प्रकार प्रतिबंध के बिना सक्रिय वस्तुओं में डिसेरियलाइज़ किया गया है।"),
		CWE:     "CWE-502",
	},
	BrokenAuth: {
		Type:    BrokenAuth,
		English: "Session or credential handling allows an attacker to assume another identity.",
		Hindi:   normalizeHindi("सत्र या क्रेडेंशियल प्रबंधन किसी हमलावर को दूसरी पहचान अपनाने की अनुमति देता है।"),
		CWE:     "CWE-287",
	},
	SensitiveDataExpose: {
		Type:    SensitiveDataExpose,
		English: "Sensitive data is transmitted or stored without adequate protection.",
		Hindi:   normalizeHindi("संवेदनशील डेटा को पर्याप्त सुरक्षा के बिना प्रसारित या संग्रहीत किया गया है।"),
		CWE:     "CWE-200",
	},
	SSRF: {
		Type:    SSRF,
		English: "A server-side request target is influenced by untrusted input without allow-listing.",
		Hindi:   normalizeHindi("एक सर्वर-साइड अनुरोध लक्ष्य अनुमति-सूची के बिना असुरक्षित इनपुट से प्रभावित है।"),
		CWE:     "CWE-918",
	},
	RaceCondition: {
		Type:    RaceCondition,
		English: "A shared resource is accessed without sufficient synchronization, producing a time-of-check/time-of-use gap.",
		Hindi:   normalizeHindi("एक साझा संसाधन को पर्याप्त सिंक्रनाइज़ेशन के बिना एक्सेस किया गया है।"),
		CWE:     "CWE-362",
	},
	BufferOverflow: {
		Type:    BufferOverflow,
		English: "A write exceeds the bounds of its allocated buffer.",
		Hindi:   normalizeHindi("एक राइट अपने आवंटित बफर की सीमाओं से अधिक है।"),
		CWE:     "CWE-120",
	},
	PrivilegeEscalation: {
		Type:    PrivilegeEscalation,
		English: "A lower-privileged actor obtains higher-privileged capability without an authorization check.",
		Hindi:   normalizeHindi("एक कम-विशेषाधिकार प्राप्त अभिनेता प्राधिकरण जांच के बिना उच्च-विशेषाधिकार क्षमता प्राप्त करता है।"),
		CWE:     "CWE-269",
	},
	Unknown: {
		Type:    Unknown,
		English: "No registered bug type matches the supplied identifier.",
		Hindi:   normalizeHindi("आपूर्ति किए गए पहचानकर्ता से कोई पंजीकृत बग प्रकार मेल नहीं खाता।"),
		CWE:     "",
	},
}

func normalizeHindi(s string) string {
	return norm.NFC.String(s)
}

// LookupBugType returns the exact registry entry for s, or UNKNOWN if s
// names nothing in the closed set. There is no string-similarity fallback:
// a near match is treated identically to no match.
func LookupBugType(s string) Explanation {
	if e, ok := registry[BugType(s)]; ok {
		return e
	}
	return registry[Unknown]
}
