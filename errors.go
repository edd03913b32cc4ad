package declschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes reported by Lint.
const (
	// CodeEmptyAccessor: an accessor container neither declares nor inherits
	// a getter of any return type. Having no accessor-typed getters alone is
	// normal for projects without children. The container is still admitted
	// into the schema, with no properties.
	CodeEmptyAccessor = "empty_accessor"
	// CodeAccessorOutsideClosure: an accessor container is not reachable from
	// the root accessor and will never be admitted.
	CodeAccessorOutsideClosure = "accessor_unreachable"
	// CodeMissingTopLevel: the catalog does not declare the top-level receiver.
	CodeMissingTopLevel = "missing_top_level"
)

// Issue is a single non-fatal catalog finding.
type Issue struct {
	Type    string // qualified type name, empty for catalog-wide findings
	Code    string
	Message string
}

// Issues is a collection of findings that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		if iss[i].Type == "" {
			b.WriteString(iss[i].Code)
			continue
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Type)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
