package xmlbuilder

import "fmt"

// MissingNameError is returned when an element node at any depth has an
// empty Name. The build is abandoned immediately; no partial document is
// returned. It indicates a broken tree, not a recoverable runtime
// condition.
type MissingNameError struct{}

func (e *MissingNameError) Error() string {
	return "xmlbuilder: XML node missing name"
}

// LimitError is returned when a traversal budget configured with
// WithMaxDepth or WithMaxNodes is exceeded.
type LimitError struct {
	Kind  NodeKind // kind of the node that tripped the budget
	Limit string   // "depth" or "nodes"
	Value int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("xmlbuilder: %s node exceeds max %s limit of %d", e.Kind.Name(), e.Limit, e.Value)
}
