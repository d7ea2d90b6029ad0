// Package scm defines the source-control collaborator ports the decision
// engine consumes. Implementations live under internal/infrastructure; the
// engine itself never touches a transport directly, so it can be exercised
// with fake collaborators.
package scm

import (
	"fmt"
	"strings"
)

// Repository identifies a hosted repository by owner and name.
type Repository struct {
	Owner string
	Name  string
}

// ParseRepository parses an "owner/name" identifier into a Repository.
func ParseRepository(s string) (Repository, error) {
	owner, name, ok := strings.Cut(s, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return Repository{}, fmt.Errorf("invalid repository identifier %q (expected owner/name)", s)
	}
	return Repository{Owner: owner, Name: name}, nil
}

// String returns the "owner/name" form of the repository identifier.
func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}
