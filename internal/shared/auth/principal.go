// Package auth carries the authenticated principal supplied by upstream
// middleware through the request context. The booking core never verifies
// credentials itself; it only consumes the identity attached here.
package auth

import "context"

// PermManageAppointments lets staff cancel or reschedule appointments inside
// the customer change window.
const PermManageAppointments = "appointments:manage"

// Principal is the authenticated caller identity.
type Principal struct {
	SubjectID   string
	Email       string
	Name        string
	Permissions []string
}

// IsAnonymous reports whether no authenticated subject is present.
func (p *Principal) IsAnonymous() bool {
	return p == nil || p.SubjectID == ""
}

// HasPermission reports whether the principal carries the named permission.
func (p *Principal) HasPermission(perm string) bool {
	if p == nil {
		return false
	}
	for _, have := range p.Permissions {
		if have == perm {
			return true
		}
	}
	return false
}

type principalKey struct{}

// NewContext returns a context carrying the principal.
func NewContext(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext extracts the principal from the context.
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}
