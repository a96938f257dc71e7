// Package authz gates client screens by role. The server enforces the
// real boundary; these checks only shape what the client offers.
package authz

import "dimec-inventory/internal/core/domain"

// Decision is the outcome of an access check. There is no separate
// forbidden state: redirect to login is the uniform response for any
// denial, whether the session is missing or merely under-privileged.
type Decision struct {
	Allow           bool
	RedirectToLogin bool
}

// Authorize checks whether the session may enter a screen requiring
// one of the given roles. A nil session redirects regardless of the
// requirement; so does a role outside the required set, which means an
// empty required set never allows. Unknown roles are kept on the
// session but never match a requirement.
func Authorize(required []domain.Role, s *domain.Session) Decision {
	if s == nil {
		return Decision{RedirectToLogin: true}
	}
	if s.Role.In(required) {
		return Decision{Allow: true}
	}
	return Decision{RedirectToLogin: true}
}

// NavEntry is one navigation item with the roles allowed to see it.
type NavEntry struct {
	Key   string
	Label string
	Roles []domain.Role
}

var staff = []domain.Role{domain.RoleAdmin, domain.RoleClerk}
var everyone = []domain.Role{domain.RoleAdmin, domain.RoleClerk, domain.RoleViewer}

// Menu returns the full navigation, in display order.
func Menu() []NavEntry {
	return []NavEntry{
		{Key: "dashboard", Label: "Dashboard", Roles: everyone},
		{Key: "products", Label: "Products", Roles: everyone},
		{Key: "categories", Label: "Categories", Roles: staff},
		{Key: "suppliers", Label: "Suppliers", Roles: staff},
		{Key: "issuance", Label: "Stock Issuance", Roles: staff},
		{Key: "reports", Label: "Reports", Roles: staff},
	}
}

// VisibleMenu filters the navigation to entries the session's role may
// open. A nil session sees nothing; an entry with an empty role set is
// never shown.
func VisibleMenu(s *domain.Session) []NavEntry {
	if s == nil {
		return nil
	}
	var visible []NavEntry
	for _, e := range Menu() {
		if len(e.Roles) == 0 {
			continue
		}
		if s.Role.In(e.Roles) {
			visible = append(visible, e)
		}
	}
	return visible
}
