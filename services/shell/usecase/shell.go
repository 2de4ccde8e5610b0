package usecase

import (
	"github.com/fastbuka/rider/services/shell"
)

// Route returns the tabs when signed in, login otherwise
func (u *ShellUC) Route() shell.Route {
	if u.session.Authenticated() {
		return shell.RouteTabs
	}
	return shell.RouteLogin
}

// Tabs lists the tab bar in display order
func (u *ShellUC) Tabs() []shell.Tab {
	count := u.orders.Count()
	return []shell.Tab{
		{Route: shell.RouteHome, Title: "Home"},
		{Route: shell.RouteActive, Title: "Active"},
		{Route: shell.RouteAvailable, Title: "Available", Badge: count, ShowBadge: count > 0},
		{Route: shell.RouteEarnings, Title: "Earnings"},
		{Route: shell.RouteProfile, Title: "Profile"},
	}
}

// Guard redirects protected routes to login while signed out
func (u *ShellUC) Guard(route shell.Route) shell.Route {
	if route.IsPublic() || u.session.Authenticated() {
		return route
	}
	return shell.RouteLogin
}
