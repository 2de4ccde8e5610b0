package shell

// Route names a screen of the app
type Route string

const (
	RouteLogin       Route = "login"
	RouteRegister    Route = "register"
	RouteVerifyEmail Route = "verify_email"
	RouteTabs        Route = "tabs"

	RouteHome      Route = "home"
	RouteActive    Route = "active"
	RouteAvailable Route = "available"
	RouteEarnings  Route = "earnings"
	RouteProfile   Route = "profile"
	RouteSettings  Route = "settings"
)

var publicRoutes = map[Route]bool{
	RouteLogin:       true,
	RouteRegister:    true,
	RouteVerifyEmail: true,
}

// IsPublic reports whether the route is reachable while signed out
func (r Route) IsPublic() bool {
	return publicRoutes[r]
}

// Tab is one entry of the bottom tab bar
type Tab struct {
	Route Route
	Title string
	// Badge is only shown when ShowBadge is set
	Badge     int
	ShowBadge bool
}
