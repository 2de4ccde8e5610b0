package shell

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fastbuka/rider/services/shell ShellUC

// ShellUC decides which screens are reachable
type ShellUC interface {
	// Route is the root screen for the current session
	Route() Route
	Tabs() []Tab
	// Guard returns route, or login when route needs a session that is absent
	Guard(route Route) Route
}

// Session is the part of the session the shell reads
type Session interface {
	Authenticated() bool
}

// OrderCounter provides the available orders badge
type OrderCounter interface {
	Count() int
}
