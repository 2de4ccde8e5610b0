package usecase

import (
	"github.com/fastbuka/rider/services/shell"
)

type ShellUC struct {
	session shell.Session
	orders  shell.OrderCounter
}

// NewShellUC creates a new shell usecase instance
func NewShellUC(session shell.Session, orders shell.OrderCounter) *ShellUC {
	return &ShellUC{
		session: session,
		orders:  orders,
	}
}
