package usecase

import "time"

func SetClock(u *SandboxUC, now func() time.Time) {
	u.now = now
}

func SetCodeGenerator(u *SandboxUC, gen func() string) {
	u.newCode = gen
}
