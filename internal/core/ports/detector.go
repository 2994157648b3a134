package ports

// EnvDetector reports properties of the execution environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type EnvDetector interface {
	// CI reports whether a CI environment is active.
	CI() bool

	// Interactive reports whether stdout is a terminal.
	Interactive() bool

	// Codename returns the distribution codename of the running system.
	Codename() (string, error)
}
