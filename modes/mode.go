package modes

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	// ModeDevelopment skips host integration: no config file discovery,
	// no systemd journal
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}
