package transport

type Mode string

const (
	ModeRoad    Mode = "Road"
	ModeRail         = "Rail"
	ModeUnknown      = "UNKNOWN"
)
