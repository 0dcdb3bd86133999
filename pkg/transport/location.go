package transport

// Location is a named place in the registry. Name is the unique,
// case-sensitive key used everywhere else in the system.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ModalEdge is one record from a per-mode distance table. An absent edge
// simply means the mode has no known connection between that pair.
type ModalEdge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
	Mode     Mode    `json:"mode"`
}
