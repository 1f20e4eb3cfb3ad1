package replay

// Version is written into every recorded replay
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`           // Frame number
	DT float64 `json:"dt"`          // Simulated seconds
	L  bool    `json:"l,omitempty"` // Left
	R  bool    `json:"r,omitempty"` // Right
	U  bool    `json:"u,omitempty"` // Up
	D  bool    `json:"d,omitempty"` // Down
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Duration returns the total simulated time of the replay
func (d *ReplayData) Duration() float64 {
	var total float64
	for _, f := range d.Frames {
		total += f.DT
	}
	return total
}
