package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player PlayerConfig `json:"player"`
}

type PlayerConfig struct {
	ID        string         `json:"id"`
	Collider  SizeConfig     `json:"collider"`
	Footprint SizeConfig     `json:"footprint"`
	Depth     float64        `json:"depth"`
	Spawn     PositionConfig `json:"spawn"`
	Sprite    SpriteConfig   `json:"sprite"`
}

type SpriteConfig struct {
	Sheet      string                     `json:"sheet"`
	FrameTime  float64                    `json:"frameTime"` // seconds per frame
	Animations map[string]AnimationConfig `json:"animations"`
}

type AnimationConfig struct {
	Row    int `json:"row"`
	Frames int `json:"frames"`
}
