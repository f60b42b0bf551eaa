package domain

// PlayerContext is the player's horizontal position and dimension.
type PlayerContext struct {
	X         int
	Z         int
	Dimension string
}

type WorldFacts struct {
	Seed             *int64
	Biome            string
	NearestStructure string
	Position         *PlayerContext
	DayTime          *int
}

// Night reports whether the in-game daytime falls between dusk and dawn.
func (f WorldFacts) Night() bool {
	if f.DayTime == nil {
		return false
	}
	tick := *f.DayTime % 24000
	return tick >= 13000 && tick < 23000
}

type Recommendation struct {
	Title     string
	Rationale string
	Priority  int
}

// Location is a resolved structure or biome position.
type Location struct {
	Name           string
	Dimension      string
	X              int
	Z              int
	DistanceBlocks float64
	Source         string
	Details        map[string]string
}

type StructureLocation = Location

type BiomeLocation = Location

type SeedKnowledge struct {
	Seed                *int64
	Confidence          float64
	Source              string
	RequirementsMissing []string
	Details             map[string]int
}

func (k SeedKnowledge) Cracked() bool {
	return k.Seed != nil
}

type Schematic struct {
	Path       string
	Name       string
	BlockCount *int
}
