package model

// FixtureReport summarises one original/corrupted pair. It is written next
// to the fixtures so a consumer can check which offsets were corrupted.
type FixtureReport struct {
	Original  Path         `yaml:"original"`
	Corrupted Path         `yaml:"corrupted"`
	Mask      Path         `yaml:"mask,omitempty"`
	Size      int          `yaml:"size"`
	Seed      *uint64      `yaml:"seed,omitempty"`
	Burst     BurstSpec    `yaml:"burst"`
	Random    RandomSpec   `yaml:"random"`
	Bursts    []BurstEvent `yaml:"bursts"`
	Positions []int        `yaml:"random_positions"`
	Touched   int          `yaml:"touched"`
	Changed   int          `yaml:"changed"`

	OriginalSHA256  string `yaml:"original_sha256,omitempty"`
	CorruptedSHA256 string `yaml:"corrupted_sha256,omitempty"`
}

// NewFixtureReport builds a report from an injection result.
func NewFixtureReport(original, corrupted Path, seed *uint64, burst BurstSpec, random RandomSpec, in Injection) FixtureReport {
	return FixtureReport{
		Original:  original,
		Corrupted: corrupted,
		Size:      in.Size,
		Seed:      seed,
		Burst:     burst,
		Random:    random,
		Bursts:    in.Bursts,
		Positions: in.Random,
		Touched:   in.Touched(),
		Changed:   in.Changed(),
	}
}
