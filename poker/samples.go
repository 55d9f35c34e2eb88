package poker

// DefaultSamples are example hands covering every category plus a couple of
// ordinary holdings.
var DefaultSamples = []string{
	"5c 6c 7c 8c 9c",
	"Ac Ah Ad As Jd",
	"Kc Kd Ks 3d 3c",
	"Qc 3c 8c 9c Jc",
	"2c 3c 4d 5s 6h",
	"Js Jc Jd 5d 2c",
	"As Ad 2c 2h 9d",
	"As Ad 8c 2d 10c",
	"Kh 10d 2s 3h 4c",
}

// DefaultHand is the hand shown before the user has typed anything.
const DefaultHand = "As Ac 7d 10h 3s"

// Sample pairs a raw hand with its ranking.
type Sample struct {
	Hand string
	Rank string
}

// MakeSample ranks hand.
func MakeSample(hand string) Sample {
	return Sample{Hand: hand, Rank: RankHand(hand)}
}

// MakeSamples ranks each hand in order.
func MakeSamples(hands []string) []Sample {
	samples := make([]Sample, len(hands))
	for i, hand := range hands {
		samples[i] = MakeSample(hand)
	}
	return samples
}
