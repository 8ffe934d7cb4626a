package terrain

import "math/rand"

// defaultSeed is used when callers pass seed==0 to WithSeed, or no source at all.
// Arbitrary but stable so default generation is reproducible.
const defaultSeed int64 = 1

// Random-value ranges for generated cells.
const (
	maxHillElevation   = 5.0
	maxNormalElevation = 2.0
	maxWindResistance  = 3.0
)

// GenerateOption configures GenerateRandom.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	rng *rand.Rand
}

// WithSeed draws terrain from a fresh deterministic source.
// seed==0 selects the package default seed.
func WithSeed(seed int64) GenerateOption {
	return func(c *generateConfig) {
		if seed == 0 {
			seed = defaultSeed
		}
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws terrain from rng. A *rand.Rand is not goroutine-safe;
// do not share it across concurrent generators.
func WithRand(rng *rand.Rand) GenerateOption {
	return func(c *generateConfig) {
		c.rng = rng
	}
}

// GenerateRandom overwrites every cell by rolling u ∈ [0,1):
//
//	u < obstacleP                      → Obstacle
//	u < obstacleP + hillP              → Hill,     elevation ∈ [0,5)
//	u < obstacleP + hillP + windP      → WindZone, wind      ∈ [0,3)
//	otherwise                          → Normal,   elevation ∈ [0,2)
//
// Fields not mentioned for a kind are reset to zero. Without an option the
// default seed is used, so two calls with identical arguments produce the same map.
//
// Returns ErrBadProbability if any probability is negative or NaN, or their sum exceeds 1.
// Complexity: O(W×H).
func (g *Grid) GenerateRandom(obstacleP, hillP, windP float64, opts ...GenerateOption) error {
	// Written as negations so NaN fails every bound.
	if !(obstacleP >= 0) || !(hillP >= 0) || !(windP >= 0) || !(obstacleP+hillP+windP <= 1) {
		return ErrBadProbability
	}
	cfg := generateConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	rng := cfg.rng

	hillEdge := obstacleP + hillP
	windEdge := hillEdge + windP
	for i := range g.kinds {
		g.elevation[i] = 0
		g.wind[i] = 0

		roll := rng.Float64()
		switch {
		case roll < obstacleP:
			g.kinds[i] = Obstacle
		case roll < hillEdge:
			g.kinds[i] = Hill
			g.elevation[i] = rng.Float64() * maxHillElevation
		case roll < windEdge:
			g.kinds[i] = WindZone
			g.wind[i] = rng.Float64() * maxWindResistance
		default:
			g.kinds[i] = Normal
			g.elevation[i] = rng.Float64() * maxNormalElevation
		}
	}

	return nil
}
