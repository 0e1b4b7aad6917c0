package game

// ReferenceFrameMs is the frame length all per-frame constants are expressed in.
const ReferenceFrameMs = 16.0

type Tuning struct {
	GroundHeight float64 `yaml:"groundHeight"`
	JumpImpulse  float64 `yaml:"jumpImpulse"`
	Gravity      float64 `yaml:"gravity"`
	BaseSpeed    float64 `yaml:"baseSpeed"`

	SpawnBaseMs      float64 `yaml:"spawnBaseMs"`
	SpawnMinMs       float64 `yaml:"spawnMinMs"`
	SpawnPerPointMs  float64 `yaml:"spawnPerPointMs"`
	CactusHeightMin  float64 `yaml:"cactusHeightMin"`
	CactusHeightMax  float64 `yaml:"cactusHeightMax"`
	CactusWidthMin   float64 `yaml:"cactusWidthMin"`
	CactusWidthMax   float64 `yaml:"cactusWidthMax"`
	BirdWidth        float64 `yaml:"birdWidth"`
	BirdHeight       float64 `yaml:"birdHeight"`
	BirdAltitudeLow  float64 `yaml:"birdAltitudeLow"`
	BirdAltitudeHigh float64 `yaml:"birdAltitudeHigh"`
	BirdMinScore     int     `yaml:"birdMinScore"`
	BirdChance       float64 `yaml:"birdChance"`
	ShapeVariants    int     `yaml:"shapeVariants"`

	PlayerX           float64 `yaml:"playerX"`
	PlayerMaxSize     float64 `yaml:"playerMaxSize"`
	PlayerSizeRatio   float64 `yaml:"playerSizeRatio"`
	DuckWidthRatio    float64 `yaml:"duckWidthRatio"`
	DuckHeightRatio   float64 `yaml:"duckHeightRatio"`
	PassMargin        float64 `yaml:"passMargin"`
	PlayerHitbox      float64 `yaml:"playerHitbox"`
	ObstacleHitbox    float64 `yaml:"obstacleHitbox"`
	VictoryScore      int     `yaml:"victoryScore"`
	DefeatPayoutRatio float64 `yaml:"defeatPayoutRatio"`

	RunFrameMs     float64 `yaml:"runFrameMs"`
	DuckFrameMs    float64 `yaml:"duckFrameMs"`
	DeathFrameMs   float64 `yaml:"deathFrameMs"`
	BirdFlapMs     float64 `yaml:"birdFlapMs"`
	CountdownFrom  int     `yaml:"countdownFrom"`
	CountdownStep  float64 `yaml:"countdownStepMs"`
	OutcomeDelayMs float64 `yaml:"outcomeDelayMs"`
	ComboShowMs    float64 `yaml:"comboShowMs"`

	ParticleDecay  float64 `yaml:"particleDecay"`
	DustParticles  int     `yaml:"dustParticles"`
	BurstParticles int     `yaml:"burstParticles"`

	StarsParallax  float64 `yaml:"starsParallax"`
	CloudsParallax float64 `yaml:"cloudsParallax"`
	GroundParallax float64 `yaml:"groundParallax"`
}

func DefaultTuning() Tuning {
	return Tuning{
		GroundHeight: 50,
		JumpImpulse:  -16,
		Gravity:      0.7,
		BaseSpeed:    5,

		SpawnBaseMs:      1800,
		SpawnMinMs:       600,
		SpawnPerPointMs:  10,
		CactusHeightMin:  30,
		CactusHeightMax:  60,
		CactusWidthMin:   15,
		CactusWidthMax:   30,
		BirdWidth:        40,
		BirdHeight:       30,
		BirdAltitudeLow:  -40,
		BirdAltitudeHigh: -80,
		BirdMinScore:     20,
		BirdChance:       0.3,
		ShapeVariants:    3,

		PlayerX:           50,
		PlayerMaxSize:     60,
		PlayerSizeRatio:   0.15,
		DuckWidthRatio:    1.2,
		DuckHeightRatio:   0.6,
		PassMargin:        10,
		PlayerHitbox:      0.8,
		ObstacleHitbox:    0.9,
		VictoryScore:      100,
		DefeatPayoutRatio: 0.5,

		RunFrameMs:     120,
		DuckFrameMs:    240,
		DeathFrameMs:   300,
		BirdFlapMs:     100,
		CountdownFrom:  3,
		CountdownStep:  1000,
		OutcomeDelayMs: 1500,
		ComboShowMs:    1000,

		ParticleDecay:  0.02,
		DustParticles:  10,
		BurstParticles: 20,

		StarsParallax:  0.001,
		CloudsParallax: 0.02,
		GroundParallax: 0.1,
	}
}
