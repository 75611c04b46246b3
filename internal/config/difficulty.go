package config

// ApplyGrovePreset adjusts the tuning for a difficulty preset.
// Easy grants a third jump and lighter water. Hard keeps the double jump the
// raised pickups need but cuts air control and makes deep water punishing.
// Fixed and unknown presets leave cfg untouched.
func ApplyGrovePreset(cfg *GroveConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.MaxJumps = 3
		cfg.Physics.AirControl = clampF(cfg.Physics.AirControl*1.5, 0, 1)
		scaleWater(&cfg.Water, 1.25)
	case DifficultyHard:
		cfg.Physics.AirControl = clampF(cfg.Physics.AirControl*0.6, 0, 1)
		scaleWater(&cfg.Water, 0.75)
		cfg.Water.Deep.RunSink *= 1.5
	}
}

// scaleWater multiplies every slow factor, keeping each within [0, 1].
func scaleWater(w *WaterConfig, factor float64) {
	w.Shallow.Slow = clampF(w.Shallow.Slow*factor, 0, 1)
	w.Medium.Slow = clampF(w.Medium.Slow*factor, 0, 1)
	w.Deep.Slow = clampF(w.Deep.Slow*factor, 0, 1)
	w.Deep.RunSlow = clampF(w.Deep.RunSlow*factor, 0, 1)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
