// Package evolution holds the pure progression rules: which evolution stage a
// level maps to, how fast meteorites fall at a level, and how a stage and an
// alien action select a sprite.
package evolution

// MinStage is the stage every life starts at.
const MinStage = 1

// MaxStage is the highest stage there is art and tuning for.
const MaxStage = 5

// Stage maps a level to its evolution stage:
// min(level/interval + 1, maxStage), always within [MinStage, MaxStage].
// A non-positive interval keeps the alien at MinStage.
func Stage(level, interval, maxStage int) int {
	if level < 0 || interval <= 0 {
		return MinStage
	}
	maxStage = min(max(maxStage, MinStage), MaxStage)
	stage := level/interval + 1
	if stage > maxStage {
		return maxStage
	}
	return stage
}

// SpeedMultiplier returns 1 + level*increment.
func SpeedMultiplier(level int, increment float64) float64 {
	return 1.0 + float64(level)*increment
}
