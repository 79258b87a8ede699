// Package monitoring collects per-frame render statistics.
package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// smoothing is the weight of the newest sample in the rolling averages.
const smoothing = 0.1

// Pass names accepted by Profile.
const (
	PassWorld   = "world"
	PassSprites = "sprites"
	PassPresent = "present"
)

// FrameMonitor tracks frame, world-pass and sprite-pass timings. Counters are
// atomic so the game loop and a log ticker may touch it concurrently.
type FrameMonitor struct {
	frameCount   atomic.Uint64
	frameTime    atomic.Uint64 // nanoseconds, last frame
	worldTime    atomic.Uint64
	spriteTime   atomic.Uint64
	presentTime  atomic.Uint64
	spritePixels atomic.Uint64
	sprites      atomic.Int32

	mutex          sync.RWMutex
	avgFrameTime   float64 // nanoseconds
	avgWorldTime   float64
	avgSpriteTime  float64
	startTime      time.Time
	lastLogged     time.Time
	logInterval    time.Duration
	enableDetailed bool
}

// NewFrameMonitor creates a monitor that logs at most once per interval.
func NewFrameMonitor(logInterval time.Duration) *FrameMonitor {
	now := time.Now()
	return &FrameMonitor{
		startTime:      now,
		lastLogged:     now,
		logInterval:    logInterval,
		enableDetailed: true,
	}
}

// FrameTimer measures one frame.
type FrameTimer struct {
	monitor   *FrameMonitor
	startTime time.Time
}

// StartFrame begins frame timing.
func (fm *FrameMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{monitor: fm, startTime: time.Now()}
}

// EndFrame completes frame timing.
func (ft *FrameTimer) EndFrame() {
	ft.monitor.RecordFrame(time.Since(ft.startTime))
}

// RecordFrame stores a frame duration and folds it into the average.
func (fm *FrameMonitor) RecordFrame(d time.Duration) {
	fm.frameTime.Store(uint64(d.Nanoseconds()))
	n := fm.frameCount.Add(1)

	fm.mutex.Lock()
	fm.avgFrameTime = rolling(fm.avgFrameTime, float64(d.Nanoseconds()), n)
	fm.mutex.Unlock()
}

// RecordPass stores the duration of a named render pass.
func (fm *FrameMonitor) RecordPass(name string, d time.Duration) {
	ns := uint64(d.Nanoseconds())
	n := fm.frameCount.Load() + 1

	switch name {
	case PassWorld:
		fm.worldTime.Store(ns)
		fm.mutex.Lock()
		fm.avgWorldTime = rolling(fm.avgWorldTime, float64(ns), n)
		fm.mutex.Unlock()
	case PassSprites:
		fm.spriteTime.Store(ns)
		fm.mutex.Lock()
		fm.avgSpriteTime = rolling(fm.avgSpriteTime, float64(ns), n)
		fm.mutex.Unlock()
	case PassPresent:
		fm.presentTime.Store(ns)
	}
}

// Profile runs fn and records its duration under name.
func (fm *FrameMonitor) Profile(name string, fn func()) time.Duration {
	start := time.Now()
	fn()
	d := time.Since(start)
	fm.RecordPass(name, d)
	return d
}

// RecordSprites stores the sprite count and pixels written this frame.
func (fm *FrameMonitor) RecordSprites(count, pixels int) {
	fm.sprites.Store(int32(count))
	fm.spritePixels.Store(uint64(pixels))
}

func rolling(avg, sample float64, n uint64) float64 {
	if n <= 1 || avg == 0 {
		return sample
	}
	return avg + smoothing*(sample-avg)
}

// FrameMetrics is a snapshot of the latest frame.
type FrameMetrics struct {
	FramesPerSecond float64
	FrameTime       time.Duration
	WorldPass       time.Duration
	SpritePass      time.Duration
	Sprites         int
	SpritePixels    uint64
}

// GetCurrentMetrics returns the latest frame's metrics.
func (fm *FrameMonitor) GetCurrentMetrics() FrameMetrics {
	frameTime := fm.frameTime.Load()
	fps := 0.0
	if frameTime > 0 {
		fps = float64(time.Second) / float64(frameTime)
	}
	return FrameMetrics{
		FramesPerSecond: fps,
		FrameTime:       time.Duration(frameTime),
		WorldPass:       time.Duration(fm.worldTime.Load()),
		SpritePass:      time.Duration(fm.spriteTime.Load()),
		Sprites:         int(fm.sprites.Load()),
		SpritePixels:    fm.spritePixels.Load(),
	}
}

// GetDetailedStats returns averages and runtime figures keyed for logging.
func (fm *FrameMonitor) GetDetailedStats() map[string]interface{} {
	fm.mutex.RLock()
	defer fm.mutex.RUnlock()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	avgFPS := 0.0
	if fm.avgFrameTime > 0 {
		avgFPS = float64(time.Second) / fm.avgFrameTime
	}

	return map[string]interface{}{
		"uptime_seconds":     time.Since(fm.startTime).Seconds(),
		"frame_count":        fm.frameCount.Load(),
		"avg_fps":            avgFPS,
		"avg_frame_time_ms":  fm.avgFrameTime / 1e6,
		"avg_world_pass_ms":  fm.avgWorldTime / 1e6,
		"avg_sprite_pass_ms": fm.avgSpriteTime / 1e6,
		"present_ms":         float64(fm.presentTime.Load()) / 1e6,
		"sprites":            fm.sprites.Load(),
		"sprite_pixels":      fm.spritePixels.Load(),
		"memory_alloc_mb":    memStats.Alloc / 1024 / 1024,
		"gc_cycles":          memStats.NumGC,
		"goroutines":         runtime.NumGoroutine(),
	}
}

// PerformanceAlert is a threshold violation.
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
}

// CheckPerformanceAlerts reports a low average frame rate and a world pass
// taking most of the frame budget.
func (fm *FrameMonitor) CheckPerformanceAlerts(minFPS float64) []PerformanceAlert {
	var alerts []PerformanceAlert

	fm.mutex.RLock()
	avgFrame, avgWorld := fm.avgFrameTime, fm.avgWorldTime
	fm.mutex.RUnlock()

	if avgFrame > 0 {
		if fps := float64(time.Second) / avgFrame; fps < minFPS {
			alerts = append(alerts, PerformanceAlert{
				Type:      "low_fps",
				Message:   "average frame rate below target",
				Value:     fps,
				Threshold: minFPS,
			})
		}
		if share := avgWorld / avgFrame; share > 0.8 {
			alerts = append(alerts, PerformanceAlert{
				Type:      "world_pass_heavy",
				Message:   "world pass takes most of the frame; consider a larger stride",
				Value:     share,
				Threshold: 0.8,
			})
		}
	}
	return alerts
}

// MaybeLog writes a stats line when the log interval has elapsed. It returns
// true when it logged.
func (fm *FrameMonitor) MaybeLog(log *zap.Logger, minFPS float64) bool {
	fm.mutex.Lock()
	if fm.logInterval <= 0 || time.Since(fm.lastLogged) < fm.logInterval {
		fm.mutex.Unlock()
		return false
	}
	fm.lastLogged = time.Now()
	fm.mutex.Unlock()

	stats := fm.GetDetailedStats()
	fields := make([]zap.Field, 0, len(stats))
	for k, v := range stats {
		fields = append(fields, zap.Any(k, v))
	}
	log.Debug("frame stats", fields...)

	for _, a := range fm.CheckPerformanceAlerts(minFPS) {
		log.Warn(a.Message, zap.String("type", a.Type), zap.Float64("value", a.Value), zap.Float64("threshold", a.Threshold))
	}
	return true
}

// Reset clears every counter.
func (fm *FrameMonitor) Reset() {
	fm.frameCount.Store(0)
	fm.frameTime.Store(0)
	fm.worldTime.Store(0)
	fm.spriteTime.Store(0)
	fm.presentTime.Store(0)
	fm.spritePixels.Store(0)
	fm.sprites.Store(0)

	fm.mutex.Lock()
	fm.avgFrameTime = 0
	fm.avgWorldTime = 0
	fm.avgSpriteTime = 0
	fm.startTime = time.Now()
	fm.mutex.Unlock()
}
