package monitoring

import (
	"math"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewFrameMonitor(t *testing.T) {
	fm := NewFrameMonitor(time.Second)
	if fm == nil {
		t.Fatal("NewFrameMonitor returned nil")
	}
	if !fm.enableDetailed {
		t.Error("Expected enableDetailed to be true")
	}
	if time.Since(fm.startTime) > time.Second {
		t.Error("Start time should be recent")
	}
}

func TestFrameTiming(t *testing.T) {
	fm := NewFrameMonitor(time.Second)

	timer := fm.StartFrame()
	time.Sleep(5 * time.Millisecond)
	timer.EndFrame()

	if fm.frameCount.Load() != 1 {
		t.Errorf("Expected frame count 1, got %d", fm.frameCount.Load())
	}
	if got := fm.frameTime.Load(); got < uint64(5*time.Millisecond) {
		t.Errorf("Expected frame time >= 5ms, got %dns", got)
	}
}

func TestRollingAverage(t *testing.T) {
	fm := NewFrameMonitor(time.Second)
	fm.RecordFrame(10 * time.Millisecond)
	fm.RecordFrame(20 * time.Millisecond)

	want := float64(10*time.Millisecond) + smoothing*float64(10*time.Millisecond)
	if math.Abs(fm.avgFrameTime-want) > 1 {
		t.Errorf("avgFrameTime = %v, want %v", fm.avgFrameTime, want)
	}

	m := fm.GetCurrentMetrics()
	if m.FrameTime != 20*time.Millisecond {
		t.Errorf("FrameTime = %v, want 20ms", m.FrameTime)
	}
	if math.Abs(m.FramesPerSecond-50) > 1e-9 {
		t.Errorf("FramesPerSecond = %v, want 50", m.FramesPerSecond)
	}
}

func TestProfileRecordsPasses(t *testing.T) {
	fm := NewFrameMonitor(time.Second)
	fm.Profile(PassWorld, func() { time.Sleep(time.Millisecond) })
	fm.RecordPass(PassSprites, 3*time.Millisecond)
	fm.RecordSprites(4, 1234)

	m := fm.GetCurrentMetrics()
	if m.WorldPass < time.Millisecond {
		t.Errorf("WorldPass = %v, want >= 1ms", m.WorldPass)
	}
	if m.SpritePass != 3*time.Millisecond {
		t.Errorf("SpritePass = %v, want 3ms", m.SpritePass)
	}
	if m.Sprites != 4 || m.SpritePixels != 1234 {
		t.Errorf("sprite stats = %d/%d, want 4/1234", m.Sprites, m.SpritePixels)
	}

	stats := fm.GetDetailedStats()
	for _, key := range []string{"avg_fps", "avg_world_pass_ms", "avg_sprite_pass_ms", "sprite_pixels", "memory_alloc_mb"} {
		if _, ok := stats[key]; !ok {
			t.Errorf("detailed stats missing %q", key)
		}
	}
}

func TestCheckPerformanceAlerts(t *testing.T) {
	fm := NewFrameMonitor(time.Second)
	if alerts := fm.CheckPerformanceAlerts(30); len(alerts) != 0 {
		t.Errorf("no frames recorded, got %d alerts", len(alerts))
	}

	fm.RecordPass(PassWorld, 45*time.Millisecond)
	fm.RecordFrame(50 * time.Millisecond)

	types := map[string]bool{}
	for _, a := range fm.CheckPerformanceAlerts(30) {
		types[a.Type] = true
	}
	if !types["low_fps"] || !types["world_pass_heavy"] {
		t.Errorf("alerts = %v, want low_fps and world_pass_heavy", types)
	}
}

func TestMaybeLog(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := zap.New(core)

	fm := NewFrameMonitor(time.Hour)
	fm.RecordFrame(10 * time.Millisecond)
	if fm.MaybeLog(log, 30) {
		t.Error("logged before the interval elapsed")
	}

	fm.logInterval = time.Nanosecond
	time.Sleep(time.Millisecond)
	if !fm.MaybeLog(log, 30) {
		t.Fatal("expected a log line")
	}
	if logs.FilterMessage("frame stats").Len() != 1 {
		t.Errorf("expected one frame stats entry, got %d", logs.FilterMessage("frame stats").Len())
	}
}

func TestConcurrentRecording(t *testing.T) {
	fm := NewFrameMonitor(time.Second)
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				fm.RecordFrame(time.Millisecond)
				fm.RecordPass(PassWorld, time.Microsecond)
				_ = fm.GetDetailedStats()
			}
		}()
	}
	wg.Wait()

	if got := fm.frameCount.Load(); got != 100 {
		t.Errorf("frame count = %d, want 100", got)
	}
}

func TestReset(t *testing.T) {
	fm := NewFrameMonitor(time.Second)
	fm.RecordFrame(time.Millisecond)
	fm.RecordSprites(2, 10)
	fm.Reset()

	if fm.frameCount.Load() != 0 || fm.avgFrameTime != 0 {
		t.Error("Reset left frame counters set")
	}
	if m := fm.GetCurrentMetrics(); m.Sprites != 0 || m.SpritePixels != 0 {
		t.Errorf("Reset left sprite stats: %+v", m)
	}
}
