package game

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
)

// Profiler writes a CPU profile when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	threshold       float64 // frames per second
	startTime       time.Time
	warmup          time.Duration
}

// NewProfiler creates a profiler that writes into dir.
// An empty dir returns nil; a nil *Profiler ignores every call.
func NewProfiler(dir string) *Profiler {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("[Profiler] cannot create %s, profiling disabled: %v", dir, err)
		return nil
	}

	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		threshold:       50,
		startTime:       time.Now(),
		warmup:          3 * time.Second,
	}
}

// ObserveFPS starts a capture when fps falls below the threshold after warm-up
func (p *Profiler) ObserveFPS(fps float64, dots, comets int) {
	if p == nil || fps >= p.threshold || time.Since(p.startTime) < p.warmup {
		return
	}

	reason := fmt.Sprintf("fps%.0f-dots%d-comets%d", fps, dots, comets)
	if err := p.CaptureProfile(reason); err == nil {
		log.Printf("[Profiler] frame drop detected (%.0f FPS), capturing %v", fps, p.captureDuration)
	}
}

// CaptureProfile records a CPU profile in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", since)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	path := filepath.Join(p.profilesDir, fmt.Sprintf("frame-drop-%s-%s.cpu.prof", time.Now().Format("20060102-150405"), reason))

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		if err := p.captureCPUProfile(path); err != nil {
			log.Printf("[Profiler] capture failed: %v", err)
			return
		}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		log.Printf("[Profiler] saved %s (HeapAlloc=%d KB, NumGC=%d); view with: go tool pprof -http=:8080 %s",
			path, m.HeapAlloc/1024, m.NumGC, path)
	}()

	return nil
}

func (p *Profiler) captureCPUProfile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	return nil
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
