package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"

	"blindsteg/internal/logging"
)

var (
	// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5

	profilerMu  sync.Mutex
	cpuProfiler *CPUProfilerStruct
	memProfiler *MemProfilerStruct
)

type CPUProfilerStruct struct {
	profileOutput io.WriteCloser
}

type MemProfilerStruct struct {
	dumpPath           string
	heapDumps          [][]byte
	shouldProfilerStop chan bool
	stopped            chan struct{}
}

func StartCPUProfiler(profilePath string) error {
	profileOutput, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create CPU profile: %w", err)
	}

	profilerMu.Lock()
	defer profilerMu.Unlock()
	runtime.SetCPUProfileRate(500)
	if err = pprof.StartCPUProfile(profileOutput); err != nil {
		_ = profileOutput.Close()
		return fmt.Errorf("failed to start CPU profiler: %w", err)
	}
	cpuProfiler = &CPUProfilerStruct{profileOutput: profileOutput}
	return nil
}

func StopCPUProfiler() error {
	profilerMu.Lock()
	defer profilerMu.Unlock()
	if cpuProfiler == nil {
		return nil
	}

	pprof.StopCPUProfile()
	err := cpuProfiler.profileOutput.Close()
	cpuProfiler = nil
	return err
}

func StartMemoryProfiler(profileDumpPath string) {
	if MemorySampleRate <= 0 {
		return
	}

	profilerMu.Lock()
	defer profilerMu.Unlock()
	profiler := &MemProfilerStruct{
		dumpPath:           profileDumpPath,
		shouldProfilerStop: make(chan bool),
		stopped:            make(chan struct{}),
	}
	memProfiler = profiler

	go func() {
		defer close(profiler.stopped)
		ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-profiler.shouldProfilerStop:
				return
			case <-ticker.C:
				profiler.dump()
			}
		}
	}()
}

func (m *MemProfilerStruct) dump() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err != nil {
		logging.BuildLogger().WithError(err).Warn("Error taking heap profile")
		return
	}
	m.heapDumps = append(m.heapDumps, w.Bytes())
}

func StopMemoryProfiler() error {
	profilerMu.Lock()
	defer profilerMu.Unlock()
	if memProfiler == nil {
		return nil
	}

	profiler := memProfiler
	memProfiler = nil
	close(profiler.shouldProfilerStop)
	<-profiler.stopped
	profiler.dump()

	if err := os.MkdirAll(profiler.dumpPath, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create memory profile directory: %w", err)
	}
	for dIdx, dump := range profiler.heapDumps {
		dumpPath := filepath.Join(profiler.dumpPath, fmt.Sprintf("mem-%d.mprof", dIdx))
		if err := os.WriteFile(dumpPath, dump, 0664); err != nil {
			return fmt.Errorf("failed to write memory profile: %w", err)
		}
	}
	return nil
}

// StopProfilers flushes whichever profilers are running
func StopProfilers() error {
	cpuErr := StopCPUProfiler()
	memErr := StopMemoryProfiler()
	if cpuErr != nil {
		return cpuErr
	}
	return memErr
}
