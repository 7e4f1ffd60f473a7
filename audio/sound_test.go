package audio

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-snake/constant"
)

// drain counts samples until the streamer is exhausted
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] > peak {
				peak = smp[0]
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Streamer never ended")
	return 0, 0
}

func TestStreamLengths(t *testing.T) {
	sr := beep.SampleRate(constant.AudioSampleRate)

	tests := []struct {
		sound Sound
		want  int
	}{
		{SoundEat, sr.N(constant.EatSoundDuration)},
		{SoundCrash, 2 * sr.N(constant.CrashSoundDuration)},
		{SoundCleared, len(constant.ClearedSoundFreqs) * sr.N(constant.ClearedSoundNoteDuration)},
	}

	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			st, err := Stream(sr, tt.sound, 0)
			if err != nil {
				t.Fatalf("Stream failed: %v", err)
			}
			got, peak := drain(t, st)
			if got != tt.want {
				t.Errorf("Expected %d samples, got %d", tt.want, got)
			}
			if peak <= 0 {
				t.Error("Expected audible samples")
			}
		})
	}
}

func TestStreamVolume(t *testing.T) {
	sr := beep.SampleRate(constant.AudioSampleRate)

	loud, _ := Stream(sr, SoundEat, 0)
	quiet, _ := Stream(sr, SoundEat, -2)

	_, loudPeak := drain(t, loud)
	_, quietPeak := drain(t, quiet)
	if quietPeak >= loudPeak {
		t.Errorf("Expected lower peak at volume -2: loud=%f quiet=%f", loudPeak, quietPeak)
	}
}

func TestStreamUnknownSound(t *testing.T) {
	if _, err := Stream(beep.SampleRate(constant.AudioSampleRate), Sound(99), 0); err == nil {
		t.Error("Expected error for unknown sound")
	}
}

func TestNoSoundDeviceDependency(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}

	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("Parse %s: %v", name, err)
		}
		for _, imp := range f.Imports {
			path := strings.Trim(imp.Path.Value, `"`)
			if strings.HasSuffix(path, "/speaker") || strings.Contains(path, "/oto") {
				t.Errorf("%s imports %s; device output belongs in audio/playback", name, path)
			}
		}
	}
}
