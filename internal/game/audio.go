package game

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	log "github.com/sirupsen/logrus"
)

const sampleRate = 44100

type SoundData struct {
	raw []byte
}

// AudioManager plays one cue per world event.
type AudioManager struct {
	ctx    *audio.Context
	sounds map[EventKind]*SoundData
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

// getAudioContext returns nil when audio is off. PACMAN_DISABLE_AUDIO=1 always wins;
// PACMAN_ENABLE_AUDIO=1 turns audio on when the config does not.
func getAudioContext(enabled bool) *audio.Context {
	if os.Getenv("PACMAN_DISABLE_AUDIO") == "1" {
		return nil
	}
	if !enabled && os.Getenv("PACMAN_ENABLE_AUDIO") != "1" {
		return nil
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

// cue is a sound file and the beep synthesized when the file is missing.
type cue struct {
	file       string
	durationMs int
	freq       float64
}

var cues = map[EventKind]cue{
	EventPellet:      {"pellet.wav", 60, 880},
	EventPowerPellet: {"power.wav", 150, 660},
	EventGhostEaten:  {"ghost.wav", 200, 440},
	EventLifeLost:    {"death.wav", 400, 220},
	EventWon:         {"win.wav", 500, 1046},
	EventLost:        {"gameover.wav", 700, 165},
}

func NewAudioManager(soundsDir string, enabled bool) *AudioManager {
	if soundsDir == "" {
		soundsDir = "assets/sounds"
	}
	am := &AudioManager{
		ctx:    getAudioContext(enabled),
		sounds: make(map[EventKind]*SoundData, len(cues)),
	}
	for kind, c := range cues {
		if sd, err := loadSoundData(soundsDir, c.file); err == nil {
			am.sounds[kind] = sd
			continue
		}
		am.sounds[kind] = &SoundData{raw: synthBeepWAV(sampleRate, c.durationMs, c.freq)}
	}
	return am
}

func loadSoundData(dir, file string) (*SoundData, error) {
	b, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return nil, err
	}
	return &SoundData{raw: b}, nil
}

// Play sounds the cues of a tick's events.
func (am *AudioManager) Play(events []Event) {
	if am == nil {
		return
	}
	for _, e := range events {
		am.play(am.sounds[e.Kind])
	}
}

func (am *AudioManager) play(sd *SoundData) {
	if am == nil || am.ctx == nil || sd == nil || len(sd.raw) == 0 {
		return
	}
	// Decode from bytes each time to allow overlapping plays
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(sd.raw))
	if err != nil {
		log.WithError(err).Debug("decode sound")
		return
	}
	p, err := am.ctx.NewPlayer(stream)
	if err != nil {
		log.WithError(err).Debug("create sound player")
		return
	}
	p.Play()
}

// synthBeepWAV returns a minimal 16-bit PCM mono WAV of a sine beep.
func synthBeepWAV(sampleRate int, durationMs int, freq float64) []byte {
	numSamples := int(float64(sampleRate) * float64(durationMs) / 1000.0)
	// WAV header (44 bytes)
	byteRate := sampleRate * 2 // mono 16-bit
	blockAlign := 2
	dataSize := numSamples * 2
	totalSize := 44 + dataSize
	buf := make([]byte, totalSize)
	// RIFF header
	copy(buf[0:4], "RIFF")
	putLE32(buf[4:8], uint32(totalSize-8))
	copy(buf[8:12], "WAVE")
	// fmt chunk
	copy(buf[12:16], "fmt ")
	putLE32(buf[16:20], 16) // PCM chunk size
	putLE16(buf[20:22], 1)  // PCM format
	putLE16(buf[22:24], 1)  // channels
	putLE32(buf[24:28], uint32(sampleRate))
	putLE32(buf[28:32], uint32(byteRate))
	putLE16(buf[32:34], uint16(blockAlign))
	putLE16(buf[34:36], 16) // bits per sample
	// data chunk
	copy(buf[36:40], "data")
	putLE32(buf[40:44], uint32(dataSize))
	amp := 0.25
	// short linear fade at both ends to avoid clicks
	fade := sampleRate / 200
	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(sampleRate)
		s := math.Sin(2*math.Pi*freq*t) * amp
		if i < fade {
			s *= float64(i) / float64(fade)
		} else if left := numSamples - i; left < fade {
			s *= float64(left) / float64(fade)
		}
		v := int16(s * 32767.0)
		off := 44 + i*2
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
