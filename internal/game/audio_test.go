package game

import (
	"encoding/binary"
	"testing"
)

// This test ensures the audio manager initializes and can be called even if
// no sound files exist, without panicking.
func TestAudioManagerNoAssets(t *testing.T) {
	t.Setenv("PACMAN_DISABLE_AUDIO", "1")
	am := NewAudioManager("/nonexistent/path", true)
	if am.ctx != nil {
		t.Fatalf("PACMAN_DISABLE_AUDIO must win over the config")
	}
	for kind := range cues {
		if sd := am.sounds[kind]; sd == nil || len(sd.raw) <= 44 {
			t.Fatalf("no fallback beep for %v", kind)
		}
	}
	am.Play([]Event{{Kind: EventPellet}, {Kind: EventPowerPellet}, {Kind: EventGhostEaten}, {Kind: EventLifeLost}, {Kind: EventWon}, {Kind: EventLost}})

	var nilManager *AudioManager
	nilManager.Play([]Event{{Kind: EventPellet}})
}

func TestSynthBeepWAVHeader(t *testing.T) {
	wav := synthBeepWAV(8000, 100, 440)
	if len(wav) != 44+800*2 {
		t.Fatalf("unexpected length %d", len(wav))
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" || string(wav[36:40]) != "data" {
		t.Fatalf("bad header %q", wav[:44])
	}
	if got := binary.LittleEndian.Uint32(wav[24:28]); got != 8000 {
		t.Fatalf("sample rate %d", got)
	}
	if got := binary.LittleEndian.Uint32(wav[40:44]); got != 1600 {
		t.Fatalf("data size %d", got)
	}
	// the fade in starts from silence
	if wav[44] != 0 || wav[45] != 0 {
		t.Fatalf("first sample should be silent")
	}
}
