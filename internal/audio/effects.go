// internal/audio/effects.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"go-bubble-shooter/internal/utils"
)

// WaveType — форма волны генератора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator генерирует сырую волну заданной длительности
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *utils.PRNGService
}

// NewOscillator создаёт генератор. Для шума используется собственный ГПСЧ.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      utils.NewPRNGService(int64(freq*1000) + int64(duration) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Signed()
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope — упрощённая огибающая: линейные атака и затухание
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume: при громкости 0 поток глушится, log2(0) не вычисляется
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, d/10, d/3, rate)
}

// CreateFireSound — короткий «пуф» при выстреле
func CreateFireSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(tone(660, 90*time.Millisecond, WaveSquare, rate), vol*0.6)
}

// CreateBounceSound — тихий щелчок при отскоке
func CreateBounceSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(tone(440, 40*time.Millisecond, WaveSine, rate), vol*0.4)
}

// CreateHitSound — шумовой удар при попадании в цель
func CreateHitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(tone(0, 160*time.Millisecond, WaveNoise, rate), vol*0.7)
}

// CreateWinSound — восходящее арпеджио
func CreateWinSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		parts = append(parts, tone(f, 120*time.Millisecond, WaveSine, rate))
	}
	return newVolume(beep.Seq(parts...), vol)
}

// CreateLoseSound — нисходящая пила
func CreateLoseSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := []float64{392, 311.13, 261.63}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		parts = append(parts, tone(f, 200*time.Millisecond, WaveSaw, rate))
	}
	return newVolume(beep.Seq(parts...), vol*0.6)
}

// CreateMusicLoop — один такт фоновой басовой линии; зацикливается менеджером
func CreateMusicLoop(rate beep.SampleRate) beep.Streamer {
	bass := []float64{110, 110, 146.83, 130.81}
	parts := make([]beep.Streamer, 0, len(bass))
	for _, f := range bass {
		parts = append(parts, tone(f, 400*time.Millisecond, WaveSine, rate))
	}
	return beep.Seq(parts...)
}
