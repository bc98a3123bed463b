package labeler

import (
	"math/rand"
	"sync"
	"time"

	"textile-market-backend/internal/model"
)

// Fixed category lists the simulated classifier draws from.
var (
	Colors = []string{
		"Multi-color (Red, Blue, Beige)",
		"Pink/Coral Palette",
		"Denim Blue with Patches",
		"Earthy Tones",
		"Vibrant Mix",
	}
	Textures = []string{
		"Cotton Quilted",
		"Denim",
		"Silk Blend",
		"Cotton Canvas",
		"Polyester Mix",
	}
	Patterns = []string{
		"Patchwork",
		"Striped",
		"Floral",
		"Geometric",
		"Abstract",
	}
	Qualities = []string{
		"Premium",
		"Excellent",
		"Good",
		"Fair",
	}
)

// Labeler assigns the color/texture/pattern/quality labels for an uploaded
// image. The randomized implementation below is a stand-in; a real
// classifier can replace it without touching the handlers.
type Labeler interface {
	Label(imagePath string) model.Analysis
}

// randomLabeler picks each label independently and uniformly from its list.
// math/rand sources are not safe for concurrent use, hence the mutex.
type randomLabeler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom returns a randomized Labeler.
func NewRandom() Labeler {
	return NewRandomSeeded(time.Now().UnixNano())
}

// NewRandomSeeded returns a randomized Labeler with a fixed seed, for
// deterministic tests.
func NewRandomSeeded(seed int64) Labeler {
	return &randomLabeler{rng: rand.New(rand.NewSource(seed))}
}

// Label ignores the image content entirely; only the path is accepted so the
// interface already fits a real implementation.
func (l *randomLabeler) Label(_ string) model.Analysis {
	l.mu.Lock()
	defer l.mu.Unlock()
	return model.Analysis{
		Color:   Colors[l.rng.Intn(len(Colors))],
		Texture: Textures[l.rng.Intn(len(Textures))],
		Pattern: Patterns[l.rng.Intn(len(Patterns))],
		Quality: Qualities[l.rng.Intn(len(Qualities))],
	}
}
