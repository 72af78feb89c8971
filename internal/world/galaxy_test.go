package world

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/spacehole-rogue/starfield/assets"
)

func testPolicy(t *testing.T) *NamePolicy {
	t.Helper()
	data, err := assets.Names.ReadFile("names/default.yaml")
	if err != nil {
		t.Fatalf("read embedded policy: %v", err)
	}
	policy, err := LoadNamePolicy(data)
	if err != nil {
		t.Fatalf("load embedded policy: %v", err)
	}
	return policy
}

func counter() func() ID {
	var last ID
	return func() ID {
		last++
		return last
	}
}

func TestGenerateStarsKeepsMinimumSeparation(t *testing.T) {
	params := GalaxyParams{Count: 100, MinSeparation: 0.012, MaxRetries: 5}
	for seed := uint64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewPCG(seed, 7))
		stars, err := GenerateStars(rng, params, NewNameGen(testPolicy(t), rng), counter())
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(stars) != params.Count {
			t.Fatalf("seed %d: got=%d stars want=%d", seed, len(stars), params.Count)
		}
		min2 := params.MinSeparation * params.MinSeparation
		for i := range stars {
			if stars[i].Location.Magnitude() >= 1 {
				t.Fatalf("star %d outside unit disk: %v", i, stars[i].Location)
			}
			for j := i + 1; j < len(stars); j++ {
				if d := stars[i].Location.SquareDist(stars[j].Location); d <= min2 {
					t.Fatalf("seed %d: stars %d and %d too close: d2=%v", seed, i, j, d)
				}
			}
		}
	}
}

func TestGenerateStarsAssignsMonotonicIDsAndCuratedNames(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	policy := testPolicy(t)
	stars, err := GenerateStars(rng, GalaxyParams{Count: 40, MinSeparation: 0.012, MaxRetries: 5},
		NewNameGen(policy, rng), counter())
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range stars {
		if s.ID != ID(i+1) {
			t.Fatalf("star %d: got id=%d want=%d", i, s.ID, i+1)
		}
		if i < len(policy.Curated) && s.Name != policy.Curated[i] {
			t.Fatalf("star %d: got name=%q want=%q", i, s.Name, policy.Curated[i])
		}
	}
}

func TestGenerateStarsExhaustsRetryBudget(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	// Any two points of the unit disk are closer than 3.
	_, err := GenerateStars(rng, GalaxyParams{Count: 2, MinSeparation: 3, MaxRetries: 4},
		NewNameGen(testPolicy(t), rng), counter())
	if !errors.Is(err, ErrGenerationExhausted) {
		t.Fatalf("got err=%v want ErrGenerationExhausted", err)
	}
}

func TestGenerateStarsRejectsInvalidParams(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	if _, err := GenerateStars(rng, GalaxyParams{Count: -1}, NewNameGen(testPolicy(t), rng), counter()); err == nil {
		t.Fatal("negative count must fail")
	}
}

func TestTooCloseRejectsNearExistingStars(t *testing.T) {
	placed := []*Star{
		{ID: 1, Location: Pt(0, 0)},
		{ID: 2, Location: Pt(0.02, 0)},
		{ID: 3, Location: Pt(0.5, 0.5)},
	}
	const minSep = 0.012
	cases := []struct {
		p    Point
		want bool
	}{
		{Pt(0.011, 0), true},     // near A
		{Pt(0, -0.005), true},    // near A
		{Pt(0.02, 0.0119), true}, // near B
		{Pt(0.029, 0), true},     // near B
		{Pt(0.5, 0.489), true},   // near C
		{Pt(-0.02, 0), false},
		{Pt(0.01, 0.02), false},
		{Pt(0.25, 0.25), false},
		{Pt(0.5, 0.52), false},
	}
	for _, tc := range cases {
		if got := tooClose(placed, tc.p, minSep); got != tc.want {
			t.Errorf("tooClose(%v): got=%v want=%v", tc.p, got, tc.want)
		}
	}
}

func TestSamplePolarStaysInUnitDisk(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	for i := 0; i < 10000; i++ {
		if p := samplePolar(rng); p.Magnitude() >= 1 {
			t.Fatalf("sample %d outside unit disk: %v", i, p)
		}
	}
}
