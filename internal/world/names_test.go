package world

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode"
)

func TestNameGenCuratedThenProcedural(t *testing.T) {
	policy := testPolicy(t)
	gen := NewNameGen(policy, rand.New(rand.NewPCG(5, 5)))

	for i, want := range policy.Curated {
		if got := gen.Next(); got != want {
			t.Fatalf("name %d: got=%q want=%q", i, got, want)
		}
	}

	letters := policy.Consonants + policy.Vowels +
		strings.Join(policy.ConsonantClusters, "") + strings.Join(policy.VowelClusters, "")
	for i := 0; i < 200; i++ {
		name := gen.Next()
		if len(name) < 2 {
			t.Fatalf("procedural name too short: %q", name)
		}
		if !unicode.IsUpper(rune(name[0])) {
			t.Fatalf("procedural name not capitalized: %q", name)
		}
		for _, r := range strings.ToLower(name) {
			if !strings.ContainsRune(letters, r) {
				t.Fatalf("procedural name %q has letter %q outside the phoneme tables", name, r)
			}
		}
	}
}

func TestNameGenMiddleWeights(t *testing.T) {
	policy := &NamePolicy{
		Consonants:    "k",
		Vowels:        "a",
		MiddleWeights: MiddleWeights{None: 1},
		// no lead consonant, no trailing vowel: name is always "a" + "" + "k"
	}
	gen := NewNameGen(policy, rand.New(rand.NewPCG(1, 1)))
	for i := 0; i < 20; i++ {
		if got := gen.Next(); got != "Ak" {
			t.Fatalf("got=%q want=%q", got, "Ak")
		}
	}

	policy.MiddleWeights = MiddleWeights{Two: 1}
	policy.LeadConsonantChance = 1
	policy.TrailingVowelChance = 1
	for i := 0; i < 20; i++ {
		if got := gen.Next(); got != "Kakakaka" {
			t.Fatalf("got=%q want=%q", got, "Kakakaka")
		}
	}
}

func TestLoadNamePolicyValidation(t *testing.T) {
	cases := map[string]string{
		"bad yaml":        "curated: [unterminated",
		"no consonants":   "vowels: a\nmiddle_weights: {one: 1}",
		"no vowels":       "consonants: k\nmiddle_weights: {one: 1}",
		"zero weights":    "consonants: k\nvowels: a",
		"negative weight": "consonants: k\nvowels: a\nmiddle_weights: {one: 2, two: -1}",
		"chance range":    "consonants: k\nvowels: a\nmiddle_weights: {one: 1}\nlead_consonant_chance: 1.5",
		"empty cluster":   "consonants: k\nvowels: a\nmiddle_weights: {one: 1}\nvowel_clusters: [\"\"]",
	}
	for name, doc := range cases {
		if _, err := LoadNamePolicy([]byte(doc)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}

	p, err := LoadNamePolicy([]byte("consonants: k\nvowels: a\nmiddle_weights: {one: 1}\ncurated: [Sol]"))
	if err != nil {
		t.Fatalf("valid policy: %v", err)
	}
	if len(p.Curated) != 1 || p.Curated[0] != "Sol" {
		t.Fatalf("curated: got=%v want=[Sol]", p.Curated)
	}
}
