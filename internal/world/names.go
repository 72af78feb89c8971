package world

import (
	"math/rand/v2"
	"strings"
)

// NameSource hands out star names in generation order.
type NameSource interface {
	Next() string
}

// MiddleWeights are relative odds for 0, 1, or 2 middle syllables.
type MiddleWeights struct {
	None int `yaml:"none"`
	One  int `yaml:"one"`
	Two  int `yaml:"two"`
}

func (m MiddleWeights) total() int { return m.None + m.One + m.Two }

// NamePolicy holds the phoneme tables and roll odds for star names.
type NamePolicy struct {
	Curated             []string      `yaml:"curated"`
	Consonants          string        `yaml:"consonants"`
	ConsonantClusters   []string      `yaml:"consonant_clusters"`
	Vowels              string        `yaml:"vowels"`
	VowelClusters       []string      `yaml:"vowel_clusters"`
	LeadConsonantChance float64       `yaml:"lead_consonant_chance"`
	MiddleWeights       MiddleWeights `yaml:"middle_weights"`
	TrailingVowelChance float64       `yaml:"trailing_vowel_chance"`
}

// NameGen gives out the curated names in order, then procedural ones.
type NameGen struct {
	policy *NamePolicy
	rng    *rand.Rand
	next   int
}

// NewNameGen creates a name source over policy.
func NewNameGen(policy *NamePolicy, rng *rand.Rand) *NameGen {
	return &NameGen{policy: policy, rng: rng}
}

// Next returns the next star name.
func (n *NameGen) Next() string {
	if n.next < len(n.policy.Curated) {
		n.next++
		return n.policy.Curated[n.next-1]
	}
	return n.Random()
}

// Random builds a pronounceable name: start + middle + end, capitalized.
func (n *NameGen) Random() string {
	name := n.start() + n.middle() + n.end()
	return strings.ToUpper(name[:1]) + name[1:]
}

func (n *NameGen) start() string {
	s := ""
	if n.rng.Float64() < n.policy.LeadConsonantChance {
		s += n.consonant()
	}
	return s + n.vowel()
}

func (n *NameGen) middle() string {
	w := n.policy.MiddleWeights
	roll := n.rng.IntN(w.total())
	switch {
	case roll < w.None:
		return ""
	case roll < w.None+w.One:
		return n.syllable()
	default:
		return n.syllable() + n.syllable()
	}
}

func (n *NameGen) end() string {
	e := n.consonant()
	if n.rng.Float64() < n.policy.TrailingVowelChance {
		e += n.vowel()
	}
	return e
}

func (n *NameGen) syllable() string { return n.consonant() + n.vowel() }

func (n *NameGen) consonant() string {
	return n.fragment(n.policy.Consonants, n.policy.ConsonantClusters)
}

func (n *NameGen) vowel() string {
	return n.fragment(n.policy.Vowels, n.policy.VowelClusters)
}

// fragment picks a cluster when a 1..(singles+clusters) roll lands below len(clusters).
func (n *NameGen) fragment(singles string, clusters []string) string {
	roll := 1 + n.rng.IntN(len(singles)+len(clusters))
	if roll < len(clusters) {
		return clusters[n.rng.IntN(len(clusters))]
	}
	i := n.rng.IntN(len(singles))
	return singles[i : i+1]
}
