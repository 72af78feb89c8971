package world

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadNamePolicy parses a NamePolicy from YAML bytes.
func LoadNamePolicy(data []byte) (*NamePolicy, error) {
	var policy NamePolicy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("parse name policy: %w", err)
	}
	if err := policy.validate(); err != nil {
		return nil, fmt.Errorf("name policy: %w", err)
	}
	return &policy, nil
}

// LoadNamePolicyFile reads and parses a NamePolicy from disk.
func LoadNamePolicyFile(path string) (*NamePolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read name policy: %w", err)
	}
	return LoadNamePolicy(data)
}

func (p *NamePolicy) validate() error {
	if p.Consonants == "" {
		return errors.New("consonants must not be empty")
	}
	if p.Vowels == "" {
		return errors.New("vowels must not be empty")
	}
	for _, c := range p.ConsonantClusters {
		if c == "" {
			return errors.New("empty consonant cluster")
		}
	}
	for _, v := range p.VowelClusters {
		if v == "" {
			return errors.New("empty vowel cluster")
		}
	}
	w := p.MiddleWeights
	if w.None < 0 || w.One < 0 || w.Two < 0 || w.total() == 0 {
		return fmt.Errorf("middle weights %+v must be non-negative with a positive sum", w)
	}
	if p.LeadConsonantChance < 0 || p.LeadConsonantChance > 1 {
		return fmt.Errorf("lead_consonant_chance %v out of [0,1]", p.LeadConsonantChance)
	}
	if p.TrailingVowelChance < 0 || p.TrailingVowelChance > 1 {
		return fmt.Errorf("trailing_vowel_chance %v out of [0,1]", p.TrailingVowelChance)
	}
	for i, name := range p.Curated {
		if name == "" {
			return fmt.Errorf("curated name %d is empty", i)
		}
	}
	return nil
}
