// Package stress exercises a tracker under contention: many workers make
// many passes over one synthetic site corpus against a single shared
// instance, and the run verifies that every site reported first exactly
// once no matter how the goroutines interleaved.
package stress

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// Profile describes the shape of an exercise run.
type Profile struct {
	Workers int `json:"workers"` // concurrent goroutines
	Rounds  int `json:"rounds"`  // full passes over the corpus per worker
	Sites   int `json:"sites"`   // distinct synthetic call sites
}

// ErrProfileEmpty indicates the TOML file has no [exercise] table.
var ErrProfileEmpty = errors.New("missing [exercise] table")

// DefaultProfile is the shape used when no profile file or flags are given.
func DefaultProfile() Profile {
	return Profile{Workers: 64, Rounds: 100, Sites: 32}
}

type profileFile struct {
	Exercise struct {
		Workers int64 `toml:"workers"`
		Rounds  int64 `toml:"rounds"`
		Sites   int64 `toml:"sites"`
	} `toml:"exercise"`
}

// LoadProfile parses the [exercise] table from a TOML profile. Fields
// absent from the file keep their defaults.
func LoadProfile(path string) (Profile, error) {
	var cfg profileFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("exercise") {
		return Profile{}, fmt.Errorf("%s: %w", path, ErrProfileEmpty)
	}

	p := DefaultProfile()
	if meta.IsDefined("exercise", "workers") {
		if p.Workers, err = safecast.Conv[int](cfg.Exercise.Workers); err != nil {
			return Profile{}, fmt.Errorf("%s: workers: %w", path, err)
		}
	}
	if meta.IsDefined("exercise", "rounds") {
		if p.Rounds, err = safecast.Conv[int](cfg.Exercise.Rounds); err != nil {
			return Profile{}, fmt.Errorf("%s: rounds: %w", path, err)
		}
	}
	if meta.IsDefined("exercise", "sites") {
		if p.Sites, err = safecast.Conv[int](cfg.Exercise.Sites); err != nil {
			return Profile{}, fmt.Errorf("%s: sites: %w", path, err)
		}
	}
	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Validate checks that every dimension of the profile is positive.
func (p Profile) Validate() error {
	if p.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", p.Workers)
	}
	if p.Rounds < 1 {
		return fmt.Errorf("rounds must be >= 1, got %d", p.Rounds)
	}
	if p.Sites < 1 {
		return fmt.Errorf("sites must be >= 1, got %d", p.Sites)
	}
	return nil
}

// Checks returns the total number of tracker checks the profile performs.
func (p Profile) Checks() int {
	return p.Workers * p.Rounds * p.Sites
}
