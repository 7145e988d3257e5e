// SPDX-License-Identifier: MIT

// Package profile loads alignment profiles: a penalty model plus aligner
// options, stored as YAML.
//
//	penalties:
//	  mismatch: 4
//	  gap_open: 6
//	  gap_extend: 2
//	  convention: open-plus-extend   # or open-first
//	mode: alignment                  # or score
//	max_score: 0                     # 0 = unlimited
//	ends_free:                       # optional
//	  a_begin: 0
//	  a_end: 0
//	  b_begin: 0
//	  b_end: 0
//
// Unknown keys are rejected. All three costs are required.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wavealign/penalty"
	"github.com/katalvlaran/wavealign/wfa"
)

// ErrBadProfile indicates an unreadable profile or an unknown enumerated value.
var ErrBadProfile = errors.New("profile: invalid profile")

// Profile is a decoded alignment profile. Costs are pointers so that a
// missing key can be told apart from an explicit zero.
type Profile struct {
	Costs    Costs     `yaml:"penalties"`
	Mode     string    `yaml:"mode,omitempty"`
	MaxScore int       `yaml:"max_score,omitempty"`
	EndsFree *EndsFree `yaml:"ends_free,omitempty"`
}

// Costs is the penalties section.
type Costs struct {
	Mismatch   *int   `yaml:"mismatch"`
	GapOpen    *int   `yaml:"gap_open"`
	GapExtend  *int   `yaml:"gap_extend"`
	Convention string `yaml:"convention,omitempty"`
}

// EndsFree is the optional ends_free section.
type EndsFree struct {
	ABegin int `yaml:"a_begin"`
	AEnd   int `yaml:"a_end"`
	BBegin int `yaml:"b_begin"`
	BEnd   int `yaml:"b_end"`
}

// Load decodes one YAML profile from r and validates it.
func Load(r io.Reader) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Profile{}, fmt.Errorf("%w: empty document", ErrBadProfile)
		}

		return Profile{}, fmt.Errorf("%w: %v", ErrBadProfile, err)
	}
	if _, err := p.Options(); err != nil {
		return Profile{}, err
	}
	if _, err := p.Penalties(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// LoadFile reads and decodes the profile at path.
func LoadFile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrBadProfile, err)
	}

	return Load(bytes.NewReader(data))
}

// Preset returns a built-in profile: "edit", "linear" or "affine".
func Preset(name string) (Profile, error) {
	switch name {
	case "edit":
		return FromPenalties(penalty.Edit()), nil
	case "linear":
		return FromPenalties(penalty.Linear(4, 2)), nil
	case "affine", "":
		return FromPenalties(penalty.Default()), nil
	default:
		return Profile{}, fmt.Errorf("%w: unknown preset %q", ErrBadProfile, name)
	}
}

// FromPenalties builds an end-to-end full-alignment profile around p.
func FromPenalties(p penalty.Penalties) Profile {
	x, o, e := p.Mismatch, p.GapOpen, p.GapExtend

	return Profile{
		Costs: Costs{Mismatch: &x, GapOpen: &o, GapExtend: &e, Convention: p.Convention.String()},
		Mode:  wfa.FullAlignment.String(),
	}
}

// Penalties converts and validates the penalties section.
func (p Profile) Penalties() (penalty.Penalties, error) {
	c := p.Costs
	switch {
	case c.Mismatch == nil:
		return penalty.Penalties{}, fmt.Errorf("%w: missing penalties.mismatch", penalty.ErrInvalidPenalty)
	case c.GapOpen == nil:
		return penalty.Penalties{}, fmt.Errorf("%w: missing penalties.gap_open", penalty.ErrInvalidPenalty)
	case c.GapExtend == nil:
		return penalty.Penalties{}, fmt.Errorf("%w: missing penalties.gap_extend", penalty.ErrInvalidPenalty)
	}
	conv, err := parseConvention(c.Convention)
	if err != nil {
		return penalty.Penalties{}, err
	}
	out := penalty.Penalties{
		Mismatch:   *c.Mismatch,
		GapOpen:    *c.GapOpen,
		GapExtend:  *c.GapExtend,
		Convention: conv,
	}
	if err = out.Validate(); err != nil {
		return penalty.Penalties{}, err
	}

	return out, nil
}

// Options converts mode, max_score and ends_free into aligner options.
func (p Profile) Options() ([]wfa.Option, error) {
	var opts []wfa.Option
	switch p.Mode {
	case "", wfa.FullAlignment.String():
		opts = append(opts, wfa.WithMode(wfa.FullAlignment))
	case wfa.ScoreOnly.String():
		opts = append(opts, wfa.WithScoreOnly())
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrBadProfile, p.Mode)
	}
	if p.MaxScore < 0 {
		return nil, fmt.Errorf("%w: max_score cannot be negative (%d)", ErrBadProfile, p.MaxScore)
	}
	opts = append(opts, wfa.WithMaxScore(p.MaxScore))
	if ef := p.EndsFree; ef != nil {
		if ef.ABegin < 0 || ef.AEnd < 0 || ef.BBegin < 0 || ef.BEnd < 0 {
			return nil, fmt.Errorf("%w: ends_free lengths cannot be negative", ErrBadProfile)
		}
		opts = append(opts, wfa.WithEndsFree(ef.ABegin, ef.AEnd, ef.BBegin, ef.BEnd))
	}

	return opts, nil
}

// NewAligner builds an aligner from the profile.
func (p Profile) NewAligner(extra ...wfa.Option) (*wfa.Aligner, error) {
	pen, err := p.Penalties()
	if err != nil {
		return nil, err
	}
	opts, err := p.Options()
	if err != nil {
		return nil, err
	}

	return wfa.New(pen, append(opts, extra...)...)
}

// Encode writes the profile as YAML.
func (p Profile) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}

	return enc.Close()
}

func parseConvention(s string) (penalty.GapConvention, error) {
	switch s {
	case "", penalty.GapOpenPlusExtend.String():
		return penalty.GapOpenPlusExtend, nil
	case penalty.GapOpenFirst.String():
		return penalty.GapOpenFirst, nil
	default:
		return 0, fmt.Errorf("%w: unknown gap convention %q", ErrBadProfile, s)
	}
}
