package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/aussiebroadwan/ballot/internal/voting/domain"
	"github.com/aussiebroadwan/ballot/internal/voting/store"
	"github.com/aussiebroadwan/ballot/pkg/slogx"
	"gopkg.in/yaml.v3"
)

var ErrRosterConflict = errors.New("roster would drop a candidate that already has votes")

// Roster is the fixed candidate set for a voting window.
type Roster struct {
	candidates []domain.Candidate
	byID       map[string]domain.Candidate
	byName     map[string]domain.Candidate
}

type rosterFile struct {
	Candidates []string `yaml:"candidates"`
}

// NewRoster validates the candidate list. Names must be non-empty and unique
// ignoring case and runs of whitespace.
func NewRoster(candidates []domain.Candidate) (*Roster, error) {
	if len(candidates) == 0 {
		return nil, errors.New("roster: no candidates")
	}

	r := &Roster{
		candidates: slices.Clone(candidates),
		byID:       make(map[string]domain.Candidate, len(candidates)),
		byName:     make(map[string]domain.Candidate, len(candidates)),
	}
	for _, c := range candidates {
		if c.DisplayName == "" {
			return nil, errors.New("roster: empty candidate name")
		}
		key := nameKey(c.DisplayName)
		if _, dup := r.byName[key]; dup {
			return nil, fmt.Errorf("roster: duplicate candidate %q", c.DisplayName)
		}
		r.byID[c.ID] = c
		r.byName[key] = c
	}
	return r, nil
}

// ParseRoster reads a YAML roster:
//
//	candidates:
//	  - Doug Ford
//	  - Bernie Sanders
func ParseRoster(data []byte) (*Roster, error) {
	var f rosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}

	candidates := make([]domain.Candidate, len(f.Candidates))
	for i, name := range f.Candidates {
		candidates[i] = domain.NewCandidate(name, i+1)
	}
	return NewRoster(candidates)
}

// LoadRoster reads the roster at path, or returns the default roster when
// path is empty.
func LoadRoster(path string) (*Roster, error) {
	if path == "" {
		return NewRoster(domain.DefaultCandidates())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}
	return ParseRoster(data)
}

// List returns the candidates in roster order.
func (r *Roster) List() []domain.Candidate {
	return slices.Clone(r.candidates)
}

// Resolve finds a candidate by ID or display name. Names match ignoring case
// and surrounding whitespace.
func (r *Roster) Resolve(ref string) (domain.Candidate, bool) {
	ref = strings.TrimSpace(ref)
	if c, ok := r.byID[ref]; ok {
		return c, true
	}
	c, ok := r.byName[nameKey(ref)]
	return c, ok
}

func nameKey(name string) string {
	return strings.ToLower(collapseSpace(name))
}

// CandidateService persists the roster and serves the candidate list.
type CandidateService struct {
	Store  store.Store
	Roster *Roster
}

// Sync writes the roster to the store. Candidates no longer on the roster are
// removed unless ballots reference them, in which case the roster is refused
// and nothing changes.
func (s *CandidateService) Sync(ctx context.Context) error {
	log := slogx.FromContext(ctx)

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Candidates().ListCandidates(ctx)
		if err != nil {
			return fmt.Errorf("list candidates: %w", err)
		}

		for _, c := range existing {
			if _, keep := s.Roster.byID[c.ID]; keep {
				continue
			}
			n, err := tx.Candidates().CountCandidateBallots(ctx, c.ID)
			if err != nil {
				return fmt.Errorf("count ballots: %w", err)
			}
			if n > 0 {
				return fmt.Errorf("%w: %q has %d", ErrRosterConflict, c.DisplayName, n)
			}
			if err := tx.Candidates().DeleteCandidate(ctx, c.ID); err != nil {
				return fmt.Errorf("delete candidate: %w", err)
			}
			log.Info("candidate removed", slog.String("candidate", c.DisplayName))
		}

		for _, c := range s.Roster.candidates {
			if err := tx.Candidates().UpsertCandidate(ctx, c); err != nil {
				return fmt.Errorf("upsert candidate %q: %w", c.DisplayName, err)
			}
		}
		log.Info("candidates seeded", slog.Int("count", len(s.Roster.candidates)))
		return nil
	})
}

// List returns the persisted candidates in roster order.
func (s *CandidateService) List(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := s.Store.Candidates().ListCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return candidates, nil
}
