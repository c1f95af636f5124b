// Package data loads and validates tournament definitions from JSON or
// YAML files, dispatching on file extension the way apetersson-qnd's
// qualifier simulators load their config.
package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sazarkin/wcsim/internal/team"
	"github.com/sazarkin/wcsim/internal/tournament"
)

// teamDoc mirrors the wire format of one team entry (spec.md §6).
type teamDoc struct {
	ID                   team.ID `json:"id" yaml:"id"`
	Name                 string  `json:"name" yaml:"name"`
	Code                 string  `json:"code" yaml:"code"`
	Confederation        string  `json:"confederation" yaml:"confederation"`
	EloRating            float64 `json:"elo_rating" yaml:"elo_rating"`
	MarketValueMillions  float64 `json:"market_value_millions" yaml:"market_value_millions"`
	FIFARanking          int     `json:"fifa_ranking" yaml:"fifa_ranking"`
	WorldCupWins         int     `json:"world_cup_wins" yaml:"world_cup_wins"`
	SofascoreForm        *float64 `json:"sofascore_form,omitempty" yaml:"sofascore_form,omitempty"`
}

// groupDoc mirrors one group entry: a single uppercase letter id and its
// four member team ids.
type groupDoc struct {
	ID    string    `json:"id" yaml:"id"`
	Teams []team.ID `json:"teams" yaml:"teams"`
}

type tournamentDoc struct {
	Teams  []teamDoc  `json:"teams" yaml:"teams"`
	Groups []groupDoc `json:"groups" yaml:"groups"`
}

const (
	expectedTeams  = 48
	expectedGroups = 12
)

// ValidationError reports a structurally invalid tournament document.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "tournament data: " + e.Reason }

// Load reads a tournament definition from path, dispatching on its
// extension (.json, or .yaml/.yml), and validates it into a
// *tournament.Tournament.
func Load(path string) (*tournament.Tournament, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tournament data: read %s: %w", path, err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".json":
		return ParseJSON(raw)
	case ".yaml", ".yml":
		var doc tournamentDoc
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("tournament data: malformed YAML in %s: %w", path, err)
		}
		return build(doc)
	default:
		return nil, &ValidationError{Reason: fmt.Sprintf("unsupported file extension %q", ext)}
	}
}

// ParseJSON builds a *tournament.Tournament directly from a JSON document's
// bytes, for callers that already have the document in memory (the WASM
// façade receives tournament JSON from the host page, not a file path).
func ParseJSON(raw []byte) (*tournament.Tournament, error) {
	var doc tournamentDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("tournament data: malformed JSON: %w", err)
	}
	return build(doc)
}

func build(doc tournamentDoc) (*tournament.Tournament, error) {
	if len(doc.Teams) != expectedTeams {
		return nil, &ValidationError{Reason: fmt.Sprintf("expected %d teams, got %d", expectedTeams, len(doc.Teams))}
	}
	if len(doc.Groups) != expectedGroups {
		return nil, &ValidationError{Reason: fmt.Sprintf("expected %d groups, got %d", expectedGroups, len(doc.Groups))}
	}

	teams := make([]team.Team, 0, len(doc.Teams))
	knownIDs := make(map[team.ID]bool, len(doc.Teams))
	for _, td := range doc.Teams {
		conf, err := team.ParseConfederation(td.Confederation)
		if err != nil {
			return nil, &ValidationError{Reason: err.Error()}
		}
		teams = append(teams, team.Team{
			ID:                  td.ID,
			Name:                td.Name,
			Code:                td.Code,
			Confederation:       conf,
			EloRating:           td.EloRating,
			MarketValueMillions: td.MarketValueMillions,
			FIFARanking:         td.FIFARanking,
			WorldCupWins:        td.WorldCupWins,
			SofascoreForm:       td.SofascoreForm,
		})
		knownIDs[td.ID] = true
	}

	groups := make([]team.Group, 0, len(doc.Groups))
	assignedTo := make(map[team.ID]string, len(doc.Teams))
	for _, gd := range doc.Groups {
		if len(gd.ID) != 1 || gd.ID[0] < 'A' || gd.ID[0] > 'L' {
			return nil, &ValidationError{Reason: fmt.Sprintf("group id %q must be a single letter A..L", gd.ID)}
		}
		if len(gd.Teams) != 4 {
			return nil, &ValidationError{Reason: fmt.Sprintf("group %s: expected 4 teams, got %d", gd.ID, len(gd.Teams))}
		}
		var g team.Group
		g.ID = team.GroupID(gd.ID[0])
		for i, id := range gd.Teams {
			if !knownIDs[id] {
				return nil, &ValidationError{Reason: fmt.Sprintf("group %s references unknown team id %d", gd.ID, id)}
			}
			if prior, ok := assignedTo[id]; ok {
				return nil, &ValidationError{Reason: fmt.Sprintf("team id %d appears in both group %s and group %s", id, prior, gd.ID)}
			}
			assignedTo[id] = gd.ID
			g.Teams[i] = id
		}
		groups = append(groups, g)
	}

	return &tournament.Tournament{Teams: teams, Groups: groups}, nil
}
