package report

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/udisondev/ttkbench/internal/model"
	"github.com/udisondev/ttkbench/internal/sim"
)

// RankingDocument is the JSON form of a ranking run.
type RankingDocument struct {
	Request     model.Request         `json:"request"`
	Trials      int                   `json:"trials"`
	Seed        uint32                `json:"seed"`
	Stats       []model.AggregateStat `json:"stats"`
	Excluded    []sim.Exclusion       `json:"excluded,omitempty"`
	RankChanges []Change              `json:"rankChanges,omitempty"`
}

// CurveDocument is the JSON form of a distance curve run.
type CurveDocument struct {
	Request model.Request `json:"request"`
	Trials  int           `json:"trials"`
	Seed    uint32        `json:"seed"`
	sim.CurveSet
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// ReadRanking decodes a RankingDocument written by WriteJSON.
func ReadRanking(r io.Reader) (RankingDocument, error) {
	var doc RankingDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return RankingDocument{}, fmt.Errorf("decoding ranking: %w", err)
	}
	return doc, nil
}
