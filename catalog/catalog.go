// Package catalog loads the read-only data tables the attendant answers
// from: pricing plans, auto-help entries and reseller tiers. Field names
// follow the deployed JSON files, which are maintained by operators in
// Portuguese.
package catalog

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"
)

type Plan struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Valor     string `json:"valor"`
	PixManual string `json:"pix_manual"`
}

type Help struct {
	Chaves   []string `json:"chaves"`
	Titulo   string   `json:"titulo,omitempty"`
	Resposta string   `json:"resposta"`
	Link     string   `json:"link,omitempty"`
}

type ResellerTier struct {
	Creditos      int     `json:"creditos"`
	ValorUnitario float64 `json:"valor_unitario"`
	ValorTotal    float64 `json:"valor_total"`
}

type helpFile struct {
	Ajudas []Help `json:"ajudas"`
}

type resellerFile struct {
	PlanosRevenda []ResellerTier `json:"planos_revenda"`
}

// Catalog is the merged view of the three tables. Empty slices are valid:
// a missing or malformed file degrades to an empty table, never an error.
type Catalog struct {
	Plans     []Plan
	Helps     []Help
	Resellers []ResellerTier
}

type Paths struct {
	Plans    string
	Help     string
	Reseller string
}

// Load reads every table, logging and skipping the ones that cannot be
// parsed. It always returns a usable catalog.
func Load(logger *slog.Logger, paths Paths) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Catalog{}

	if err := readJSON(paths.Plans, &c.Plans); err != nil {
		logger.Warn("catalog_load_error", "table", "plans", "path", paths.Plans, "error", err.Error())
	}
	var helps helpFile
	if err := readJSON(paths.Help, &helps); err != nil {
		logger.Warn("catalog_load_error", "table", "help", "path", paths.Help, "error", err.Error())
	}
	c.Helps = helps.Ajudas
	var tiers resellerFile
	if err := readJSON(paths.Reseller, &tiers); err != nil {
		logger.Warn("catalog_load_error", "table", "reseller", "path", paths.Reseller, "error", err.Error())
	}
	c.Resellers = tiers.PlanosRevenda

	logger.Info("catalog_loaded",
		"plans", len(c.Plans),
		"help_entries", len(c.Helps),
		"reseller_tiers", len(c.Resellers),
	)
	return c
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// FindPlan looks a plan up by its button id.
func (c *Catalog) FindPlan(id string) (Plan, bool) {
	for _, p := range c.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// MatchHelp returns the first help entry, in catalog order, one of whose
// keys is contained in text. Matching is case-insensitive substring
// containment, nothing smarter.
func (c *Catalog) MatchHelp(text string) (Help, bool) {
	lower := strings.ToLower(text)
	for _, h := range c.Helps {
		for _, key := range h.Chaves {
			if key != "" && strings.Contains(lower, strings.ToLower(key)) {
				return h, true
			}
		}
	}
	return Help{}, false
}
