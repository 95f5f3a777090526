package config

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vadim010975/retro-tactics/internal/entities"
	"github.com/vadim010975/retro-tactics/internal/errors"
)

//go:embed archetypes.yaml
var defaultArchetypes []byte

type archetypeFile struct {
	Archetypes []archetypeRow `yaml:"archetypes"`
}

type archetypeRow struct {
	Name        string  `yaml:"name"`
	Side        string  `yaml:"side"`
	Attack      float64 `yaml:"attack"`
	Defence     float64 `yaml:"defence"`
	HikeRange   int     `yaml:"hike_range"`
	AttackRange int     `yaml:"attack_range"`
}

// LoadArchetypes returns the embedded stat table with the rows of the file
// at path laid over it. An empty path yields the embedded table.
func LoadArchetypes(path string) (entities.ArchetypeTable, error) {
	table := entities.ArchetypeTable{}
	if err := mergeArchetypes(table, defaultArchetypes); err != nil {
		return nil, errors.Wrap(err, "embedded archetypes")
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "read archetypes file").
				WithMeta("path", path)
		}
		if err := mergeArchetypes(table, data); err != nil {
			return nil, errors.Wrap(err, "archetypes file").WithMeta("path", path)
		}
	}

	if err := table.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid archetype table")
	}
	return table, nil
}

func mergeArchetypes(table entities.ArchetypeTable, data []byte) error {
	var file archetypeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse archetypes yaml")
	}

	for _, row := range file.Archetypes {
		if row.Name == "" {
			return errors.InvalidArgument("archetype name is required")
		}
		side, err := entities.ParseSide(row.Side)
		if err != nil {
			return errors.Wrap(err, "archetype "+row.Name)
		}
		a := entities.Archetype(row.Name)
		table[a] = entities.Profile{
			Archetype:   a,
			Side:        side,
			Attack:      row.Attack,
			Defence:     row.Defence,
			HikeRange:   row.HikeRange,
			AttackRange: row.AttackRange,
		}
	}
	return nil
}
