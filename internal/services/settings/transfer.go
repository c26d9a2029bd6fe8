package settings

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

func (s *service) ExportSources(ctx context.Context) (*ExportSourcesOutput, error) {
	world, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	selection := &loot.SourceSelection{
		Version:       loot.SourceSelectionVersion,
		Sources:       append([]loot.SourceRef{}, world.Defaults.Sources...),
		CreatureTypes: make(map[string]*loot.CreatureTypeOverride, len(world.CreatureTypes)),
		ExportedAt:    s.clock.Now(),
	}
	for name, override := range world.CreatureTypes {
		if override.IsEmpty() {
			continue
		}
		copied := *override
		selection.CreatureTypes[name] = &copied
	}

	data, err := json.MarshalIndent(selection, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal source selection")
	}

	slog.Info("Exported loot sources",
		"world_id", s.worldID,
		"sources", len(selection.Sources),
		"creature_types", len(selection.CreatureTypes))

	return &ExportSourcesOutput{Data: data, Selection: selection}, nil
}

func (s *service) ImportSources(ctx context.Context, input *ImportSourcesInput) (*ImportSourcesOutput, error) {
	if input == nil || len(input.Data) == 0 {
		return nil, errors.InvalidArgument("import data is required")
	}

	var selection loot.SourceSelection
	if err := json.Unmarshal(input.Data, &selection); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "import data is not a source selection")
	}
	if err := s.validate.Struct(&selection); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid source selection")
	}
	if selection.Version > loot.SourceSelectionVersion {
		return nil, errors.InvalidArgumentf("unsupported source selection version %d", selection.Version)
	}

	world, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := cloneSettings(world)
	if err != nil {
		return nil, err
	}

	output := &ImportSourcesOutput{}

	known := make(map[string]bool)
	filter := func(refs []loot.SourceRef) ([]loot.SourceRef, error) {
		kept := make([]loot.SourceRef, 0, len(refs))
		for _, ref := range refs {
			ok, seen := known[ref.Key()]
			if !seen {
				ok, err = s.exists(ctx, ref)
				if err != nil {
					return nil, err
				}
				known[ref.Key()] = ok
				if !ok {
					output.Dropped = append(output.Dropped, ref)
					output.Warnings = append(output.Warnings, loot.Warning{
						Code:    errors.CodeSourceUnavailable,
						Message: "dropped unknown source " + ref.Key(),
					})
					slog.Warn("Dropping unknown loot source on import", "source", ref.Key())
				}
			}
			if ok {
				kept = append(kept, ref)
			}
		}
		return kept, nil
	}

	updated.Defaults.Sources, err = filter(selection.Sources)
	if err != nil {
		return nil, err
	}
	output.Imported = len(updated.Defaults.Sources)

	updated.CreatureTypes = make(map[string]*loot.CreatureTypeOverride, len(selection.CreatureTypes))
	for name, override := range selection.CreatureTypes {
		if override == nil {
			continue
		}
		override.Sources, err = filter(override.Sources)
		if err != nil {
			return nil, err
		}
		if override.IsEmpty() {
			continue
		}
		updated.CreatureTypes[name] = override
	}
	output.CreatureTypes = len(updated.CreatureTypes)

	if _, err := s.save(ctx, updated); err != nil {
		return nil, err
	}

	slog.Info("Imported loot sources",
		"world_id", s.worldID,
		"imported", output.Imported,
		"dropped", len(output.Dropped),
		"creature_types", output.CreatureTypes)

	return output, nil
}

func (s *service) exists(ctx context.Context, ref loot.SourceRef) (bool, error) {
	if s.checker == nil {
		return true, nil
	}
	return s.checker.Exists(ctx, ref)
}
