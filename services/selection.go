package services

import (
	"github.com/RBazelais/BoltBucket/catalog"
	"github.com/RBazelais/BoltBucket/models"
	"github.com/spf13/cast"
)

// SelectionKind tags the shape a category selection arrived in. The UI and
// the persisted rows historically used three different representations for
// the same idea (a live option object, a list of stored snapshots, or a bare
// option id), so the shape is pinned down once here and every consumer works
// off the tag instead of re-sniffing it.
type SelectionKind int

const (
	Unselected SelectionKind = iota
	SingleOption
	SnapshotList
	RawID
)

// Selection is a tagged union: exactly one of Option, Snapshots or ID is
// meaningful, according to Kind.
type Selection struct {
	Kind      SelectionKind
	Option    catalog.Option
	Snapshots []models.OptionSnapshot
	ID        string
}

func NoSelection() Selection {
	return Selection{Kind: Unselected}
}

func SelectOption(opt catalog.Option) Selection {
	return Selection{Kind: SingleOption, Option: opt}
}

func SelectSnapshots(snaps []models.OptionSnapshot) Selection {
	if len(snaps) == 0 {
		return NoSelection()
	}
	return Selection{Kind: SnapshotList, Snapshots: snaps}
}

func SelectID(id string) Selection {
	if id == "" {
		return NoSelection()
	}
	return Selection{Kind: RawID, ID: id}
}

// NormalizeSelection maps a decoded JSON value onto a Selection. This is the
// single boundary where loose payload shapes are resolved; past it, only the
// tagged union circulates.
func NormalizeSelection(v any) Selection {
	switch val := v.(type) {
	case nil:
		return NoSelection()
	case Selection:
		return val
	case catalog.Option:
		return SelectOption(val)
	case *catalog.Option:
		if val == nil {
			return NoSelection()
		}
		return SelectOption(*val)
	case models.OptionSnapshot:
		return SelectSnapshots([]models.OptionSnapshot{val})
	case []models.OptionSnapshot:
		return SelectSnapshots(val)
	case string:
		return SelectID(val)
	case map[string]any:
		return SelectSnapshots([]models.OptionSnapshot{snapshotFromMap(val)})
	case []any:
		snaps := make([]models.OptionSnapshot, 0, len(val))
		for _, entry := range val {
			if m, ok := entry.(map[string]any); ok {
				snaps = append(snaps, snapshotFromMap(m))
			}
		}
		return SelectSnapshots(snaps)
	default:
		return NoSelection()
	}
}

// NormalizeCategoryImages lifts a persisted category_images map into
// per-category Selections.
func NormalizeCategoryImages(images models.CategoryImageMap) map[string]Selection {
	selections := make(map[string]Selection, len(images))
	for category, snaps := range images {
		selections[category] = SelectSnapshots(snaps)
	}
	return selections
}

// MatchesID reports whether the selection refers to the given option id,
// whatever shape it came in as. A bare id only matches by equality; snapshot
// lists match if any entry has the id.
func (s Selection) MatchesID(id string) bool {
	switch s.Kind {
	case SingleOption:
		return s.Option.ID == id
	case SnapshotList:
		for _, snap := range s.Snapshots {
			if snap.ID == id {
				return true
			}
		}
		return false
	case RawID:
		return s.ID == id
	default:
		return false
	}
}

// PriceSum returns the selection's contribution to the total price. A bare id
// carries no price information and contributes zero, as does no selection.
func (s Selection) PriceSum() float64 {
	switch s.Kind {
	case SingleOption:
		return s.Option.Price
	case SnapshotList:
		var sum float64
		for _, snap := range s.Snapshots {
			sum += snap.Price
		}
		return sum
	default:
		return 0
	}
}

func snapshotFromMap(m map[string]any) models.OptionSnapshot {
	price, _ := cast.ToFloat64E(m["price"])
	return models.OptionSnapshot{
		ID:    cast.ToString(m["id"]),
		Label: cast.ToString(m["label"]),
		Image: cast.ToString(m["image"]),
		Price: price,
	}
}
