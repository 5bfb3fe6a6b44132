package catalog

// DefaultMoveType is shown for moves that don't say what type they are.
const DefaultMoveType = "Normal"

// statOrder is the order base stats are shown in.
var statOrder = []struct{ key, label string }{
	{"hp", "HP"},
	{"atk", "Attack"},
	{"def", "Defense"},
	{"spa", "Sp. Atk"},
	{"spd", "Sp. Def"},
	{"spe", "Speed"},
}

// Stat is one base stat of a pokemon.
type Stat struct {
	Label string
	Value string
}

// MoveSummary describes one move a pokemon can learn.
type MoveSummary struct {
	ID       string
	Name     string
	Type     string
	Power    string
	Accuracy string
	PP       string
	Category string
}

// Detail is everything shown about a single pokemon.
type Detail struct {
	Entry
	Stats     []Stat
	Abilities []string
	Moves     []MoveSummary
	Record    Record
}

// HasLearnset tells whether the record lists the moves it can learn.
func HasLearnset(r Record) bool {
	_, ok := r["learnset"]
	return ok
}

// Learnset returns the move ids the record can learn. Showdown serves
// learnsets either as a list of ids or as an object keyed by id; object
// keys are returned sorted.
func Learnset(r Record) []string {
	if _, ok := r["learnset"].([]interface{}); ok {
		return r.Strings("learnset")
	}
	_, keys := r.Object("learnset")
	return keys
}

// SummarizeMoves resolves move ids against the moves catalog. Ids that
// aren't in the catalog are left out.
func SummarizeMoves(ids []string, moves *Catalog) []MoveSummary {
	summaries := []MoveSummary{}
	if moves == nil {
		return summaries
	}
	for _, id := range ids {
		move, ok := moves.Get(id)
		if !ok {
			continue
		}
		name, ok := move.Name()
		if !ok {
			name = id
		}
		moveType, ok := move.String("type")
		if !ok {
			moveType = DefaultMoveType
		}
		summaries = append(summaries, MoveSummary{
			ID:       id,
			Name:     name,
			Type:     moveType,
			Power:    move.Display("basePower"),
			Accuracy: move.Display("accuracy"),
			PP:       move.Display("pp"),
			Category: move.Display("category"),
		})
	}
	return summaries
}

// NewDetail builds the detail view of a pokemon. moves may be nil when
// the record has no learnset.
func NewDetail(id string, r Record, moves *Catalog) Detail {
	d := Detail{
		Entry:  makeEntry(id, r),
		Record: r,
	}

	if stats, _ := r.Object("baseStats"); stats != nil {
		statRecord := Record(stats)
		for _, s := range statOrder {
			if _, ok := stats[s.key]; ok {
				d.Stats = append(d.Stats, Stat{Label: s.label, Value: statRecord.Display(s.key)})
			}
		}
	}

	if abilities, slots := r.Object("abilities"); abilities != nil {
		for _, slot := range slots {
			if name, ok := abilities[slot].(string); ok {
				d.Abilities = append(d.Abilities, name)
			}
		}
	}

	if HasLearnset(r) {
		d.Moves = SummarizeMoves(Learnset(r), moves)
	}
	return d
}
