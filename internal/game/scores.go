package game

// ScoreTable maps each player to an accumulated score. Iteration follows the
// order players were entered.
type ScoreTable struct {
	order  []string
	scores map[string]float64
}

func newScoreTable(players []Player) *ScoreTable {
	st := &ScoreTable{
		order:  make([]string, 0, len(players)),
		scores: make(map[string]float64, len(players)),
	}
	for _, p := range players {
		st.order = append(st.order, p.Name)
		st.scores[p.Name] = 0
	}
	return st
}

func (st *ScoreTable) add(name string, points float64) {
	st.scores[name] += points
}

// Score returns the current score for name.
func (st *ScoreTable) Score(name string) (float64, bool) {
	s, ok := st.scores[name]
	return s, ok
}

// Names returns player names in entry order.
func (st *ScoreTable) Names() []string {
	out := make([]string, len(st.order))
	copy(out, st.order)
	return out
}

// Len is the number of players in the table.
func (st *ScoreTable) Len() int {
	return len(st.order)
}

// Leader returns the player with the strictly highest score. On a tie the
// player entered first wins.
func (st *ScoreTable) Leader() (string, float64) {
	var (
		best      string
		bestScore float64
	)
	for i, name := range st.order {
		s := st.scores[name]
		if i == 0 || s > bestScore {
			best, bestScore = name, s
		}
	}
	return best, bestScore
}

// Map returns a copy of the scores keyed by name.
func (st *ScoreTable) Map() map[string]float64 {
	out := make(map[string]float64, len(st.scores))
	for k, v := range st.scores {
		out[k] = v
	}
	return out
}
