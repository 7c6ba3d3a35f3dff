// Package team contains the per-team season snapshot fed into a prediction.
package team

// Quadrant identifies one of the four NCAA schedule-strength buckets.
type Quadrant int

// Quadrants ordered from hardest (Q1) to weakest (Q4).
const (
	Q1 Quadrant = iota + 1
	Q2
	Q3
	Q4
)

// QuadrantCount is the number of schedule-strength buckets.
const QuadrantCount = 4

// QuadrantRecord is a win/loss pair within one quadrant.
type QuadrantRecord struct {
	Wins   int `koanf:"wins"   json:"wins"`
	Losses int `koanf:"losses" json:"losses"`
}

// Games returns wins plus losses.
func (r QuadrantRecord) Games() int { return r.Wins + r.Losses }

// Metrics is a team's advanced-stats snapshot at prediction time.
// Ranks follow the lower-is-better convention.
type Metrics struct {
	Name             string         `koanf:"name"               json:"name"`
	NETRank          int            `koanf:"net_rank"           json:"net_rank"`
	SORRank          int            `koanf:"sor_rank"           json:"sor_rank"`
	AdjOffEfficiency float64        `koanf:"adj_off_efficiency" json:"adj_off_efficiency"`
	AdjDefEfficiency float64        `koanf:"adj_def_efficiency" json:"adj_def_efficiency"`
	Q1               QuadrantRecord `koanf:"q1"                 json:"q1"`
	Q2               QuadrantRecord `koanf:"q2"                 json:"q2"`
	Q3               QuadrantRecord `koanf:"q3"                 json:"q3"`
	Q4               QuadrantRecord `koanf:"q4"                 json:"q4"`
}

// EfficiencyMargin is adjusted offense minus adjusted defense.
func (m Metrics) EfficiencyMargin() float64 {
	return m.AdjOffEfficiency - m.AdjDefEfficiency
}

// Quadrants returns the four records in Q1..Q4 order.
func (m Metrics) Quadrants() [QuadrantCount]QuadrantRecord {
	return [QuadrantCount]QuadrantRecord{m.Q1, m.Q2, m.Q3, m.Q4}
}

// Record returns the record for q, or the zero record for an unknown quadrant.
func (m Metrics) Record(q Quadrant) QuadrantRecord {
	switch q {
	case Q1:
		return m.Q1
	case Q2:
		return m.Q2
	case Q3:
		return m.Q3
	case Q4:
		return m.Q4
	default:
		return QuadrantRecord{}
	}
}
