// Package hookpoint defines the closed set of lifecycle points a rule
// may bind to.
package hookpoint

// Point identifies a single lifecycle event at which rules may fire.
type Point string

const (
	TurnPre          Point = "turn:pre"
	TurnPost         Point = "turn:post"
	TurnToolPre      Point = "turn:tool:pre"
	TurnToolPost     Point = "turn:tool:post"
	SubagentSpawnPre Point = "subagent:spawn:pre"
	SubagentToolPre  Point = "subagent:tool:pre"
	SubagentToolPost Point = "subagent:tool:post"
	SubagentPost     Point = "subagent:post"
	CronPre          Point = "cron:pre"
	CronPost         Point = "cron:post"
)

var known = map[Point]bool{
	TurnPre:          true,
	TurnPost:         true,
	TurnToolPre:      true,
	TurnToolPost:     true,
	SubagentSpawnPre: true,
	SubagentToolPre:  true,
	SubagentToolPost: true,
	SubagentPost:     true,
	CronPre:          true,
	CronPost:         true,
}

// Known reports whether p belongs to the closed set of lifecycle points.
func Known(p Point) bool {
	return known[p]
}

// All returns the closed set of lifecycle points, in a stable order.
func All() []Point {
	return []Point{
		TurnPre, TurnPost, TurnToolPre, TurnToolPost,
		SubagentSpawnPre, SubagentToolPre, SubagentToolPost, SubagentPost,
		CronPre, CronPost,
	}
}
