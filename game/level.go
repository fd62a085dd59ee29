package game

// Segment is one edge of the static level. Endpoint order is meaningful:
// the face normal is P2-P1 rotated a quarter turn counterclockwise, so the
// winding of a segment decides which side of it counts as "up" for the
// grounded check. Level authoring owns that contract.
type Segment struct {
	P1 Vec2 `json:"p1"`
	P2 Vec2 `json:"p2"`
}

// Level is loaded once at startup and shared read-only by every collision
// check for the lifetime of the process. Tiles are renderer data only;
// physics reads nothing but the segments.
type Level struct {
	Segments []Segment `json:"segments"`
	Tiles    []Vec2    `json:"tiles"`
}
