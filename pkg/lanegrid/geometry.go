package lanegrid

import "math"

// Distance returns the Euclidean distance between two lane points.
// spacing converts a lane step into position units.
func Distance(laneA int, posA float64, laneB int, posB float64, spacing float64) float64 {
	dx := posA - posB
	dy := float64(laneA-laneB) * spacing
	return math.Sqrt(dx*dx + dy*dy)
}

// InEllipse reports whether the offset (dx, dy) lies inside or on an ellipse
// with horizontal radius rx and vertical radius ry. Zero radii collapse the axis.
func InEllipse(dx, dy, rx, ry float64) bool {
	if rx <= 0 && dx != 0 {
		return false
	}
	if ry <= 0 && dy != 0 {
		return false
	}
	var nx, ny float64
	if rx > 0 {
		nx = dx / rx
	}
	if ry > 0 {
		ny = dy / ry
	}
	return nx*nx+ny*ny <= 1+1e-9
}

// InCircle reports whether (dx, dy) lies within radius r.
func InCircle(dx, dy, r float64) bool {
	return dx*dx+dy*dy <= r*r+1e-9
}
