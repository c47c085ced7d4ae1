package robust

import "github.com/UMDGeoVis/mttri/types"

// SegmentRelation is the fine-grained classification of how two segments
// relate to each other, as required by constraint insertion: a proper
// crossing must trigger a flip, a shared endpoint must not.
type SegmentRelation int

const (
	NoInter SegmentRelation = iota
	Only1CV
	NotProper
	ProperInter
	UponNoCV
	UponAnd1CV
	UponAnd2CV
)

func (r SegmentRelation) String() string {
	switch r {
	case NoInter:
		return "NO_INTER"
	case Only1CV:
		return "ONLY_1CV"
	case NotProper:
		return "NOT_PROPER"
	case ProperInter:
		return "PROPER_INTER"
	case UponNoCV:
		return "UPON_NO_CV"
	case UponAnd1CV:
		return "UPON_AND_1CV"
	case UponAnd2CV:
		return "UPON_AND_2CV"
	default:
		return "SegmentRelation(?)"
	}
}

// ClassifySegments classifies the relation between segments (p,q) and (r,s),
// distinguishing shared-endpoint touches, strictly-interior touches, proper
// crossings, and collinear overlaps. It is built from the same orientation
// and on-segment primitives as SegmentIntersect, but keeps the cases
// SegmentIntersect collapses together.
func ClassifySegments(p, q, r, s types.Point) SegmentRelation {
	o1 := Orient2D(p, q, r)
	o2 := Orient2D(p, q, s)
	o3 := Orient2D(r, s, p)
	o4 := Orient2D(r, s, q)

	sharedEndpoint := samePoint(p, r) || samePoint(p, s) || samePoint(q, r) || samePoint(q, s)

	if o1 == 0 && o2 == 0 && o3 == 0 && o4 == 0 {
		overlap := overlapLength(p, q, r, s)
		if overlap <= 1e-12 {
			if sharedEndpoint {
				return Only1CV
			}
			return NoInter
		}
		countShared := 0
		if samePoint(p, r) || samePoint(p, s) {
			countShared++
		}
		if samePoint(q, r) || samePoint(q, s) {
			countShared++
		}
		switch countShared {
		case 2:
			return UponAnd2CV
		case 1:
			return UponAnd1CV
		default:
			return UponNoCV
		}
	}

	if o1*o2 < 0 && o3*o4 < 0 {
		return ProperInter
	}

	if sharedEndpoint {
		return Only1CV
	}

	if (o1 == 0 && onSegment(p, q, r)) ||
		(o2 == 0 && onSegment(p, q, s)) ||
		(o3 == 0 && onSegment(r, s, p)) ||
		(o4 == 0 && onSegment(r, s, q)) {
		return NotProper
	}

	return NoInter
}

func samePoint(a, b types.Point) bool {
	return a.X == b.X && a.Y == b.Y
}
