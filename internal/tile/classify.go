package tile

import (
	"errors"
	"fmt"
)

var ErrUnclassifiable = errors.New("tile has an impossible number of missing neighbors")

// Class is a tile's position category in the assembled image.
type Class int

const (
	Interior Class = iota // no missing neighbors
	Edge                  // one missing neighbor
	Corner                // two missing neighbors
)

func (c Class) String() string {
	switch c {
	case Interior:
		return "interior"
	case Edge:
		return "edge"
	case Corner:
		return "corner"
	default:
		return "invalid"
	}
}

// Classes buckets tile IDs by position. Each list is in ascending order.
type Classes struct {
	Corners  []ID
	Edges    []ID
	Interior []ID
}

// CornerProduct returns the product of the corner tile identifiers.
func (c *Classes) CornerProduct() int64 {
	product := int64(1)
	for _, id := range c.Corners {
		product *= int64(id)
	}
	return product
}

// Of returns the class of a neighbor record.
func Of(rec Record) (Class, error) {
	switch rec.Missing() {
	case 0:
		return Interior, nil
	case 1:
		return Edge, nil
	case 2:
		return Corner, nil
	default:
		return Interior, fmt.Errorf("%w: %d", ErrUnclassifiable, rec.Missing())
	}
}

// ClassifyRecords buckets tiles by the number of none entries in their
// neighbor records.
func ClassifyRecords(records map[ID]Record) (*Classes, error) {
	c := &Classes{}
	for _, id := range sortedKeys(records) {
		class, err := Of(records[id])
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", id, err)
		}
		switch class {
		case Corner:
			c.Corners = append(c.Corners, id)
		case Edge:
			c.Edges = append(c.Edges, id)
		default:
			c.Interior = append(c.Interior, id)
		}
	}
	return c, nil
}

// Classify indexes and resolves s, then buckets its tiles.
func Classify(s Set) (*Classes, error) {
	records, err := Resolve(s, NewIndex(s))
	if err != nil {
		return nil, err
	}
	return ClassifyRecords(records)
}
