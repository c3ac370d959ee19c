package header

import "errors"

// SkipRecord is returned by a WalkFunc to skip the fields of the record
// it was called for.
var SkipRecord = errors.New("skip this record")

// WalkFunc is called for each field during traversal.
// path is the full field path. Return nil to continue walking,
// SkipRecord to skip a record's fields, or any other error to stop.
type WalkFunc func(path string, n Node) error

// Walk visits every field of the header depth-first in declaration order.
// A record is visited before its fields. Arrays are visited once as a
// whole; use Node.Index to reach their elements.
//
// Example:
//
//	v.Walk(func(path string, n header.Node) error {
//	    if n.Kind() == schema.KindRecord {
//	        return nil
//	    }
//	    val, err := n.Value()
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(path, "=", val)
//	    return nil
//	})
func (v *View) Walk(fn WalkFunc) error {
	return walkNode(v.Root(), fn)
}

// Walk visits the fields below n, as View.Walk does for the root.
func (n Node) Walk(fn WalkFunc) error {
	return walkNode(n, fn)
}

func walkNode(n Node, fn WalkFunc) error {
	for _, child := range n.Children() {
		err := fn(child.Path(), child)
		if err == SkipRecord {
			continue
		}
		if err != nil {
			return err
		}
		if err := walkNode(child, fn); err != nil {
			return err
		}
	}
	return nil
}
