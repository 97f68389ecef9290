package octtext

import "errors"

// WalkFunc is called for each object in stream order.
// obj holds the name and descriptor, and the decoded value when err is nil.
// err is the decoding error for an object that could not be decoded.
// Return nil to continue walking, ErrStopWalk to stop without an error, or
// any other error to stop and return it.
type WalkFunc func(obj NamedObject, err error) error

// Walk reads every remaining object of r and calls fn for each one.
// Objects that fail to decode are reported to fn and then skipped.
// Walk returns nil when the stream ends cleanly.
//
// Example:
//
//	err := octtext.Walk(r, func(obj octtext.NamedObject, err error) error {
//	    if err != nil {
//	        return nil // skip it
//	    }
//	    fmt.Println(obj.Name, obj.Descriptor.Shape)
//	    return nil
//	})
func Walk(r *Reader, fn WalkFunc) error {
	for r.Valid() {
		h := NamedObject{Name: r.NextName(), Descriptor: r.NextDescriptor()}

		obj, ok := r.ReadObject()
		if ok {
			if err := fn(obj, nil); err != nil {
				return stopErr(err)
			}
			continue
		}

		if !r.Valid() {
			break
		}
		if err := fn(h, r.Err()); err != nil {
			return stopErr(err)
		}
		if !r.Skip() {
			break
		}
	}

	if err := r.Err(); err != nil && !errors.Is(err, ErrEndOfStream) {
		return err
	}
	return nil
}

func stopErr(err error) error {
	if errors.Is(err, ErrStopWalk) {
		return nil
	}
	return err
}
