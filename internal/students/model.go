package students

import "time"

// Student is a portal account whose resume can be rendered.
type Student struct {
	ID        int64
	Name      string
	Email     string
	Branch    string
	CreatedAt time.Time
}
