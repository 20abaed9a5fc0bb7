package driver

import "strings"

// Key is a logical key name as reported by the host, lower-cased.
type Key string

const (
	KeyW          Key = "w"
	KeyS          Key = "s"
	KeyA          Key = "a"
	KeyD          Key = "d"
	KeyArrowUp    Key = "arrowup"
	KeyArrowDown  Key = "arrowdown"
	KeyArrowLeft  Key = "arrowleft"
	KeyArrowRight Key = "arrowright"
	KeySpace      Key = "space"
	KeyEnter      Key = "enter"
)

// ParseKey normalizes a host key name: case is folded and a literal space
// becomes KeySpace.
func ParseKey(name string) Key {
	if name == " " {
		return KeySpace
	}
	return Key(strings.ToLower(name))
}

type keySet map[Key]bool

func (k keySet) any(keys ...Key) bool {
	for _, key := range keys {
		if k[key] {
			return true
		}
	}
	return false
}
