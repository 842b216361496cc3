package headless

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smasonuk/wirecube"
)

// KeyStroke is a key event dispatched at a given tick.
type KeyStroke struct {
	Tick uint64
	Kind string // wirecube.EventKeyDown or wirecube.EventKeyUp
	Key  string
}

func (s KeyStroke) event() *wirecube.KeyEvent {
	return wirecube.NewKeyEvent(s.Key)
}

// ParseScript reads comma separated strokes of the form tick:down|up:key,
// for example "0:down:ArrowUp,30:up:ArrowUp".
func ParseScript(s string) ([]KeyStroke, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var out []KeyStroke
	for _, item := range strings.Split(s, ",") {
		parts := strings.Split(strings.TrimSpace(item), ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("key stroke %q: want tick:down|up:key", item)
		}
		tick, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("key stroke %q: bad tick: %w", item, err)
		}
		var kind string
		switch parts[1] {
		case "down":
			kind = wirecube.EventKeyDown
		case "up":
			kind = wirecube.EventKeyUp
		default:
			return nil, fmt.Errorf("key stroke %q: unknown kind %q", item, parts[1])
		}
		if parts[2] == "" {
			return nil, fmt.Errorf("key stroke %q: missing key", item)
		}
		out = append(out, KeyStroke{Tick: tick, Kind: kind, Key: parts[2]})
	}
	return out, nil
}
