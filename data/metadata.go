package data

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Metadata is the free-form bag attached to producers and artists.
// The keys we understand are typed; anything else lands in Extra so
// consumers never have to probe an open dictionary.
type Metadata struct {
	ImageURL string            `json:"image_url,omitempty"`
	Genres   []string          `json:"genres,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

func (m Metadata) IsZero() bool {
	return m.ImageURL == "" && len(m.Genres) == 0 && len(m.Extra) == 0
}

// Value stores the bag as a JSON text column.
func (m Metadata) Value() (driver.Value, error) {
	if m.IsZero() {
		return nil, nil
	}
	bs, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("error serializing metadata: %w", err)
	}
	return string(bs), nil
}

func (m *Metadata) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = Metadata{}
		return nil
	case []byte:
		return m.unmarshal(v)
	case string:
		return m.unmarshal([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into metadata", src)
	}
}

func (m *Metadata) unmarshal(bs []byte) error {
	if len(bs) == 0 {
		*m = Metadata{}
		return nil
	}
	if err := json.Unmarshal(bs, m); err != nil {
		return fmt.Errorf("error parsing metadata: %w", err)
	}
	return nil
}
