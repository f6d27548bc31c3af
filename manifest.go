package confocal

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ManifestRow names the source images and label of one montage row.
type ManifestRow struct {
	Channel1 string `json:"channel1"`
	Channel2 string `json:"channel2"`
	Label    string `json:"label,omitempty"`
}

// Manifest describes a whole montage: the ordered rows, the processing config
// shared by every row, and the vertical gap between stacked rows.
type Manifest struct {
	Config ProcessingConfig `json:"config"`
	Rows   []ManifestRow    `json:"rows"`
	Gap    int              `json:"gap"`
}

// ParseManifest decodes a montage manifest. Config fields absent from the
// document keep their DefaultConfig values; an absent gap keeps the default.
func ParseManifest(data []byte) (*Manifest, error) {
	m := Manifest{
		Config: DefaultConfig(),
		Gap:    defaultMontageGap,
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest for structurally impossible montages.
func (m *Manifest) Validate() error {
	if m == nil {
		return errors.New("manifest is nil")
	}
	if len(m.Rows) == 0 {
		return errors.New("manifest has no rows")
	}
	for i, row := range m.Rows {
		if row.Channel1 == "" || row.Channel2 == "" {
			return fmt.Errorf("row %d: both channel files required", i)
		}
	}
	if m.Gap < 0 {
		return fmt.Errorf("%w: negative gap %d", ErrDegenerateGeometry, m.Gap)
	}
	return nil
}
