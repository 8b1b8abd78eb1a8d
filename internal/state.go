package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ViewFile is the persisted selection. A zero value means nothing was saved.
type ViewFile struct {
	Coin   string    `json:"coin"`
	Metric Metric    `json:"metric"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

func (v ViewFile) IsZero() bool {
	return v.Coin == "" && v.Metric == "" && v.Start.IsZero() && v.End.IsZero()
}

func SaveView(filename string, view ViewFile) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create state file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(view); err != nil {
		return fmt.Errorf("failed to encode state data: %w", err)
	}
	return nil
}

// LoadView returns a zero ViewFile when filename does not exist.
func LoadView(filename string) (ViewFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return ViewFile{}, nil
		}
		return ViewFile{}, fmt.Errorf("failed to open state file: %w", err)
	}
	defer file.Close()

	var view ViewFile
	if err := json.NewDecoder(file).Decode(&view); err != nil {
		return ViewFile{}, fmt.Errorf("failed to decode state data: %w", err)
	}
	return view, nil
}
