package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

//go:embed *.json
var LevelsFS embed.FS

// CampaignFile lists the level files in play order.
const CampaignFile = "campaign.json"

// Campaign is the ordered level list.
type Campaign struct {
	Names  []string
	Levels []*Level
}

type campaignFile struct {
	Levels []string `json:"levels"`
}

// Len returns the number of levels.
func (c *Campaign) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Levels)
}

// At returns level i, or nil when i is out of range.
func (c *Campaign) At(i int) *Level {
	if c == nil || i < 0 || i >= len(c.Levels) {
		return nil
	}
	return c.Levels[i]
}

var ErrEmptyCampaign = errors.New("levels: campaign has no levels")

// LoadCampaign reads the campaign and every level it names from fsys.
func LoadCampaign(fsys fs.FS) (*Campaign, error) {
	data, err := fs.ReadFile(fsys, CampaignFile)
	if err != nil {
		return nil, fmt.Errorf("read campaign: %w", err)
	}
	var cf campaignFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("unmarshal campaign: %w", err)
	}
	if len(cf.Levels) == 0 {
		return nil, ErrEmptyCampaign
	}

	c := &Campaign{}
	for _, name := range cf.Levels {
		lvl, err := LoadLevelFromFS(fsys, name)
		if err != nil {
			return nil, err
		}
		c.Names = append(c.Names, name)
		c.Levels = append(c.Levels, lvl)
	}
	return c, nil
}

// LoadDefaultCampaign loads the campaign from dir when it holds a campaign
// file, falling back to the embedded levels otherwise.
func LoadDefaultCampaign(dir string) (*Campaign, error) {
	if dir != "" {
		if _, err := os.Stat(path.Join(dir, CampaignFile)); err == nil {
			return LoadCampaign(os.DirFS(dir))
		}
	}
	return LoadCampaign(LevelsFS)
}

// LoadLevelFromFS reads, decodes and validates one level file.
func LoadLevelFromFS(fsys fs.FS, name string) (*Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", name, err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return &lvl, nil
}
