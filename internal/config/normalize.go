package config

import (
	"strings"
)

func (c *Config) normalize() error {
	c.Export.Destination = strings.ToUpper(strings.TrimSpace(c.Export.Destination))
	if c.Export.Destination == "" {
		c.Export.Destination = defaultDestination
	}

	types := c.Export.ObjectTypes[:0]
	for _, t := range c.Export.ObjectTypes {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			types = append(types, trimmed)
		}
	}
	c.Export.ObjectTypes = types

	var err error
	if c.Export.OutputDir, err = expandPath(strings.TrimSpace(c.Export.OutputDir)); err != nil {
		return err
	}
	if c.Export.SceneDir, err = expandPath(strings.TrimSpace(c.Export.SceneDir)); err != nil {
		return err
	}
	if c.Stats.LogPath, err = expandPath(strings.TrimSpace(c.Stats.LogPath)); err != nil {
		return err
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
