package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ivlev/scene2motn/internal/config"
	"github.com/ivlev/scene2motn/internal/logging"
	"github.com/ivlev/scene2motn/internal/scene"
	"github.com/ivlev/scene2motn/internal/system"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = err
				return
			}
		}
		cfg.BuildVersion = buildVersion
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(out io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: out,
	})
}

// loadScene opens the scene named in args, or the newest scene in the
// configured scene directory.
func loadScene(cfg *config.Config, args []string, out io.Writer) (*scene.File, error) {
	path := ""
	if len(args) > 0 {
		path = strings.TrimSpace(args[0])
	}
	if path == "" {
		latest, err := system.FindLatestScene(cfg.Export.SceneDir)
		if err != nil {
			return nil, fmt.Errorf("%w (put a scene file in %s or pass one explicitly)", err, cfg.Export.SceneDir)
		}
		path = latest
		fmt.Fprintf(out, "[*] Selected scene: %s\n", path)
	}
	return scene.Load(path)
}

// defaultOutputPath names the document after the scene file plus a timestamp.
func defaultOutputPath(outputDir, scenePath string, now time.Time) string {
	base := filepath.Base(scenePath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.ReplaceAll(name, " ", "_")
	return filepath.Join(outputDir, fmt.Sprintf("%s_%s.motn", name, now.Format("2006-01-02_15-04-05")))
}
