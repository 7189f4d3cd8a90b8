package main

import (
	"fmt"
	"path/filepath"

	"reflow/internal/config"
	"reflow/internal/taskfile"
)

// commandContext lazily resolves shared state (tool settings, taskfile) for
// subcommands from the persistent flags.
type commandContext struct {
	taskfileFlag *string
	configFlag   *string

	cfg     *config.Config
	cfgPath string
}

func newCommandContext(taskfileFlag, configFlag *string) *commandContext {
	return &commandContext{taskfileFlag: taskfileFlag, configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	flag := ""
	if c.configFlag != nil {
		flag = *c.configFlag
	}
	cfg, path, _, err := config.Load(flag)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.cfgPath = path
	return cfg, nil
}

// taskfilePath resolves the taskfile location to an absolute path.
func (c *commandContext) taskfilePath() (string, error) {
	path := "reflow.tasks"
	if c.taskfileFlag != nil && *c.taskfileFlag != "" {
		path = *c.taskfileFlag
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve taskfile path: %w", err)
	}
	return abs, nil
}

// loadTasks resolves and parses the taskfile.
func (c *commandContext) loadTasks() (string, []*taskfile.Task, error) {
	path, err := c.taskfilePath()
	if err != nil {
		return "", nil, err
	}
	tasks, err := taskfile.Load(path)
	if err != nil {
		return "", nil, err
	}
	return path, tasks, nil
}
