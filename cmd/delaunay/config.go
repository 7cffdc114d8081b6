package main

import (
	"os"

	"github.com/osuushi/delaunay"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings that can come from a yaml file. Flags given on the command line win
// over the file.
type config struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Format   string `yaml:"format"`
	Strict   bool   `yaml:"strict"`
	Verbose  bool   `yaml:"verbose"`
	Validate bool   `yaml:"validate"`

	Render struct {
		Scale         float64 `yaml:"scale"`
		Padding       float64 `yaml:"padding"`
		Circumcenters bool    `yaml:"circumcenters"`
		Labels        bool    `yaml:"labels"`
	} `yaml:"render"`
}

func defaultConfig() config {
	var c config
	c.Input = pipeName
	c.Output = pipeName
	c.Format = formatJSON
	c.Render.Padding = 20
	return c
}

func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "parsing config %s", path)
	}
	if !validFormat(c.Format) {
		return c, errors.Errorf("config %s: unknown format %q", path, c.Format)
	}
	return c, nil
}

func (c config) renderOptions() delaunay.RenderOptions {
	return delaunay.RenderOptions{
		Scale:         c.Render.Scale,
		Padding:       c.Render.Padding,
		Circumcenters: c.Render.Circumcenters,
		Labels:        c.Render.Labels,
	}
}
