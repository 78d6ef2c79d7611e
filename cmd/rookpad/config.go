package main

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap"
)

// fileConfig is the schema of an optional HCL settings file:
//
//	range       = "1-7"
//	strategy    = "enum"
//	max_results = 100000
//	parallel    = 4
//
// Every attribute is optional; flags override the file.
type fileConfig struct {
	Length     *int    `hcl:"length,optional"`
	Min        *int    `hcl:"min,optional"`
	Max        *int    `hcl:"max,optional"`
	Range      *string `hcl:"range,optional"`
	Strategy   *string `hcl:"strategy,optional"`
	MaxResults *int    `hcl:"max_results,optional"`
	Parallel   *int    `hcl:"parallel,optional"`
	Breakdown  *bool   `hcl:"breakdown,optional"`
}

// loadConfig parses and decodes a single HCL file.
func loadConfig(path string) (*fileConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var cfg fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	return &cfg, nil
}

// apply merges the file into s with the same leniency as the flags.
func (c *fileConfig) apply(s *settings, logger *zap.Logger) {
	l := lenient{logger: logger}
	itoa := func(p *int) string {
		if p == nil {
			return ""
		}
		return strconv.Itoa(*p)
	}

	if v, ok := l.positive("min", itoa(c.Min)); ok {
		s.Min = v
	}
	if v, ok := l.positive("max", itoa(c.Max)); ok {
		s.Max = v
	}
	if c.Range != nil {
		if lo, hi, ok := l.span("range", *c.Range); ok {
			s.Min, s.Max = lo, hi
		}
	}
	if v, ok := l.positive("length", itoa(c.Length)); ok {
		s.Min, s.Max = v, v
	}
	if c.Strategy != nil {
		if st, ok := l.strategy("strategy", *c.Strategy); ok {
			s.Strategy = st
		}
	}
	if v, ok := l.positive("max_results", itoa(c.MaxResults)); ok {
		s.MaxResults = int64(v)
	}
	if v, ok := l.positive("parallel", itoa(c.Parallel)); ok {
		s.Parallel = v
	}
	if c.Breakdown != nil {
		s.Breakdown = *c.Breakdown
	}
}
