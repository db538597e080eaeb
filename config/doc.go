/*
Package config loads expression-generation profiles from YAML or JSON and
turns them into builder options and constructors.

# Overview

A Profile names the expression kind, its fixed parameters (degree,
indeterminates, algebraic shape, function families) or asks for a random
configuration, plus the builder knobs (seed, bounds, menu, max degree).

# Basic Usage

	p, err := config.FromFile("worksheet.yaml")
	if err != nil {
	    return err
	}
	con, err := p.Constructor()
	if err != nil {
	    return err
	}
	opts, err := p.BuilderOptions()
	if err != nil {
	    return err
	}
	n, err := builder.Build(con, opts...)

# File Format

	kind: closedform       # polynomial | algebraic | closedform
	random: false          # true re-rolls degree/vars/flags per build
	seed: 42
	degree: 3
	vars: xy
	bounds: {low: -10, high: 10}
	algebraic: {root: 2, rational: true, proper: true}
	functions: {trig: true, log: false, expo: true}
	menu: [x, xy]
	max_degree: 4

Supported extensions: .yaml, .yml, .json.
*/
package config
