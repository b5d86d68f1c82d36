// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package environment

// Profile is a named set of tool arguments.
type Profile struct {
	Name      string          `yaml:"name" hcl:"name,optional"`
	Arguments []BatchArgument `yaml:"arguments" hcl:"argument,block"`
}

// BatchArgument is the argument string for one compile tool.
type BatchArgument struct {
	Name      string `yaml:"name" hcl:"name,label"`
	Arguments string `yaml:"arguments" hcl:"arguments,optional"`
}

// Map returns the arguments keyed by tool name. When a name appears more than once the first wins.
func (p *Profile) Map() map[string]string {
	m := make(map[string]string, len(p.Arguments))

	for _, a := range p.Arguments {
		if _, ok := m[a.Name]; ok {
			continue
		}

		m[a.Name] = a.Arguments
	}

	return m
}
