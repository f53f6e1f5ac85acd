// Package theme holds the dashboard brand palette. The table is fixed at
// build time; every accessor hands out copies.
package theme

import (
	"sort"
	"strings"
)

// Default is the shade a bare group name resolves to.
const Default = "DEFAULT"

var palette = map[string]map[string]string{
	"primary": {
		Default: "#003E71", // indigo dye
		"light": "#1A5490",
		"dark":  "#002A4F",
	},
	"secondary": {
		Default: "#8F0E34", // claret
		"light": "#A8234A",
		"dark":  "#6B0A28",
	},
	"accent": {
		Default: "#E9B93A", // saffron
		"light": "#EDC555",
		"dark":  "#D4A429",
	},
	"background": {
		Default: "#FFFFFF",
	},
	"surface": {
		Default:   "#FFFFFF",
		"variant": "#F9FAFB",
	},
	"text": {
		"primary":    "#003E71",
		"secondary":  "#6B7280",
		"on-primary": "#FFFFFF",
		"on-accent":  "#003E71",
	},
	"status": {
		"success": "#10B981",
		"warning": "#E9B93A",
		"error":   "#8F0E34",
		"info":    "#003E71",
	},
	"gray": {
		"50":  "#F9FAFB",
		"100": "#F3F4F6",
		"200": "#E5E7EB",
		"300": "#D1D5DB",
		"400": "#9CA3AF",
		"500": "#6B7280",
		"600": "#4B5563",
		"700": "#374151",
		"800": "#1F2937",
		"900": "#111827",
	},
}

var contentGlobs = []string{
	"./src/pages/**/*.{js,ts,jsx,tsx,mdx}",
	"./src/components/**/*.{js,ts,jsx,tsx,mdx}",
	"./src/app/**/*.{js,ts,jsx,tsx,mdx}",
}

// Lookup resolves "group.shade" (e.g. "primary.DEFAULT", "gray.500") or a
// bare group name, which means its DEFAULT shade.
func Lookup(path string) (string, bool) {
	group, shade, ok := strings.Cut(path, ".")
	if !ok {
		shade = Default
	}
	shades, ok := palette[group]
	if !ok {
		return "", false
	}
	hex, ok := shades[shade]
	return hex, ok
}

// Palette returns a deep copy of the table.
func Palette() map[string]map[string]string {
	out := make(map[string]map[string]string, len(palette))
	for g, shades := range palette {
		cp := make(map[string]string, len(shades))
		for k, v := range shades {
			cp[k] = v
		}
		out[g] = cp
	}
	return out
}

// Flatten returns the table keyed by "group.shade".
func Flatten() map[string]string {
	out := make(map[string]string)
	for g, shades := range palette {
		for k, v := range shades {
			out[g+"."+k] = v
		}
	}
	return out
}

// Keys lists every "group.shade" path in sorted order.
func Keys() []string {
	keys := make([]string, 0, 48)
	for k := range Flatten() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ContentGlobs lists the source paths the stylesheet build scans.
func ContentGlobs() []string {
	return append([]string(nil), contentGlobs...)
}
