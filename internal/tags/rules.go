// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tags

// Rule assigns one tag from an ordered list of keyword patterns. Patterns
// are OR'd: the first match is sufficient and later patterns are skipped.
type Rule struct {
	Tag      string   `yaml:"tag"`
	Patterns []string `yaml:"patterns"`
}

// DefaultRules is the built-in tag vocabulary. Rules are independent of each
// other, so one paper can collect several tags.
var DefaultRules = []Rule{
	{Tag: "Dynamic", Patterns: []string{
		`dynamic`, `deformable`, `temporal`, `4d[\s\-]`,
		`time[\s\-]varying`, `motion`,
	}},
	{Tag: "SLAM", Patterns: []string{
		`\bslam\b`, `simultaneous localization`, `visual odometry`,
		`mapping and localization`,
	}},
	{Tag: "Avatar", Patterns: []string{
		`avatar`, `human body`, `human reconstruction`,
		`animatable`, `body model`, `face reconstruction`,
		`head avatar`, `hand avatar`, `drivable`,
	}},
	{Tag: "Autonomous Driving", Patterns: []string{
		`autonomous driving`, `self[\s\-]driving`, `street[\s\-]view`,
		`urban scene`, `driving scene`, `lidar`,
	}},
	{Tag: "Medical", Patterns: []string{
		`medical`, `surgical`, `endoscop`, `colonoscop`,
		`ct[\s\-]`, `mri[\s\-]`, `radiology`, `anatomy`,
	}},
	{Tag: "Compression", Patterns: []string{
		`compress`, `compact`, `pruning`, `quantiz`,
		`lightweight`, `efficient representation`,
	}},
	{Tag: "Mesh", Patterns: []string{
		`\bmesh\b`, `surface reconstruction`, `marching cubes`,
		`sdf[\s\-]`, `signed distance`,
	}},
	{Tag: "Rendering", Patterns: []string{
		`real[\s\-]time rendering`, `novel view`, `view synthesis`,
		`relighting`, `anti[\s\-]alias`, `ray tracing`,
	}},
	{Tag: "Editing", Patterns: []string{
		`editing`, `manipulation`, `styliz`, `text[\s\-]driven`,
		`inpainting`, `scene editing`,
	}},
	{Tag: "Generation", Patterns: []string{
		`generat`, `diffusion`, `text[\s\-]to[\s\-]3d`,
		`image[\s\-]to[\s\-]3d`, `dreamfusion`, `score distillation`,
	}},
	{Tag: "Segmentation", Patterns: []string{
		`segment`, `semantic`, `panoptic`, `instance[\s\-]`,
		`object[\s\-]detection`,
	}},
	{Tag: "Physics", Patterns: []string{
		`physic`, `simulat`, `fluid`, `cloth`, `elastic`,
		`deformation`,
	}},
	{Tag: "Sparse View", Patterns: []string{
		`sparse[\s\-]view`, `few[\s\-]shot`, `single[\s\-]image`,
		`one[\s\-]shot`, `limited view`,
	}},
	{Tag: "Language", Patterns: []string{
		`language`, `\bllm\b`, `\bclip\b`, `open[\s\-]vocabulary`,
		`text[\s\-]guided`, `natural language`,
	}},
	{Tag: "Robotics", Patterns: []string{
		`robot`, `grasp`, `manipulat`, `navigation`,
		`planning`,
	}},
}
