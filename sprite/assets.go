// SPDX-License-Identifier: GPL-2.0-or-later

package sprite

// Alien is the 11x8 invader used by the tutorial.
var Alien = MustParse(
	"..@.....@..",
	"...@...@...",
	"..@@@@@@@..",
	".@@.@@@.@@.",
	"@@@@@@@@@@@",
	"@.@@@@@@@.@",
	"@.@.....@.@",
	"...@@.@@...",
)
