package muncher

// Maze layout legend:
//
//	# = wall
//	. = pellet
//	o = power pellet
//	  = open corridor
//	P = player spawn (first occurrence; extras are open floor)
//	G = ghost spawn
//
// The layout is a compile-time fixed asset; row 14 is the horizontal
// tunnel, open on both edges.
var defaultLayout = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"     #.##### ## #####.#     ",
	"     #.##          ##.#     ",
	"     #.## ###GG### ##.#     ",
	"######.## #      # ##.######",
	"      .   # PPPP #   .      ",
	"######.## #      # ##.######",
	"     #.## ######## ##.#     ",
	"     #.##          ##.#     ",
	"     #.##### ## #####.#     ",
	"######.##### ## #####.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o..##................##..o#",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}
