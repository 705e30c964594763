package engine

// Screen texts. Every line of a block has the same width so the blocks
// centre as rectangles.

var startMenuText = []string{
	"      Play      ",
	"                ",
	"      Help      ",
	"                ",
	"      Quit      ",
}

var pauseMenuText = []string{
	"     Continue     ",
	"                  ",
	"     New Game     ",
	"                  ",
	"       Help       ",
	"                  ",
	"       Quit       ",
}

var helpText = []string{
	"               Controls:                  ",
	"                                          ",
	"        UP    -> W | <Arrow Up>           ",
	"                                          ",
	"        DOWN  -> S | <Arrow Down>         ",
	"                                          ",
	"        RIGHT -> D | <Arrow Right>        ",
	"                                          ",
	"        LEFT  -> A | <Arrow Left>         ",
	"                                          ",
	"        PAUSE -> Q | <Esc>                ",
	"                 Rules:                   ",
	"                                          ",
	"     1) Eat food; don't hit walls         ",
	"        or yourself.                      ",
	"                                          ",
	"     2) You have 3 lives. If you hit      ",
	"        yourself, you lose one life.      ",
	"                                          ",
	"     3) If you lose all lives, you lose.  ",
	"                                          ",
	"     4) If you hit a wall, you lose.      ",
	"                                          ",
	"     5) If you reach a score of 100,      ",
	"        you win!                          ",
}

var winText = []string{
	"                    ",
	"      You won!      ",
	"                    ",
}

var loseText = []string{
	"                       ",
	"      You lost :(      ",
	"                       ",
}

var sizeWarningText = []string{
	"       The window size is too small.        ",
	"Window must be at least 25x42 (rows X cols).",
}
